package pitch

import (
	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/util"
)

// Interval is a distance in semitones. Negative values are descending.
type Interval int

const (
	Unison        Interval = 0
	MinorSecond   Interval = 1
	MajorSecond   Interval = 2
	MinorThird    Interval = 3
	MajorThird    Interval = 4
	PerfectFourth Interval = 5
	Tritone       Interval = 6
	PerfectFifth  Interval = 7
	MinorSixth    Interval = 8
	MajorSixth    Interval = 9
	MinorSeventh  Interval = 10
	MajorSeventh  Interval = 11
	Octave        Interval = 12
)

var intervalNames = map[Interval]string{
	Unison:        "unison",
	MinorSecond:   "minor2nd",
	MajorSecond:   "major2nd",
	MinorThird:    "minor3rd",
	MajorThird:    "major3rd",
	PerfectFourth: "perfect4th",
	Tritone:       "tritone",
	PerfectFifth:  "perfect5th",
	MinorSixth:    "minor6th",
	MajorSixth:    "major6th",
	MinorSeventh:  "minor7th",
	MajorSeventh:  "major7th",
	Octave:        "octave",
}

func (i Interval) Semitones() int {
	return int(i)
}

func (i Interval) Negate() Interval {
	return -i
}

func (i Interval) IsDescending() bool {
	return i < 0
}

func (i Interval) String() string {
	abs := i
	if abs < 0 {
		abs = -abs
	}
	name, ok := intervalNames[abs]
	if !ok {
		name = intervalNames[Interval(util.Mod(int(abs), constants.SemitonesPerOctave))] + "+octave"
	}
	if i < 0 {
		return "descending " + name
	}
	return name
}

// Between is the ascending interval from a up to b, within one octave.
func Between(a, b PitchClass) Interval {
	return Interval(util.Mod(b.Index()-a.Index(), constants.SemitonesPerOctave))
}

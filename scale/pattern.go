// Package scale defines the seven diatonic mode patterns and the scales
// they produce when anchored on a tonic.
package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/keywheel/constants"
)

var ErrUnknownMode = errors.New("unknown mode")

// Pattern is a named sequence of 7 semitone offsets from the tonic.
type Pattern struct {
	Name    string
	Offsets [constants.DegreesPerScale]int
}

var majorOffsets = [constants.DegreesPerScale]int{0, 2, 4, 5, 7, 9, 11}

var modeNames = [constants.DegreesPerScale]string{
	"ionian", "dorian", "phrygian", "lydian", "mixolydian", "aeolian", "locrian",
}

// Each mode starts the major sequence on a different degree.
var (
	Ionian     = rotate(0)
	Dorian     = rotate(1)
	Phrygian   = rotate(2)
	Lydian     = rotate(3)
	Mixolydian = rotate(4)
	Aeolian    = rotate(5)
	Locrian    = rotate(6)

	Major        = Ionian
	NaturalMinor = Aeolian
)

// Modes lists the patterns in rotation order, Ionian first.
var Modes = []Pattern{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}

func rotate(start int) Pattern {
	var p Pattern
	p.Name = modeNames[start]
	base := majorOffsets[start]
	for i := range p.Offsets {
		j := (start + i) % constants.DegreesPerScale
		offset := majorOffsets[j] - base
		if offset < 0 {
			offset += constants.SemitonesPerOctave
		}
		p.Offsets[i] = offset
	}
	return p
}

// PatternByName looks a mode up by name. "major" and "minor" are accepted
// as aliases for ionian and aeolian.
func PatternByName(name string) (Pattern, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "major":
		return Major, nil
	case "minor":
		return NaturalMinor, nil
	}
	for _, p := range Modes {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Rotation is the mode's distance from ionian in the rotation order.
func (p Pattern) Rotation() int {
	for i, m := range Modes {
		if m.Offsets == p.Offsets {
			return i
		}
	}
	return -1
}

// HasMajorThird reports whether the third degree sits 4 semitones up.
func (p Pattern) HasMajorThird() bool {
	return p.Offsets[2] == 4
}

// Abbreviation is the short mode tag used in compact labels. Ionian and
// aeolian use chord-style "" and "m".
func (p Pattern) Abbreviation() string {
	switch p.Name {
	case "ionian":
		return ""
	case "aeolian":
		return "m"
	}
	if len(p.Name) < 3 {
		return p.Name
	}
	return " " + p.Name[:3]
}

func (p Pattern) Title() string {
	if p.Name == "" {
		return ""
	}
	return strings.ToUpper(p.Name[:1]) + p.Name[1:]
}

package scale

import (
	"strings"

	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/util"
)

// Scale is a Pattern anchored on a tonic. Degrees are 1-based.
type Scale struct {
	tonic   pitch.PitchClass
	pattern Pattern
	pitches [constants.DegreesPerScale]pitch.PitchClass
}

func New(tonic pitch.PitchClass, pattern Pattern) Scale {
	s := Scale{tonic: pitch.FromChromaticIndex(int(tonic)), pattern: pattern}
	for i, offset := range pattern.Offsets {
		s.pitches[i] = s.tonic.Transpose(offset)
	}
	return s
}

func (s Scale) Tonic() pitch.PitchClass {
	return s.tonic
}

func (s Scale) Pattern() Pattern {
	return s.pattern
}

// Degree returns scale degree n (1-7). Other values wrap, so 8 is the
// tonic again and 0 is the leading tone.
func (s Scale) Degree(n int) pitch.PitchClass {
	return s.pitches[util.Mod(n-1, constants.DegreesPerScale)]
}

func (s Scale) Pitches() []pitch.PitchClass {
	res := make([]pitch.PitchClass, len(s.pitches))
	copy(res, s.pitches[:])
	return res
}

// DegreeOf returns the 1-based degree of pc, or 0 if it is not in the scale.
func (s Scale) DegreeOf(pc pitch.PitchClass) int {
	for i, p := range s.pitches {
		if p == pc {
			return i + 1
		}
	}
	return 0
}

func (s Scale) Contains(pc pitch.PitchClass) bool {
	return s.DegreeOf(pc) != 0
}

func (s Scale) Equal(other Scale) bool {
	return s.tonic == other.tonic && s.pattern.Offsets == other.pattern.Offsets
}

func (s Scale) NamesFor(sp pitch.Speller) []string {
	res := make([]string, 0, len(s.pitches))
	for _, p := range s.pitches {
		res = append(res, p.NameFor(sp))
	}
	return res
}

func (s Scale) String() string {
	return s.tonic.String() + " " + s.pattern.Name + ": " + strings.Join(s.NamesFor(nil), " ")
}

// Package pitch holds the octave-independent pitch classes, the interval
// catalog, and octave-bound notes that everything else is built from.
package pitch

import (
	"fmt"
	"strings"

	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/util"
)

// PitchClass is one of the 12 equal-tempered tones, identified by its
// chromatic index (C=0 ... B=11).
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

type spelling struct {
	sharp string
	flat  string
}

var spellings = [constants.SemitonesPerOctave]spelling{
	{"C", "C"},
	{"C#", "Db"},
	{"D", "D"},
	{"D#", "Eb"},
	{"E", "E"},
	{"F", "F"},
	{"F#", "Gb"},
	{"G", "G"},
	{"G#", "Ab"},
	{"A", "A"},
	{"A#", "Bb"},
	{"B", "B"},
}

var letterIndex = map[rune]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// Speller picks between the sharp and flat spelling of a pitch class.
// Keys and modal contexts implement it from their key signature.
type Speller interface {
	PrefersFlats() bool
}

// Flats is a fixed Speller for callers without a key: Flats(true) spells
// with flats, Flats(false) with sharps.
type Flats bool

func (f Flats) PrefersFlats() bool {
	return bool(f)
}

// FromChromaticIndex normalizes n into [0,12) and returns that pitch class.
func FromChromaticIndex(n int) PitchClass {
	return PitchClass(util.Mod(n, constants.SemitonesPerOctave))
}

// FromFifthsIndex maps a circle-of-fifths position (C=0, G=1, D=2, ...)
// to its pitch class. Multiplying by 7 is its own inverse mod 12.
func FromFifthsIndex(n int) PitchClass {
	return FromChromaticIndex(util.Mod(n, constants.SemitonesPerOctave) * 7)
}

// All returns the 12 pitch classes in chromatic order.
func All() []PitchClass {
	res := make([]PitchClass, constants.SemitonesPerOctave)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func (p PitchClass) Index() int {
	return util.Mod(int(p), constants.SemitonesPerOctave)
}

func (p PitchClass) FifthsIndex() int {
	return util.Mod(p.Index()*7, constants.SemitonesPerOctave)
}

func (p PitchClass) Transpose(semitones int) PitchClass {
	return FromChromaticIndex(p.Index() + semitones)
}

func (p PitchClass) SharpName() string {
	return spellings[p.Index()].sharp
}

func (p PitchClass) FlatName() string {
	return spellings[p.Index()].flat
}

// IsNatural reports whether the pitch class is a white key.
func (p PitchClass) IsNatural() bool {
	return p.SharpName() == p.FlatName()
}

func (p PitchClass) String() string {
	return p.SharpName()
}

// NameFor spells the pitch class for the given context. A nil speller
// falls back to sharps.
func (p PitchClass) NameFor(s Speller) string {
	if s != nil && s.PrefersFlats() {
		return p.FlatName()
	}
	return p.SharpName()
}

// WordName is the lowercase, symbol-free form used in lookup strings,
// e.g. "fsharp" or "bflat".
func (p PitchClass) WordName(s Speller) string {
	name := strings.ToLower(p.NameFor(s))
	name = strings.ReplaceAll(name, "#", "sharp")
	if len(name) > 1 && name[1] == 'b' {
		name = name[:1] + "flat"
	}
	return name
}

// ParsePitchClass reads spellings like "C", "f#", "Bb", "E♭" or "Cbb".
func ParsePitchClass(s string) (PitchClass, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPitchName)
	}

	letter := []rune(strings.ToUpper(string(runes[0])))[0]
	index, ok := letterIndex[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitchName, s)
	}

	for _, r := range runes[1:] {
		switch r {
		case '#', '♯':
			index++
		case 'b', '♭':
			index--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPitchName, s)
		}
	}

	return FromChromaticIndex(index), nil
}

package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/pitch"
)

var ErrInvalidChordName = errors.New("invalid chord name")

// Chord is a voiced chord: a root note plus a pattern.
type Chord struct {
	root    pitch.Note
	pattern Pattern
}

// New fails with pitch.ErrInvalidOctave when a chord tone would land
// above octave 8.
func New(root pitch.Note, pattern Pattern) (Chord, error) {
	if _, err := voice(root, pattern); err != nil {
		return Chord{}, fmt.Errorf("%v on %v: %w", pattern.Name, root, err)
	}
	return Chord{root: root, pattern: pattern}, nil
}

// MustNew is New for roots known to leave room for the pattern.
func MustNew(root pitch.Note, pattern Pattern) Chord {
	c, err := New(root, pattern)
	if err != nil {
		panic(err)
	}
	return c
}

func voice(root pitch.Note, pattern Pattern) ([]pitch.Note, error) {
	res := make([]pitch.Note, 0, len(pattern.Offsets))
	for _, offset := range pattern.Offsets {
		n, err := root.Transpose(offset)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// Major builds a major triad on pc with the root in octave 4.
func Major(pc pitch.PitchClass) Chord {
	return MustNew(pitch.MustNote(pc, constants.DefaultOctave), MajorTriad)
}

func Minor(pc pitch.PitchClass) Chord {
	return MustNew(pitch.MustNote(pc, constants.DefaultOctave), MinorTriad)
}

// RootAtPosition voices the major tonic at a circle-of-fifths position.
// Positions 0-7 use octave 4, positions 8-11 (G#, D#, A#, F) octave 3, so
// chords built around the wheel stay within a compact register.
func RootAtPosition(position int) pitch.Note {
	pc := pitch.FromFifthsIndex(position)
	octave := constants.DefaultOctave
	if pc.FifthsIndex() >= constants.LowOctavePositionThreshold {
		octave = constants.LowOctave
	}
	return pitch.MustNote(pc, octave)
}

// FromCirclePosition builds pattern on the major tonic at position.
func FromCirclePosition(position int, pattern Pattern) Chord {
	return MustNew(RootAtPosition(position), pattern)
}

func MajorTriadFromPosition(position int) Chord {
	return FromCirclePosition(position, MajorTriad)
}

// MinorTriadFromPosition builds the relative minor triad at position,
// rooted a minor third under the voiced major tonic.
func MinorTriadFromPosition(position int) Chord {
	root, err := pitch.RelativeNote(RootAtPosition(position), true)
	if err != nil {
		panic(err)
	}
	return MustNew(root, MinorTriad)
}

// Parse reads chord symbols such as "C", "F#m", "Bbmaj7" or "Bm7b5",
// voicing the root in octave 4.
func Parse(symbol string) (Chord, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Chord{}, fmt.Errorf("%w: empty", ErrInvalidChordName)
	}

	runes := []rune(symbol)
	split := 1
	for split < len(runes) && strings.ContainsRune("#b♯♭", runes[split]) {
		split++
	}

	pc, err := pitch.ParsePitchClass(string(runes[:split]))
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidChordName, symbol)
	}

	pattern, ok := PatternBySuffix(string(runes[split:]))
	if !ok {
		return Chord{}, fmt.Errorf("%w: unknown quality in %q", ErrInvalidChordName, symbol)
	}

	return New(pitch.MustNote(pc, constants.DefaultOctave), pattern)
}

func (c Chord) Root() pitch.Note {
	return c.root
}

func (c Chord) RootClass() pitch.PitchClass {
	return c.root.PitchClass()
}

func (c Chord) Pattern() Pattern {
	return c.pattern
}

func (c Chord) Quality() Quality {
	return c.pattern.Quality
}

// Notes are the chord tones in pattern order, each carried into the
// octave its offset lands in. New has already checked they are in range.
func (c Chord) Notes() []pitch.Note {
	res, _ := voice(c.root, c.pattern)
	return res
}

func (c Chord) PitchClasses() []pitch.PitchClass {
	res := make([]pitch.PitchClass, 0, len(c.pattern.Offsets))
	for _, n := range c.Notes() {
		res = append(res, n.PitchClass())
	}
	return res
}

// Tones are the note names ("C4", "E4", "G4") handed to an audio player.
func (c Chord) Tones() []string {
	res := make([]string, 0, len(c.pattern.Offsets))
	for _, n := range c.Notes() {
		res = append(res, n.String())
	}
	return res
}

// MIDINotes are the MIDI key numbers of the chord tones.
func (c Chord) MIDINotes() []uint8 {
	res := make([]uint8, 0, len(c.pattern.Offsets))
	for _, n := range c.Notes() {
		res = append(res, uint8(n.MIDI()))
	}
	return res
}

func (c Chord) NameFor(s pitch.Speller) string {
	return c.root.PitchClass().NameFor(s) + c.pattern.Suffix
}

func (c Chord) String() string {
	return c.NameFor(nil)
}

// Equal compares root pitch class and pattern. Octave is ignored.
func (c Chord) Equal(other Chord) bool {
	return c.RootClass() == other.RootClass() && c.pattern.Equal(other.pattern)
}

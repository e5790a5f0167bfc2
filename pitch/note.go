package pitch

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/keywheel/constants"
)

// Note is a pitch class in a specific octave. C4 is middle C.
type Note struct {
	class  PitchClass
	octave int
}

func NewNote(pc PitchClass, octave int) (Note, error) {
	if octave < constants.MinOctave || octave > constants.MaxOctave {
		return Note{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidOctave, octave, constants.MinOctave, constants.MaxOctave)
	}
	return Note{class: FromChromaticIndex(int(pc)), octave: octave}, nil
}

// MustNote is NewNote for arguments known to be valid.
func MustNote(pc PitchClass, octave int) Note {
	n, err := NewNote(pc, octave)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseNote reads names like "C4", "F#3" or "Bb2".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	split := strings.IndexFunc(s, unicode.IsDigit)
	if split <= 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}

	pc, err := ParsePitchClass(s[:split])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}

	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}

	return NewNote(pc, octave)
}

// FromMIDI converts a MIDI key number (60 = C4).
func FromMIDI(key uint8) (Note, error) {
	n := int(key)
	return NewNote(FromChromaticIndex(n), n/constants.SemitonesPerOctave-1)
}

func (n Note) PitchClass() PitchClass {
	return n.class
}

func (n Note) Octave() int {
	return n.octave
}

// Transpose moves the note by semitones, carrying into neighbouring octaves.
// Landing outside octaves 0-8 fails with ErrInvalidOctave.
func (n Note) Transpose(semitones int) (Note, error) {
	abs := n.octave*constants.SemitonesPerOctave + n.class.Index() + semitones
	octave := abs / constants.SemitonesPerOctave
	if abs < 0 && abs%constants.SemitonesPerOctave != 0 {
		octave--
	}
	return NewNote(FromChromaticIndex(abs), octave)
}

// MIDI is the MIDI key number for the note.
func (n Note) MIDI() int {
	return (n.octave+1)*constants.SemitonesPerOctave + n.class.Index()
}

func (n Note) String() string {
	return n.class.SharpName() + strconv.Itoa(n.octave)
}

func (n Note) NameFor(s Speller) string {
	return n.class.NameFor(s) + strconv.Itoa(n.octave)
}

package pitch

import "errors"

var (
	// ErrInvalidOctave is returned when a note is built outside the supported octave range.
	ErrInvalidOctave = errors.New("octave out of range")

	// ErrInvalidPitchName is returned when a pitch class spelling cannot be parsed.
	ErrInvalidPitchName = errors.New("invalid pitch name")

	// ErrInvalidNoteName is returned when a note such as "C#4" cannot be parsed.
	ErrInvalidNoteName = errors.New("invalid note name")
)

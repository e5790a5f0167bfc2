package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteRejectsBadOctave(t *testing.T) {
	_, err := NewNote(C, 9)
	assert.ErrorIs(t, err, ErrInvalidOctave)
	_, err = NewNote(C, -1)
	assert.ErrorIs(t, err, ErrInvalidOctave)

	n, err := NewNote(A, 4)
	require.NoError(t, err)
	assert.Equal(t, "A4", n.String())
}

func TestParseNote(t *testing.T) {
	assert := assert.New(t)

	n, err := ParseNote("F#3")
	assert.NoError(err)
	assert.Equal(MustNote(FSharp, 3), n)

	n, err = ParseNote("Bb2")
	assert.NoError(err)
	assert.Equal(MustNote(ASharp, 2), n)
	assert.Equal("Bb2", n.NameFor(Flats(true)))

	for _, bad := range []string{"", "4", "C", "X4", "C#x"} {
		_, err := ParseNote(bad)
		assert.ErrorIs(err, ErrInvalidNoteName, bad)
	}

	_, err = ParseNote("C12")
	assert.ErrorIs(err, ErrInvalidOctave)
}

func transposed(t *testing.T, n Note, semitones int) string {
	t.Helper()
	res, err := n.Transpose(semitones)
	require.NoError(t, err)
	return res.String()
}

func TestNoteTransposeCarriesOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C5", transposed(t, MustNote(G, 4), 5))
	assert.Equal("A3", transposed(t, MustNote(C, 4), -3))
	assert.Equal("C4", transposed(t, MustNote(C, 4), 0))
	assert.Equal("C3", transposed(t, MustNote(C, 4), -12))
	assert.Equal("B3", transposed(t, MustNote(C, 4), -1))
}

func TestNoteTransposeStaysInOctaveRange(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("B8", transposed(t, MustNote(C, 8), 11))
	assert.Equal("C0", transposed(t, MustNote(B, 0), -11))

	_, err := MustNote(B, 8).Transpose(1)
	assert.ErrorIs(err, ErrInvalidOctave)
	_, err = MustNote(C, 0).Transpose(-1)
	assert.ErrorIs(err, ErrInvalidOctave)
	_, err = MustNote(G, 4).Transpose(100)
	assert.ErrorIs(err, ErrInvalidOctave)
}

func TestMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, MustNote(C, 4).MIDI())
	assert.Equal(69, MustNote(A, 4).MIDI())

	n, err := FromMIDI(61)
	assert.NoError(err)
	assert.Equal("C#4", n.String())

	_, err = FromMIDI(127)
	assert.ErrorIs(err, ErrInvalidOctave)
}

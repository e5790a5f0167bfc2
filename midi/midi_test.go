package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/keywheel/chord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func progression(t *testing.T, symbols ...string) []chord.Chord {
	t.Helper()
	var res []chord.Chord
	for _, s := range symbols {
		c, err := chord.Parse(s)
		require.NoError(t, err)
		res = append(res, c)
	}
	return res
}

func reread(t *testing.T, s *smf.SMF) *smf.SMF {
	t.Helper()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	read, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return read
}

func TestBuildProgressionRoundTrip(t *testing.T) {
	chords := progression(t, "C", "Am", "F", "G7")

	s, err := BuildProgression("pop", chords, DefaultExportOptions())
	require.NoError(t, err)

	soundings, err := chord.GetSoundings(reread(t, s))
	require.NoError(t, err)
	require.Len(t, soundings, len(chords))

	for i, sounding := range soundings {
		got, ok := chord.Identify(sounding.Notes)
		require.True(t, ok, "sounding %d: %v", i, sounding.Notes)
		assert.True(t, chords[i].Equal(got), "want %v, got %v", chords[i], got)
	}
	for i := 1; i < len(soundings); i++ {
		assert.Greater(t, soundings[i].Offset, soundings[i-1].Offset)
	}
}

func TestWriteProgressionThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mid")
	chords := progression(t, "Dm7", "G7", "Cmaj7")

	require.NoError(t, WriteProgression(path, "jazz", chords, DefaultExportOptions()))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	soundings, err := chord.GetSoundings(s)
	require.NoError(t, err)
	assert.Len(t, soundings, 3)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(garbage, []byte("not a midi file"), 0o644))
	_, err = ReadMidiFile(garbage)
	assert.ErrorIs(t, err, ErrUnreadableMidi)
}

type recorder struct {
	mu  sync.Mutex
	got [][]uint8
}

func (r *recorder) add(notes []uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, notes)
}

func (r *recorder) snapshot() [][]uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]uint8(nil), r.got...)
}

func TestListenerDebouncesHeldNotes(t *testing.T) {
	rec := &recorder{}
	l := NewListener(20*time.Millisecond, rec.add)

	l.Handle(gomidi.NoteOn(0, 67, 90))
	l.Handle(gomidi.NoteOn(0, 60, 90))
	l.Handle(gomidi.NoteOn(0, 64, 90))

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []uint8{60, 64, 67}, rec.snapshot()[0])

	// releasing and pressing the same key again settles on the same set
	l.NoteOff(64)
	l.NoteOn(64)
	time.Sleep(80 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)

	l.Handle(gomidi.NoteOff(0, 67))
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []uint8{60, 64}, rec.snapshot()[1])
}

func TestExcerptSkipsEarlierChords(t *testing.T) {
	chords := progression(t, "C", "F", "G", "C")
	opts := DefaultExportOptions()
	s, err := BuildProgression("pop", chords, opts)
	require.NoError(t, err)

	chordTicks := uint64(ticksPerQuarter * opts.BeatsPerChord)
	excerpt, err := Excerpt(s, 2*chordTicks, 0)
	require.NoError(t, err)
	soundings, err := chord.GetSoundings(excerpt)
	require.NoError(t, err)
	require.Len(t, soundings, 2)

	first, ok := chord.Identify(soundings[0].Notes)
	require.True(t, ok)
	assert.Equal(t, "G", first.String())
	assert.Equal(t, int64(0), soundings[0].Offset)

	excerpt, err = Excerpt(s, 0, 3)
	require.NoError(t, err)
	cut, err := chord.GetSoundings(excerpt)
	require.NoError(t, err)
	require.NotEmpty(t, cut)
	assert.Len(t, cut[len(cut)-1].Notes, 3)
}

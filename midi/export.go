package midi

import (
	"fmt"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/constants"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

type ExportOptions struct {
	Tempo         float64
	Velocity      uint8
	Channel       uint8
	BeatsPerChord uint32
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Tempo:         constants.DefaultTempo,
		Velocity:      constants.DefaultVelocity,
		Channel:       0,
		BeatsPerChord: 4,
	}
}

// BuildProgression renders chords as a single-track SMF, one block chord
// after another.
func BuildProgression(name string, chords []chord.Chord, opts ExportOptions) (*smf.SMF, error) {
	if opts.BeatsPerChord == 0 {
		opts.BeatsPerChord = 4
	}
	if opts.Tempo <= 0 {
		opts.Tempo = constants.DefaultTempo
	}

	ticks := smf.MetricTicks(ticksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(opts.Tempo))

	length := ticks.Ticks4th() * opts.BeatsPerChord
	for _, c := range chords {
		notes := c.MIDINotes()
		for _, n := range notes {
			tr.Add(0, gomidi.NoteOn(opts.Channel, n, opts.Velocity))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = length
			}
			tr.Add(delta, gomidi.NoteOff(opts.Channel, n))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}
	return s, nil
}

func WriteProgression(path, name string, chords []chord.Chord, opts ExportOptions) error {
	s, err := BuildProgression(name, chords, opts)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("writing %v: %w", path, err)
	}
	return nil
}

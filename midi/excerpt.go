package midi

import (
	"bytes"
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies mf starting at ticksOffset. Non-note events before the
// offset are kept at tick 0 so tempo and program changes still apply.
// When maxNoteEvents > 0 each track is cut after that many note on/off
// events. The copy is written out and read back so it carries the same
// tempo map as a file read from disk.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNoteEvents int) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, lastWritten uint64
		var numNoteOnOff int

		add := func(evt smf.Event) {
			var at uint64
			if absTicks > ticksOffset {
				at = absTicks - ticksOffset
			}
			evt.Delta = uint32(at - lastWritten)
			lastWritten = at
			newTrack = append(newTrack, evt)
		}

	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(gomidi.NoteOnMsg),
				evt.Message.Is(gomidi.NoteOffMsg):
				if absTicks < ticksOffset {
					continue
				}
				add(evt)
				numNoteOnOff++
				if maxNoteEvents > 0 && numNoteOnOff >= maxNoteEvents {
					newTrack.Close(0)
					break TrackEventLoop
				}
			default:
				add(evt)
			}
		}

		if err := res.Add(newTrack); err != nil {
			return nil, fmt.Errorf("adding track: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := res.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing excerpt: %w", err)
	}
	out, err := smf.ReadFrom(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableMidi, err)
	}
	return out, nil
}

package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func getSounding(offset int64, pressed map[uint8]int64) model.Sounding {
	return model.Sounding{Offset: offset, Notes: util.GetKeysSorted(pressed)}
}

// GetSoundings flattens all tracks of s and returns the set of held notes
// after every moment where a note starts or stops, ordered by time.
// Moments where nothing is held are dropped.
func GetSoundings(s *smf.SMF) (res []model.Sounding, err error) {
	// smf can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading tracks: %v", r)
		}
	}()

	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: false,
					Note:      key,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToSounding := make(map[int64]model.Sounding)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}
		timestampToSounding[evt.Offset] = getSounding(evt.Offset, pressed)
	}

	for _, sounding := range timestampToSounding {
		if len(sounding.Notes) > 0 {
			res = append(res, sounding)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Offset < res[j].Offset
	})
	return res, nil
}

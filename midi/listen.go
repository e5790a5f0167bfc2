package midi

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/util"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Listener tracks held keys and reports the held set once it has been
// stable for the debounce delay. Repeats of the same set are dropped.
type Listener struct {
	mu        sync.Mutex
	held      chord.OnNotes
	lastKey   string
	debounced func(f func())
	onChange  func(notes []uint8)
}

func NewListener(delay time.Duration, onChange func(notes []uint8)) *Listener {
	return &Listener{
		held:      make(chord.OnNotes),
		debounced: debounce.New(delay),
		onChange:  onChange,
	}
}

func (l *Listener) NoteOn(key uint8) {
	l.mu.Lock()
	l.held[key] = true
	l.mu.Unlock()
	l.debounced(l.flush)
}

func (l *Listener) NoteOff(key uint8) {
	l.mu.Lock()
	delete(l.held, key)
	l.mu.Unlock()
	l.debounced(l.flush)
}

func (l *Listener) flush() {
	l.mu.Lock()
	notes := util.GetKeysSorted(l.held)
	chordKey := chord.CreateChordKey(notes)
	if chordKey == l.lastKey {
		l.mu.Unlock()
		return
	}
	l.lastKey = chordKey
	l.mu.Unlock()

	l.onChange(notes)
}

// Handle feeds one incoming message to the listener.
func (l *Listener) Handle(msg gomidi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		l.NoteOn(key)
	case msg.GetNoteEnd(&ch, &key):
		l.NoteOff(key)
	}
}

// Listen attaches l to an input port of the registered driver. The caller
// must call stop and close the driver.
func Listen(port int, l *Listener) (stop func(), err error) {
	in, err := gomidi.InPort(port)
	if err != nil {
		return nil, fmt.Errorf("opening input port %d: %w", port, err)
	}

	stop, err = gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		l.Handle(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("listening on port %d: %w", port, err)
	}
	return stop, nil
}

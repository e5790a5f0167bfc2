package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/keywheel/pitch"
)

type OnNotes = map[uint8]bool

// CreateChordKey is a stable key for a set of MIDI notes, e.g. "60-64-67".
func CreateChordKey(notes []uint8) string {
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, 0, len(sorted))
	for _, note := range sorted {
		parts = append(parts, fmt.Sprintf("%v", note))
	}
	return strings.Join(parts, "-")
}

// Identify names a set of sounding MIDI notes by matching its pitch-class
// set exactly against the pattern catalog. Doublings and voicing do not
// matter. Roots are tried bass-first so symmetric chords (augmented,
// diminished seventh) take the lowest note as their root. Roots whose
// voicing would leave octaves 0-8 are skipped.
func Identify(notes []uint8) (Chord, bool) {
	if len(notes) == 0 {
		return Chord{}, false
	}

	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	set := make(map[pitch.PitchClass]bool)
	lowest := make(map[pitch.PitchClass]uint8)
	var roots []pitch.PitchClass
	for _, n := range sorted {
		pc := pitch.FromChromaticIndex(int(n))
		if !set[pc] {
			set[pc] = true
			lowest[pc] = n
			roots = append(roots, pc)
		}
	}

	for _, root := range roots {
		for _, p := range Patterns {
			if !matches(set, root, p) {
				continue
			}
			rootNote, err := pitch.FromMIDI(lowest[root])
			if err != nil {
				continue
			}
			c, err := New(rootNote, p)
			if err != nil {
				continue
			}
			return c, true
		}
	}
	return Chord{}, false
}

func matches(set map[pitch.PitchClass]bool, root pitch.PitchClass, p Pattern) bool {
	if len(p.Offsets) != len(set) {
		return false
	}
	for _, offset := range p.Offsets {
		if !set[root.Transpose(offset)] {
			return false
		}
	}
	return true
}

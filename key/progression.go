package key

import (
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/pitch"
)

// CirclePositionOf is where a chord is highlighted on the wheel: major
// chords on the outer ring at their root, minor and diminished chords on
// the inner ring under their relative major.
func CirclePositionOf(c chord.Chord) int {
	q := c.Quality()
	return pitch.CirclePosition(c.RootClass(), q == chord.QualityMinor || q == chord.QualityDiminished)
}

// Progression builds the diatonic triads for 1-based degrees in ctx,
// e.g. []int{1, 5, 6, 4}.
func Progression(ctx Context, degrees []int) []chord.Chord {
	res := make([]chord.Chord, 0, len(degrees))
	for _, d := range degrees {
		res = append(res, ctx.ChordAt(d))
	}
	return res
}

// ProgressionPositions maps each chord to its wheel position.
func ProgressionPositions(chords []chord.Chord) []int {
	res := make([]int, 0, len(chords))
	for _, c := range chords {
		res = append(res, CirclePositionOf(c))
	}
	return res
}

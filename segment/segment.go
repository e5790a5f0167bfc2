// Package segment flattens keys and pitch classes into the records the
// circular views render from.
package segment

import (
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/geometry"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/util"
)

// BuildCircleSegment describes one position of the circle of fifths: the
// major key, its relative minor and their shared signature.
func BuildCircleSegment(position int) model.CircleSegmentDTO {
	major := key.FromCircleOfFifths(position, true)
	minor := key.FromCircleOfFifths(position, false)
	return model.CircleSegmentDTO{
		Position:     major.FifthsIndex(),
		MajorKey:     major.ToDTO(),
		MinorKey:     minor.ToDTO(),
		KeySignature: key.SignatureLabel(major.Signature()),
	}
}

func BuildCircleSegments() []model.CircleSegmentDTO {
	res := make([]model.CircleSegmentDTO, 0, constants.SemitonesPerOctave)
	for pos := 0; pos < constants.SemitonesPerOctave; pos++ {
		res = append(res, BuildCircleSegment(pos))
	}
	return res
}

// BuildChromaticSegments lists the 12 pitch classes in chromatic order,
// spelled for sp (sharps when sp is nil).
func BuildChromaticSegments(sp pitch.Speller) []model.ChromaticSegmentDTO {
	res := make([]model.ChromaticSegmentDTO, 0, constants.SemitonesPerOctave)
	for _, pc := range pitch.All() {
		res = append(res, model.ChromaticSegmentDTO{
			Position:       pc.Index(),
			PitchClassName: pc.NameFor(sp),
		})
	}
	return res
}

// BuildChord describes c as seen from ctx. Analysis is nil when the root
// is outside the context's scale.
func BuildChord(ctx key.Context, c chord.Chord) model.ChordDTO {
	dto := model.ChordDTO{
		Name:     c.NameFor(ctx),
		Tones:    c.Tones(),
		Position: key.CirclePositionOf(c),
	}
	if a, ok := ctx.AnalyzeChord(c); ok {
		dto.Analysis = a.ToDTO()
	}
	return dto
}

func BuildChords(ctx key.Context, chords []chord.Chord) []model.ChordDTO {
	res := make([]model.ChordDTO, 0, len(chords))
	for _, c := range chords {
		res = append(res, BuildChord(ctx, c))
	}
	return res
}

// BuildContext is the detail record for a key or mode.
func BuildContext(ctx key.Context) model.ContextDTO {
	return model.ContextDTO{
		Key:      ctx.ToDTO(),
		ColorKey: ctx.ColorKey(),
		Scale:    ctx.Scale().NamesFor(ctx),
		Chords:   BuildChords(ctx, ctx.DiatonicChords()),
		Sevenths: BuildChords(ctx, ctx.DiatonicSevenths()),
	}
}

// BuildLayerPaths draws the stacked ring segments at position and places
// the label at the middle of the outermost ring.
func BuildLayerPaths(position int, radii []float64, segmentCount int) model.LayerPathsDTO {
	dto := model.LayerPathsDTO{
		Position: position,
		Paths:    geometry.GenerateMultiLayerPaths(position, radii, segmentCount),
	}
	if len(radii) >= 2 {
		mid := (radii[len(radii)-2] + radii[len(radii)-1]) / 2
		label := geometry.LabelPoint(position, mid, segmentCount)
		dto.LabelX = label.X
		dto.LabelY = label.Y
	}
	return dto
}

func BuildWheel(radii []float64, segmentCount int) []model.LayerPathsDTO {
	if segmentCount < 2 {
		segmentCount = constants.DefaultSegmentCount
	}
	res := make([]model.LayerPathsDTO, 0, segmentCount)
	for pos := 0; pos < segmentCount; pos++ {
		res = append(res, BuildLayerPaths(pos, radii, segmentCount))
	}
	return res
}

// BuildWheelPosition draws the ring paths at position, wrapped into
// [0, segmentCount). On a 12-segment wheel it also carries the
// circle-of-fifths segment at that position.
func BuildWheelPosition(position int, radii []float64, segmentCount int) model.WheelDTO {
	if segmentCount < 2 {
		segmentCount = constants.DefaultSegmentCount
	}
	position = util.Mod(position, segmentCount)

	dto := model.WheelDTO{
		Layers: BuildLayerPaths(position, radii, segmentCount),
	}
	if segmentCount == constants.SemitonesPerOctave {
		s := BuildCircleSegment(position)
		dto.Segment = &s
	}
	return dto
}

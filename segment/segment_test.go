package segment

import (
	"testing"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/geometry"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleSegments(t *testing.T) {
	segments := BuildCircleSegments()
	require.Len(t, segments, 12)

	for i, s := range segments {
		assert.Equal(t, i, s.Position)
		assert.Equal(t, i, s.MajorKey.FifthsIndex)
		assert.Equal(t, i, s.MinorKey.FifthsIndex)
		assert.True(t, s.MajorKey.IsMajor)
		assert.False(t, s.MinorKey.IsMajor)
	}

	assert.Equal(t, "C", segments[0].MajorKey.ShortName)
	assert.Equal(t, "Am", segments[0].MinorKey.ShortName)
	assert.Equal(t, "♮", segments[0].KeySignature)
	assert.Equal(t, "2♯", segments[2].KeySignature)
	assert.Equal(t, "Eb", segments[9].MajorKey.ShortName)
	assert.Equal(t, "Cm", segments[9].MinorKey.ShortName)
	assert.Equal(t, "3♭", segments[9].KeySignature)
	assert.Equal(t, "Dm", segments[11].MinorKey.ShortName)
}

func TestChromaticSegments(t *testing.T) {
	sharps := BuildChromaticSegments(nil)
	require.Len(t, sharps, 12)
	assert.Equal(t, "C#", sharps[1].PitchClassName)
	assert.Equal(t, 11, sharps[11].Position)

	flats := BuildChromaticSegments(key.Major(pitch.F))
	assert.Equal(t, "Bb", flats[10].PitchClassName)
}

func TestBuildChord(t *testing.T) {
	c := BuildChord(key.Major(pitch.C), chord.Major(pitch.E))
	require.NotNil(t, c.Analysis)
	assert.Equal(t, "III", c.Analysis.RomanNumeral)
	assert.Equal(t, "Tonic", c.Analysis.Function)
	assert.Equal(t, []string{"E4", "G#4", "B4"}, c.Tones)
	assert.Equal(t, 4, c.Position)

	c = BuildChord(key.Major(pitch.C), chord.Major(pitch.CSharp))
	assert.Nil(t, c.Analysis)
}

func TestBuildContext(t *testing.T) {
	ctx := BuildContext(key.NewModal(pitch.D, scale.Dorian))
	assert.Equal(t, "modal", ctx.Key.Type)
	assert.Equal(t, "key-d-dorian", ctx.ColorKey)
	assert.Equal(t, []string{"D", "E", "F", "G", "A", "B", "C"}, ctx.Scale)
	assert.Len(t, ctx.Chords, 7)
	assert.Len(t, ctx.Sevenths, 7)
	for _, c := range ctx.Chords {
		assert.NotNil(t, c.Analysis)
	}
}

func TestBuildWheel(t *testing.T) {
	radii := []float64{40, 80, 120}
	wheel := BuildWheel(radii, 12)
	require.Len(t, wheel, 12)
	for pos, w := range wheel {
		assert.Equal(t, geometry.GenerateMultiLayerPaths(pos, radii, 12), w.Paths)
	}
	assert.InDelta(t, 0, wheel[0].LabelX, 1e-9)
	assert.InDelta(t, -100, wheel[0].LabelY, 1e-9)
}

func TestBuildWheelPosition(t *testing.T) {
	radii := []float64{60, 120, 180}
	w := BuildWheelPosition(14, radii, 12)

	require.NotNil(t, w.Segment)
	assert.Equal(t, 2, w.Segment.Position)
	assert.Equal(t, "D", w.Segment.MajorKey.ShortName)
	assert.Equal(t, 2, w.Layers.Position)
	assert.Equal(t, geometry.GenerateMultiLayerPaths(2, radii, 12), w.Layers.Paths)

	w = BuildWheelPosition(-1, radii, 12)
	require.NotNil(t, w.Segment)
	assert.Equal(t, 11, w.Segment.Position)
	assert.Equal(t, 11, w.Layers.Position)

	w = BuildWheelPosition(13, radii, 24)
	assert.Nil(t, w.Segment)
	assert.Equal(t, 13, w.Layers.Position)
	assert.Equal(t, geometry.GenerateMultiLayerPaths(13, radii, 24), w.Layers.Paths)

	w = BuildWheelPosition(30, radii, 24)
	assert.Equal(t, 6, w.Layers.Position)

	w = BuildWheelPosition(13, radii, 0)
	require.NotNil(t, w.Segment)
	assert.Equal(t, 1, w.Layers.Position)
}

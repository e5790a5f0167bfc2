package geometry

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func TestCalculateAngle(t *testing.T) {
	assert := assert.New(t)
	assert.True(scalar.EqualWithinAbs(-105*math.Pi/180, CalculateAngle(0, 12), tol))
	assert.True(scalar.EqualWithinAbs(-75*math.Pi/180, CalculateAngle(1, 12), tol))
	assert.True(scalar.EqualWithinAbs(CalculateAngle(3, 12), CalculateAngle(15, 12), tol))
	assert.True(scalar.EqualWithinAbs(CalculateAngle(11, 12), CalculateAngle(-1, 12), tol))
	assert.True(scalar.EqualWithinAbs(CalculateAngle(2, 12), CalculateAngle(2, 0), tol))
}

func TestPositionZeroIsAtTheTop(t *testing.T) {
	p := LabelPoint(0, 10, 12)
	assert.True(t, scalar.EqualWithinAbs(0, p.X, tol))
	assert.True(t, scalar.EqualWithinAbs(-10, p.Y, tol))
}

func TestPolarToCartesian(t *testing.T) {
	assert := assert.New(t)

	p := PolarToCartesian(0, 1.234)
	assert.Equal(0.0, p.X)
	assert.Equal(0.0, p.Y)

	p = PolarToCartesian(2, math.Pi/2)
	assert.True(scalar.EqualWithinAbs(0, p.X, tol))
	assert.True(scalar.EqualWithinAbs(2, p.Y, tol))

	p = PolarToCartesian(-1, 0)
	assert.True(scalar.EqualWithinAbs(-1, p.X, tol))
	assert.True(scalar.EqualWithinAbs(0, p.Y, tol))
}

func TestPolarToCartesianKeepsDistance(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2, math.Pi, 4.5} {
		for _, radius := range []float64{1, 60, 180} {
			p := PolarToCartesian(radius, angle)
			assert.True(t, scalar.EqualWithinAbs(radius, r2.Norm(p), tol), "r=%v a=%v", radius, angle)

			mirrored := PolarToCartesian(-radius, angle)
			assert.True(t, scalar.EqualWithinAbs(0, r2.Norm(r2.Add(p, mirrored)), tol))
		}
		assert.True(t, scalar.EqualWithinAbs(1, r2.Norm(Direction(angle)), tol))
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := map[float64]float64{
		0:            0,
		-math.Pi / 2: 3 * math.Pi / 2,
		2 * math.Pi:  0,
		5 * math.Pi:  math.Pi,
		-7 * math.Pi: math.Pi,
		math.Pi / 3:  math.Pi / 3,
		-4 * math.Pi: 0,
	}
	for in, want := range cases {
		got := NormalizeAngle(in)
		assert.True(t, scalar.EqualWithinAbs(want, got, 1e-9), "NormalizeAngle(%v) = %v", in, got)
		assert.True(t, got >= 0 && got < 2*math.Pi)
	}
}

func commandCounts(path string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range strings.Fields(path) {
		switch tok {
		case "M", "L", "A", "Z":
			counts[tok]++
		}
	}
	return counts
}

func TestPizzaSliceCommands(t *testing.T) {
	for pos := 0; pos < 12; pos++ {
		path := GeneratePizzaSlicePath(pos, 50, 100, 12)
		assert.Equal(t, map[string]int{"M": 1, "L": 2, "A": 2, "Z": 1}, commandCounts(path), path)
		assert.True(t, strings.HasPrefix(path, "M "))
		assert.True(t, strings.HasSuffix(path, " Z"))
		assert.NotContains(t, path, "-0.0000 ")
	}
}

func TestArcsUseMinorArcFlag(t *testing.T) {
	for _, n := range []int{2, 3, 12, 24} {
		tokens := strings.Fields(GeneratePizzaSlicePath(1, 10, 20, n))
		require.Len(t, tokens, 26)
		// A rx ry rotation large-arc sweep x y
		assert.Equal(t, "0", tokens[10])
		assert.Equal(t, "1", tokens[11])
		assert.Equal(t, "0", tokens[21])
		assert.Equal(t, "0", tokens[22])
	}
}

func TestKnownSlice(t *testing.T) {
	path := GeneratePizzaSlicePath(0, 0, 100, 4)
	// position 0 of 4 spans -105deg to -15deg
	assert.True(t, strings.HasPrefix(path, "M 0.0000 0.0000 L -25.8819 -96.5926 A 100.0000 100.0000 0 0 1 96.5926 -25.8819"), path)
}

func TestMultiLayerPaths(t *testing.T) {
	radii := []float64{20, 60, 100, 140}
	for pos := 0; pos < 12; pos++ {
		layers := GenerateMultiLayerPaths(pos, radii, 12)
		require.Len(t, layers, 3)
		for i, layer := range layers {
			assert.Equal(t, GeneratePizzaSlicePath(pos, radii[i], radii[i+1], 12), layer)
		}

		// neighbouring layers meet on the same points
		for i := 0; i < len(layers)-1; i++ {
			lower := strings.Fields(layers[i])
			upper := strings.Fields(layers[i+1])
			assert.Equal(t, lower[4:6], upper[1:3])
			assert.Equal(t, lower[12:14], upper[15:17])
		}
	}
}

func TestMultiLayerNeedsTwoRadii(t *testing.T) {
	assert.Empty(t, GenerateMultiLayerPaths(0, []float64{10}, 12))
	assert.Empty(t, GenerateMultiLayerPaths(0, nil, 12))
}

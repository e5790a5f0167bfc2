// Package geometry lays out circular diagrams: segment angles, polar
// projection and the ring-segment paths every wheel is drawn from.
// Angles are in radians with y growing downward, as in SVG.
package geometry

import (
	"math"

	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/util"
	"gonum.org/v1/gonum/spatial/r2"
)

// segments falls back to the 12-segment wheel when n cannot describe one.
func segments(n int) int {
	if n < 2 {
		return constants.DefaultSegmentCount
	}
	return n
}

// SegmentWidth is the angular span of one segment.
func SegmentWidth(segmentCount int) float64 {
	return 2 * math.Pi / float64(segments(segmentCount))
}

// CalculateAngle is the start angle of a segment. Positions outside
// [0, segmentCount) wrap around the wheel.
func CalculateAngle(position, segmentCount int) float64 {
	n := segments(segmentCount)
	deg := float64(util.Mod(position, n))*(360/float64(n)) + constants.AngleOffsetDegrees
	return deg * math.Pi / 180
}

// CenterAngle is the middle of a segment, where its label goes.
func CenterAngle(position, segmentCount int) float64 {
	return CalculateAngle(position, segmentCount) + SegmentWidth(segmentCount)/2
}

// PolarToCartesian projects around the origin. A negative radius lands on
// the opposite side of the origin.
func PolarToCartesian(radius, angle float64) r2.Vec {
	if radius == 0 {
		return r2.Vec{}
	}
	return r2.Scale(radius, Direction(angle))
}

// Direction is the unit vector pointing at angle.
func Direction(angle float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// NormalizeAngle reduces angle to [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// LabelPoint is the point at radius on the center line of a segment.
func LabelPoint(position int, radius float64, segmentCount int) r2.Vec {
	return PolarToCartesian(radius, CenterAngle(position, segmentCount))
}

package geometry

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Path builds an SVG path string from move, line, arc and close commands.
type Path struct {
	b strings.Builder
}

func (p *Path) cmd(c byte) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte(c)
}

func (p *Path) num(v float64) {
	// keep "-0" out of the output
	if v > -5e-5 && v < 5e-5 {
		v = 0
	}
	p.b.WriteByte(' ')
	p.b.WriteString(strconv.FormatFloat(v, 'f', 4, 64))
}

func (p *Path) point(v r2.Vec) {
	p.num(v.X)
	p.num(v.Y)
}

func (p *Path) MoveTo(v r2.Vec) *Path {
	p.cmd('M')
	p.point(v)
	return p
}

func (p *Path) LineTo(v r2.Vec) *Path {
	p.cmd('L')
	p.point(v)
	return p
}

// ArcTo draws a circular arc of radius r. The large-arc flag is always 0:
// a single segment never spans more than half the circle.
func (p *Path) ArcTo(r float64, clockwise bool, v r2.Vec) *Path {
	p.cmd('A')
	p.num(r)
	p.num(r)
	p.b.WriteString(" 0 0")
	if clockwise {
		p.b.WriteString(" 1")
	} else {
		p.b.WriteString(" 0")
	}
	p.point(v)
	return p
}

func (p *Path) Close() *Path {
	p.cmd('Z')
	return p
}

func (p *Path) String() string {
	return p.b.String()
}

// GeneratePizzaSlicePath outlines one ring segment: from the inner start
// corner out to the outer arc, clockwise along it, back in along the end
// radius, and counter-clockwise along the inner arc.
func GeneratePizzaSlicePath(position int, innerRadius, outerRadius float64, segmentCount int) string {
	start := CalculateAngle(position, segmentCount)
	end := start + SegmentWidth(segmentCount)

	var p Path
	p.MoveTo(PolarToCartesian(innerRadius, start)).
		LineTo(PolarToCartesian(outerRadius, start)).
		ArcTo(outerRadius, true, PolarToCartesian(outerRadius, end)).
		LineTo(PolarToCartesian(innerRadius, end)).
		ArcTo(innerRadius, false, PolarToCartesian(innerRadius, start)).
		Close()
	return p.String()
}

// GenerateMultiLayerPaths returns one ring segment per consecutive pair of
// radii. All layers come from GeneratePizzaSlicePath at the same position,
// so they share start and end angles and stack without seams.
func GenerateMultiLayerPaths(position int, radii []float64, segmentCount int) []string {
	if len(radii) < 2 {
		return []string{}
	}
	res := make([]string, 0, len(radii)-1)
	for i := 0; i < len(radii)-1; i++ {
		res = append(res, GeneratePizzaSlicePath(position, radii[i], radii[i+1], segmentCount))
	}
	return res
}

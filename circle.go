package liquid

import (
	"math"
)

// Circle is the shape of the gauge's clip region and outer ring.
type Circle struct {
	Center Point
	Radius float64
}

// circleArm is the control arm length of a quarter circle approximated by a
// single cubic Bézier, from http://spencermortensen.com/articles/bezier-circle/
const circleArm = 0.551915024494

// Path approximates the circle with four cubic Béziers, starting at the
// rightmost point.
func (c Circle) Path() BezPath {
	x, y := c.Center.Splat()
	r := c.Radius
	a := circleArm
	p := make(BezPath, 0, 6)
	p.MoveTo(Pt(x+r, y))
	for ix := 1; ix <= 4; ix++ {
		th1 := math.Pi / 2 * float64(ix)
		th0 := th1 - math.Pi/2
		s0, c0 := math.Sincos(th0)
		s1, c1 := math.Sincos(th1)
		if ix == 4 {
			s1, c1 = 0, 1
		}
		p.CubicTo(
			Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			Pt(x+r*c1, y+r*s1),
		)
	}
	p.ClosePath()
	return p
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

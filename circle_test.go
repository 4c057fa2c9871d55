package liquid

import (
	"math"
	"testing"
)

func TestCirclePath(t *testing.T) {
	c := Circle{Pt(50, 50), 10}
	p := c.Path()
	if len(p) != 6 {
		t.Fatalf("got %d elements, want 6", len(p))
	}
	if p[0] != MoveTo(Pt(60, 50)) {
		t.Errorf("got first element %s, want MoveTo(60, 50)", p[0])
	}
	if p[5].Kind != ClosePathKind {
		t.Errorf("got last element %s, want ClosePath", p[5])
	}
	for _, el := range p[1:5] {
		end := el.P2
		if d := math.Hypot(end.X-c.Center.X, end.Y-c.Center.Y); math.Abs(d-c.Radius) > 1e-9 {
			t.Errorf("segment end %s is %v away from the center, want %v", end, d, c.Radius)
		}
	}
	diff(t, c.BoundingBox(), p.ControlBox(), approx)
}

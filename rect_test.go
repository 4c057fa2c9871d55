package liquid

import "testing"

func TestRectExtents(t *testing.T) {
	r := Rect{10, 20, 0, 5}
	if w, h := r.Width(), r.Height(); w != -10 || h != -15 {
		t.Errorf("got size %vx%v, want -10x-15", w, h)
	}
	diff(t, []float64{0, 10, 5, 20}, []float64{r.MinX(), r.MaxX(), r.MinY(), r.MaxY()})
}

func TestRectUnionPoint(t *testing.T) {
	r := Rect{1, 1, 1, 1}
	for _, pt := range []Point{Pt(-2, 4), Pt(3, -1)} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-2, -1, 3, 4}, r)
}

package liquid

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := math.Hypot(p1.X-p0.X, p1.Y-p0.Y); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(FlipY.ThenTranslate(Vec(1, 10))), Pt(4, 6), epsilon)
	diff(t, Vec(1, 10), FlipY.ThenTranslate(Vec(1, 10)).Translation())
}

func TestMapUnitSquare(t *testing.T) {
	const epsilon = 1e-9
	aff := MapUnitSquare(Rect{0, 0, 400, 200})
	assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 200), epsilon)
	assertNear(t, Pt(1, 1).Transform(aff), Pt(400, 0), epsilon)
	assertNear(t, Pt(0.5, 0.5).Transform(aff), Pt(200, 100), epsilon)
}

func TestAffineIsTranslation(t *testing.T) {
	if !Translate(Vec(3, 0)).IsTranslation() {
		t.Error("translation not recognized")
	}
	if FlipY.IsTranslation() {
		t.Error("flip recognized as translation")
	}
	if (Affine{2, 0, 0, 2, 0, 0}).IsTranslation() {
		t.Error("scale recognized as translation")
	}
}

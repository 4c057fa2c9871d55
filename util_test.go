package liquid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats with a tolerance suitable for accumulated rounding
// in path construction.
var approx = cmpopts.EquateApprox(1e-9, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// countKind returns the number of elements of p with the given kind.
func countKind(p BezPath, kind PathElementKind) int {
	n := 0
	for _, el := range p {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

// translatePath returns a copy of p moved by v.
func translatePath(p BezPath, v Vec2) BezPath {
	aff := Translate(v)
	out := make(BezPath, len(p))
	for i, el := range p {
		switch el.Kind {
		case MoveToKind:
			out[i] = MoveTo(el.P0.Transform(aff))
		case LineToKind:
			out[i] = LineTo(el.P0.Transform(aff))
		case CubicToKind:
			out[i] = CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
		default:
			out[i] = el
		}
	}
	return out
}

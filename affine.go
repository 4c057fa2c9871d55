package liquid

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Hosts use it both to map the unit square onto the canvas and to describe
// the motion of an [Animation].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// MapUnitSquare creates an affine transformation that takes the unit square
// to the given rectangle. The unit square is y-up, so (0, 0) maps to the
// bottom left corner of rect in y-down canvas space.
func MapUnitSquare(rect Rect) Affine {
	return Affine{
		rect.Width(),
		0, 0,
		-rect.Height(),
		rect.X0,
		rect.Y1,
	}
}

// IsTranslation reports whether aff only translates, leaving the linear part
// untouched.
func (aff Affine) IsTranslation() bool {
	return aff.N0 == 1 && aff.N1 == 0 && aff.N2 == 0 && aff.N3 == 1
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

package liquid

import (
	"fmt"
)

// Vec2 is a displacement, such as the translation of an [Affine].
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// lerp linearly interpolates between two scalars.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

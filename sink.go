package liquid

import (
	"errors"
	"fmt"
	"time"
)

// ShapeKind selects which fields of a [ShapeSpec] describe the shape.
type ShapeKind int

const (
	// A filled or stroked Bézier path, described by ShapeSpec.Path.
	PathShape ShapeKind = iota + 1
	// A circle, described by ShapeSpec.Circle.
	CircleShape
	// A line of text centered on ShapeSpec.At.
	TextShape
)

func (k ShapeKind) String() string {
	switch k {
	case PathShape:
		return "path"
	case CircleShape:
		return "circle"
	case TextShape:
		return "text"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ShapeSpec describes a shape to be added to a [RenderSink] or [Group].
type ShapeSpec struct {
	Kind  ShapeKind
	Name  string
	Attrs Attrs

	Path   BezPath
	Circle Circle

	Text     string
	At       Point
	FontSize float64
}

// Animation describes a transformation a shape moves through over Duration.
// With Repeat set, the animation restarts from the identity as soon as it
// completes, forever.
type Animation struct {
	Matrix   Affine
	Duration time.Duration
	Repeat   bool
}

// ErrNoSurface is returned by [Shape.Animate] when the shape isn't attached to
// anything that can be animated, such as a detached or static document.
var ErrNoSurface = errors.New("shape has no rendering surface")

// AnimationError records a wave whose animation could not be started.
type AnimationError struct {
	Wave int
	Name string
	Err  error
}

func (e *AnimationError) Error() string {
	return fmt.Sprintf("animating %s: %s", e.Name, e.Err)
}

func (e *AnimationError) Unwrap() error { return e.Err }

// RenderSink is the host that gauges draw into. It maps the unit square to
// canvas space and owns all shapes added to it.
type RenderSink interface {
	// ParsePoint maps a point in the y-up unit square to canvas space.
	ParsePoint(pt Point) Point
	AddGroup(name string) Group
	AddShape(spec ShapeSpec) Shape
}

// Group is a container of shapes that can be clipped as a whole.
type Group interface {
	AddShape(spec ShapeSpec) Shape
	// SetClip restricts drawing of the group to the circle and returns the
	// shape representing the clip region.
	SetClip(c Circle) Shape
	// ClipShape returns the shape set with SetClip, or nil.
	ClipShape() Shape
}

// Shape is a shape owned by a [RenderSink].
type Shape interface {
	BoundingBox() Rect
	// Animate starts an animation of the shape. It doesn't block.
	Animate(anim Animation) error
}

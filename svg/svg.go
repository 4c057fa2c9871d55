// Package svg implements a [liquid.RenderSink] that produces SVG documents.
//
// Clip regions become clipPath definitions and looping animations become SMIL
// animateTransform elements, so the resulting document animates on its own
// in browsers.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/liquid"
)

// Document is an SVG document of a fixed size. It is not safe for concurrent
// use.
type Document struct {
	Width  float64
	Height float64
	// Static documents have no animations; animating their shapes fails
	// with [liquid.ErrNoSurface].
	Static bool
	// MaxPrecision limits the number of decimal places of coordinates. See
	// [liquid.SVGOptions].
	MaxPrecision int

	nodes  []node
	clipID int
}

var _ liquid.RenderSink = (*Document)(nil)

// New returns an empty document of the given size.
func New(width, height float64) *Document {
	return &Document{Width: width, Height: height, MaxPrecision: 3}
}

type node interface {
	write(w *writer)
}

// Group is a <g> element.
type Group struct {
	doc    *Document
	name   string
	clipID string
	clip   *Shape
	nodes  []node
}

// Shape is a drawn element.
type Shape struct {
	doc   *Document
	spec  liquid.ShapeSpec
	anims []liquid.Animation
}

// ParsePoint implements liquid.RenderSink. The unit square spans the whole
// document.
func (d *Document) ParsePoint(pt liquid.Point) liquid.Point {
	return pt.Transform(liquid.MapUnitSquare(liquid.Rect{X1: d.Width, Y1: d.Height}))
}

// AddGroup implements liquid.RenderSink.
func (d *Document) AddGroup(name string) liquid.Group {
	g := &Group{doc: d, name: name}
	d.nodes = append(d.nodes, g)
	return g
}

// AddShape implements liquid.RenderSink.
func (d *Document) AddShape(spec liquid.ShapeSpec) liquid.Shape {
	sh := &Shape{doc: d, spec: spec}
	d.nodes = append(d.nodes, sh)
	return sh
}

// AddShape implements liquid.Group.
func (g *Group) AddShape(spec liquid.ShapeSpec) liquid.Shape {
	sh := &Shape{doc: g.doc, spec: spec}
	g.nodes = append(g.nodes, sh)
	return sh
}

// SetClip implements liquid.Group.
func (g *Group) SetClip(c liquid.Circle) liquid.Shape {
	g.doc.clipID++
	g.clipID = "clip-" + strconv.Itoa(g.doc.clipID)
	g.clip = &Shape{
		doc:  g.doc,
		spec: liquid.ShapeSpec{Kind: liquid.CircleShape, Name: g.clipID, Circle: c},
	}
	return g.clip
}

// ClipShape implements liquid.Group.
func (g *Group) ClipShape() liquid.Shape {
	if g.clip == nil {
		return nil
	}
	return g.clip
}

// BoundingBox implements liquid.Shape. Paths report their control box.
func (sh *Shape) BoundingBox() liquid.Rect {
	switch sh.spec.Kind {
	case liquid.PathShape:
		return sh.spec.Path.ControlBox()
	case liquid.CircleShape:
		return sh.spec.Circle.BoundingBox()
	default:
		return liquid.Rect{X0: sh.spec.At.X, Y0: sh.spec.At.Y, X1: sh.spec.At.X, Y1: sh.spec.At.Y}
	}
}

// Animate implements liquid.Shape. Only the translation of the animation's
// matrix is rendered.
func (sh *Shape) Animate(anim liquid.Animation) error {
	if sh.doc.Static {
		return liquid.ErrNoSurface
	}
	if !anim.Matrix.IsTranslation() {
		return errors.New("only translations are supported")
	}
	if anim.Duration <= 0 {
		return fmt.Errorf("invalid duration %s", anim.Duration)
	}
	sh.anims = append(sh.anims, anim)
	return nil
}

// Bytes returns the encoded document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo encodes the document and writes it to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	ww := &writer{w: w, prec: d.MaxPrecision}
	ww.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`,
		ww.num(d.Width), ww.num(d.Height))
	ww.printf("\n")

	var clips []*Group
	for _, n := range d.nodes {
		if g, ok := n.(*Group); ok && g.clip != nil {
			clips = append(clips, g)
		}
	}
	if len(clips) > 0 {
		ww.printf("<defs>\n")
		for _, g := range clips {
			ww.printf(`<clipPath id="%s"><path d="`, g.clipID)
			ww.path(g.clip.spec.Circle.Path())
			ww.printf("\"/></clipPath>\n")
		}
		ww.printf("</defs>\n")
	}
	for _, n := range d.nodes {
		n.write(ww)
	}
	ww.printf("</svg>\n")
	return ww.n, ww.err
}

func (g *Group) write(w *writer) {
	w.printf(`<g id="%s"`, escape(g.name))
	if g.clip != nil {
		w.printf(` clip-path="url(#%s)"`, g.clipID)
	}
	w.printf(">\n")
	for _, n := range g.nodes {
		n.write(w)
	}
	w.printf("</g>\n")
}

func (sh *Shape) write(w *writer) {
	spec := sh.spec
	switch spec.Kind {
	case liquid.PathShape:
		w.printf(`<path id="%s" d="`, escape(spec.Name))
		w.path(spec.Path)
		w.printf(`"`)
	case liquid.CircleShape:
		c := spec.Circle
		w.printf(`<circle id="%s" cx="%s" cy="%s" r="%s"`,
			escape(spec.Name), w.num(c.Center.X), w.num(c.Center.Y), w.num(c.Radius))
	case liquid.TextShape:
		w.printf(`<text id="%s" x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="central"`,
			escape(spec.Name), w.num(spec.At.X), w.num(spec.At.Y), w.num(spec.FontSize))
	default:
		w.fail(fmt.Errorf("shape %s: unsupported kind %s", spec.Name, spec.Kind))
		return
	}
	w.attrs(spec.Attrs)

	switch {
	case spec.Kind == liquid.TextShape:
		w.printf(">%s", escape(spec.Text))
		w.anims(sh.anims)
		w.printf("</text>\n")
	case len(sh.anims) > 0:
		w.printf(">\n")
		w.anims(sh.anims)
		w.printf("</%s>\n", spec.Kind)
	default:
		w.printf("/>\n")
	}
}

type writer struct {
	w    io.Writer
	prec int
	n    int64
	err  error
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	n, err := fmt.Fprintf(w.w, format, args...)
	w.n += int64(n)
	w.fail(err)
}

func (w *writer) num(v float64) string {
	return liquid.FormatFloat(v, w.prec)
}

func (w *writer) path(p liquid.BezPath) {
	w.printf("%s", p.SVG(liquid.SVGOptions{MaxPrecision: w.prec}))
}

func (w *writer) attrs(a liquid.Attrs) {
	if a.Fill != "" {
		w.printf(` fill="%s"`, escape(Color(a.Fill)))
	}
	if a.Stroke != "" {
		w.printf(` stroke="%s"`, escape(Color(a.Stroke)))
	}
	for _, attr := range []struct {
		name string
		v    *float64
	}{
		{"opacity", a.Opacity},
		{"fill-opacity", a.FillOpacity},
		{"stroke-opacity", a.StrokeOpacity},
		{"stroke-width", a.LineWidth},
	} {
		if attr.v != nil {
			w.printf(` %s="%s"`, attr.name, w.num(*attr.v))
		}
	}
}

func (w *writer) anims(anims []liquid.Animation) {
	for _, anim := range anims {
		to := anim.Matrix.Translation()
		repeat := "1"
		if anim.Repeat {
			repeat = "indefinite"
		}
		w.printf(`<animateTransform attributeName="transform" type="translate" from="0 0" to="%s %s" dur="%dms" repeatCount="%s"/>`,
			w.num(to.X), w.num(to.Y), anim.Duration.Milliseconds(), repeat)
		w.printf("\n")
	}
}

// Color canonicalizes hex colors to the #rrggbb form. Other colors are
// returned unchanged.
func Color(c string) string {
	if !strings.HasPrefix(c, "#") {
		return c
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return c
	}
	return col.Hex()
}

func escape(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

package liquid

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// GaugeGeometry is the placement of a gauge on the canvas.
type GaugeGeometry struct {
	Center Point
	Radius float64
	// FillLevel is the fraction of the gauge covered by liquid; 0 is empty
	// and 1 is full.
	FillLevel float64
}

// Circle returns the outline of the gauge.
func (g GaugeGeometry) Circle() Circle {
	return Circle{Center: g.Center, Radius: g.Radius}
}

// WaveInstance describes one of the overlapping waves of a gauge. Later waves
// are flatter, more transparent and faster than earlier ones.
type WaveInstance struct {
	Index int
	// AmplitudeDivisor divides the width of the clip region to get the
	// wave's amplitude.
	AmplitudeDivisor float64
	// OpacityFactor scales the opacity of the fill.
	OpacityFactor float64
	// Duration is the time it takes the wave to travel two wave lengths.
	Duration time.Duration
}

// WaveInstances returns the waves of a gauge with count waves.
func WaveInstances(count int) []WaveInstance {
	out := make([]WaveInstance, 0, max(count, 0))
	for i := range count {
		var factor float64
		if count > 1 {
			factor = float64(i) / float64(count-1)
		}
		out = append(out, WaveInstance{
			Index:            i,
			AmplitudeDivisor: lerp(56, 64, factor),
			OpacityFactor:    lerp(0.6, 0.3, factor),
			Duration:         time.Duration(lerp(5000, 3500, factor) * float64(time.Millisecond)),
		})
	}
	return out
}

// WaveShape is a wave that has been added to a [RenderSink].
type WaveShape struct {
	WaveInstance
	Shape     Shape
	Amplitude float64
	Opacity   float64
	// Err is non-nil if the wave couldn't be animated. The wave is still
	// drawn, just static.
	Err *AnimationError
}

// Drawing is the result of drawing a gauge.
type Drawing struct {
	Geometry GaugeGeometry
	// WaterLevel is the y coordinate of the wave's baseline.
	WaterLevel float64
	Group      Group
	Clip       Shape
	Waves      []WaveShape
	Ring       Shape
	// Label is nil unless the gauge has a label.
	Label Shape
}

// AnimationErrors returns the errors of all waves that couldn't be animated.
func (d *Drawing) AnimationErrors() []error {
	var errs []error
	for _, w := range d.Waves {
		if w.Err != nil {
			errs = append(errs, w.Err)
		}
	}
	return errs
}

// ErrDegenerate is returned by [Gauge.Draw] when the gauge would have no area
// on the canvas.
var ErrDegenerate = errors.New("gauge has no area")

// Gauge draws liquid fill gauges. A Gauge is immutable and may be used to
// draw into several sinks concurrently.
type Gauge struct {
	cfg    GaugeConfig
	logger *slog.Logger
}

// Option configures a [Gauge].
type Option func(*Gauge)

// WithLogger sets the logger that failures to animate waves are logged to.
// The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(g *Gauge) { g.logger = l }
}

// NewGauge returns a gauge for cfg. Unset options of cfg take their default
// values.
func NewGauge(cfg GaugeConfig, opts ...Option) (*Gauge, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gauge config: %w", err)
	}
	// Don't share the caller's slices and pointers.
	cfg.Points = append([]Point(nil), cfg.Points...)
	cfg.Style = Attrs{}.Merge(cfg.Style)
	cfg.LabelStyle = Attrs{}.Merge(cfg.LabelStyle)
	cfg.Opacity = cloneFloat(cfg.Opacity)

	g := &Gauge{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the gauge's configuration, with defaults applied.
func (g *Gauge) Config() GaugeConfig { return g.cfg }

// Geometry computes the placement of the gauge in sink.
func (g *Gauge) Geometry(sink RenderSink) GaugeGeometry {
	center := sink.ParsePoint(Pt(0.5, 0.5))
	minX := sink.ParsePoint(Pt(g.cfg.Points[0].X, 0.5))
	halfWidth := center.X - minX.X
	return GaugeGeometry{
		Center:    center,
		Radius:    min(halfWidth, minX.Y*g.cfg.Radius),
		FillLevel: g.cfg.Points[1].Y,
	}
}

// Draw draws the gauge into sink: a group of waves clipped to the gauge's
// circle, followed by the ring and, optionally, the label. Each call draws the
// whole gauge anew.
//
// Waves that can't be animated are drawn anyway; their errors are recorded in
// the returned drawing and logged. Draw only fails if the gauge has no area.
func (g *Gauge) Draw(sink RenderSink) (*Drawing, error) {
	geom := g.Geometry(sink)
	if !(geom.Radius > 0) {
		return nil, fmt.Errorf("radius %g: %w", geom.Radius, ErrDegenerate)
	}
	fill := FillAttrs(g.cfg.Style, g.cfg.Color)

	d := &Drawing{Geometry: geom}
	d.Group = sink.AddGroup("waves")
	d.Clip = d.Group.SetClip(geom.Circle())

	bbox := d.Group.ClipShape().BoundingBox()
	width := bbox.Width()
	d.WaterLevel = bbox.MinY() + bbox.Height()*(1-geom.FillLevel)
	move := Translate(Vec(width/2, 0))

	for _, inst := range WaveInstances(g.cfg.WaveCount) {
		w := WaveShape{
			WaveInstance: inst,
			Amplitude:    width / inst.AmplitudeDivisor,
			Opacity:      inst.OpacityFactor * fill.OpacityOr(1),
		}
		// The path is generated for a circle four times the gauge's size so
		// that it still covers the clip region while it moves.
		path := WavePath(geom.Radius*4, d.WaterLevel, width/4, 0, w.Amplitude, geom.Center.X, geom.Center.Y)
		name := fmt.Sprintf("wave-path-%d", inst.Index)
		w.Shape = d.Group.AddShape(ShapeSpec{
			Kind:  PathShape,
			Name:  name,
			Path:  path,
			Attrs: Attrs{Fill: fill.Fill, Opacity: Float(w.Opacity)},
		})
		err := w.Shape.Animate(Animation{
			Matrix:   move,
			Duration: inst.Duration,
			Repeat:   true,
		})
		if err != nil {
			w.Err = &AnimationError{Wave: inst.Index, Name: name, Err: err}
			g.logger.Warn("wave drawn without animation", "wave", name, "err", err)
		}
		d.Waves = append(d.Waves, w)
	}

	d.Ring = sink.AddShape(ShapeSpec{
		Kind:   CircleShape,
		Name:   "wrap",
		Circle: geom.Circle(),
		Attrs:  LineAttrs(g.cfg.Style, g.cfg.Color, g.cfg.Opacity),
	})

	if g.cfg.Label != "" {
		d.Label = sink.AddShape(ShapeSpec{
			Kind:     TextShape,
			Name:     "statistic",
			Text:     fmt.Sprintf(g.cfg.Label, geom.FillLevel*100),
			At:       geom.Center,
			FontSize: geom.Radius / 3,
			Attrs:    Attrs{Fill: g.cfg.Color}.Merge(g.cfg.LabelStyle),
		})
	}
	return d, nil
}

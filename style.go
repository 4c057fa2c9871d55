package liquid

// Attrs are the paint attributes of a shape. They serve both as caller
// supplied style overrides and as the resolved attributes handed to a
// [RenderSink]. Empty strings and nil pointers mean "not set".
type Attrs struct {
	Fill          string   `yaml:"fill,omitempty"`
	Stroke        string   `yaml:"stroke,omitempty"`
	Opacity       *float64 `yaml:"opacity,omitempty"`
	FillOpacity   *float64 `yaml:"fillOpacity,omitempty"`
	StrokeOpacity *float64 `yaml:"strokeOpacity,omitempty"`
	LineWidth     *float64 `yaml:"lineWidth,omitempty"`
}

// Float returns a pointer to v, for use in [Attrs].
func Float(v float64) *float64 { return &v }

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

// Merge returns a copy of a with all attributes that are set in o replacing
// those of a. The result shares no pointers with either argument.
func (a Attrs) Merge(o Attrs) Attrs {
	out := Attrs{
		Fill:          a.Fill,
		Stroke:        a.Stroke,
		Opacity:       cloneFloat(a.Opacity),
		FillOpacity:   cloneFloat(a.FillOpacity),
		StrokeOpacity: cloneFloat(a.StrokeOpacity),
		LineWidth:     cloneFloat(a.LineWidth),
	}
	if o.Fill != "" {
		out.Fill = o.Fill
	}
	if o.Stroke != "" {
		out.Stroke = o.Stroke
	}
	if o.Opacity != nil {
		out.Opacity = cloneFloat(o.Opacity)
	}
	if o.FillOpacity != nil {
		out.FillOpacity = cloneFloat(o.FillOpacity)
	}
	if o.StrokeOpacity != nil {
		out.StrokeOpacity = cloneFloat(o.StrokeOpacity)
	}
	if o.LineWidth != nil {
		out.LineWidth = cloneFloat(o.LineWidth)
	}
	return out
}

// OpacityOr returns the opacity, or def if none is set.
func (a Attrs) OpacityOr(def float64) float64 {
	if a.Opacity == nil {
		return def
	}
	return *a.Opacity
}

// FillAttrs resolves the attributes of the wave fill. The result is fully
// opaque unless style says otherwise, and is filled with color unless style
// sets a fill.
func FillAttrs(style Attrs, color string) Attrs {
	attrs := Attrs{Opacity: Float(1)}.Merge(style)
	if color != "" && attrs.Fill == "" {
		attrs.Fill = color
	}
	return attrs
}

// LineAttrs resolves the attributes of the outer ring. The ring has an
// invisible fill and a 2 pixel wide stroke by default; its stroke is color
// unless style sets one. A non-nil opacity overrides both the opacity and the
// stroke opacity.
func LineAttrs(style Attrs, color string, opacity *float64) Attrs {
	attrs := Attrs{
		Fill:        "#fff",
		FillOpacity: Float(0),
		LineWidth:   Float(2),
	}.Merge(style)
	if color != "" && attrs.Stroke == "" {
		attrs.Stroke = color
	}
	if opacity != nil {
		attrs.Opacity = Float(*opacity)
		attrs.StrokeOpacity = Float(*opacity)
	}
	return attrs
}

package liquid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRadiusRatio is the share of the available radius the gauge uses.
	DefaultRadiusRatio = 0.9
	// DefaultWaveCount is the number of waves drawn when WaveCount is zero.
	DefaultWaveCount = 3
	// DefaultLabel formats the fill level, in percent, of gauges whose
	// Label is "auto".
	DefaultLabel = "%.2f%%"
)

// GaugeConfig configures a [Gauge].
//
// A config file is YAML:
//
//	points:
//	  - {x: 0, y: 0.5}
//	  - {x: 1, y: 0.7}
//	color: "#1890ff"
//	style: {stroke: "#0050b3"}
//	waveCount: 3
type GaugeConfig struct {
	// Points are the data points of the gauge in the y-up unit square. The x
	// coordinate of the first point is the left extent of the gauge, the y
	// coordinate of the second point is the fill level. At least two points
	// are required.
	Points []Point `yaml:"points"`
	// Color fills the waves and strokes the ring, unless Style says
	// otherwise.
	Color string `yaml:"color,omitempty"`
	Style Attrs  `yaml:"style,omitempty"`
	// Opacity, if set, overrides the opacity of the ring.
	Opacity *float64 `yaml:"opacity,omitempty"`
	// Radius is the radius of the gauge relative to half the canvas height,
	// in (0, 1]. Zero means DefaultRadiusRatio.
	Radius float64 `yaml:"radius,omitempty"`
	// WaveCount is the number of overlapping waves. Zero means
	// DefaultWaveCount.
	WaveCount int `yaml:"waveCount,omitempty"`
	// Label, if not empty, is a format string for the fill level in percent,
	// drawn at the center of the gauge. "auto" means DefaultLabel.
	Label      string `yaml:"label,omitempty"`
	LabelStyle Attrs  `yaml:"labelStyle,omitempty"`
}

// WithDefaults returns a copy of cfg with unset options replaced by their
// defaults.
func (cfg GaugeConfig) WithDefaults() GaugeConfig {
	if cfg.Radius == 0 {
		cfg.Radius = DefaultRadiusRatio
	}
	if cfg.WaveCount == 0 {
		cfg.WaveCount = DefaultWaveCount
	}
	if cfg.Label == "auto" {
		cfg.Label = DefaultLabel
	}
	return cfg
}

// Validate reports the first problem with cfg. It expects defaults to have
// been applied.
func (cfg GaugeConfig) Validate() error {
	if len(cfg.Points) < 2 {
		return fmt.Errorf("need at least 2 points, got %d", len(cfg.Points))
	}
	for i, pt := range cfg.Points {
		if pt.IsNaN() {
			return fmt.Errorf("point %d is NaN", i)
		}
	}
	if x := cfg.Points[0].X; x < 0 || x >= 0.5 {
		return fmt.Errorf("first point must lie left of the center, got x=%g", x)
	}
	if cfg.Radius <= 0 || cfg.Radius > 1 {
		return fmt.Errorf("radius ratio must be in (0, 1], got %g", cfg.Radius)
	}
	if cfg.WaveCount < 0 {
		return fmt.Errorf("wave count must not be negative, got %d", cfg.WaveCount)
	}
	if cfg.Opacity != nil && (*cfg.Opacity < 0 || *cfg.Opacity > 1) {
		return fmt.Errorf("opacity must be in [0, 1], got %g", *cfg.Opacity)
	}
	if err := validateLabel(cfg.Label); err != nil {
		return err
	}
	colors := []struct{ what, c string }{
		{"color", cfg.Color},
		{"style fill", cfg.Style.Fill},
		{"style stroke", cfg.Style.Stroke},
		{"label fill", cfg.LabelStyle.Fill},
	}
	for _, c := range colors {
		if err := validateColor(c.c); err != nil {
			return fmt.Errorf("invalid %s: %w", c.what, err)
		}
	}
	return nil
}

// validateColor checks hex colors. Other colors, such as CSS color names, are
// left to the host.
func validateColor(c string) error {
	if !strings.HasPrefix(c, "#") {
		return nil
	}
	if len(c) != 4 && len(c) != 7 {
		return fmt.Errorf("%q is not a hex color", c)
	}
	if _, err := colorful.Hex(c); err != nil {
		return fmt.Errorf("%q is not a hex color", c)
	}
	return nil
}

// Limits on label formats. Verb widths and precisions are checked before the
// label is formatted.
const (
	maxLabelLen   = 64
	maxLabelWidth = 32
)

var labelVerb = regexp.MustCompile(`%[-+# 0]*(?:\[\d+\])?(\d*)(?:\.(?:\[\d+\])?(\d*))?`)

func validateLabel(label string) error {
	if label == "" {
		return nil
	}
	if len(label) > maxLabelLen {
		return fmt.Errorf("label must not exceed %d bytes, got %d", maxLabelLen, len(label))
	}
	for _, m := range labelVerb.FindAllStringSubmatch(strings.ReplaceAll(label, "%%", ""), -1) {
		for _, digits := range m[1:] {
			if digits == "" {
				continue
			}
			if n, err := strconv.Atoi(digits); err != nil || n > maxLabelWidth {
				return fmt.Errorf("label %q: width and precision must not exceed %d", label, maxLabelWidth)
			}
		}
	}
	s := fmt.Sprintf(label, 50.0)
	if strings.Contains(s, "%!") {
		return fmt.Errorf("label %q must format exactly one number", label)
	}
	if len(s) > maxLabelLen {
		return fmt.Errorf("label %q formats to more than %d bytes", label, maxLabelLen)
	}
	return nil
}

// ParseConfig parses a YAML gauge config, applies defaults and validates it.
// Unknown keys are rejected.
func ParseConfig(data []byte) (GaugeConfig, error) {
	var cfg GaugeConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return GaugeConfig{}, errors.New("empty gauge config")
		}
		return GaugeConfig{}, fmt.Errorf("failed to parse gauge config: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return GaugeConfig{}, fmt.Errorf("invalid gauge config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML gauge config at path.
func LoadConfig(path string) (GaugeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GaugeConfig{}, fmt.Errorf("failed to read gauge config: %w", err)
	}
	return ParseConfig(data)
}

// YAML encodes cfg in the format read by [ParseConfig].
func (cfg GaugeConfig) YAML() ([]byte, error) {
	return yaml.Marshal(cfg)
}

package liquid

import (
	"math"
)

// WaveParameters describes a sine wave. WaveLength must be positive and
// Amplitude must not be negative. Phase is in radians and may take any value;
// it is normalized with [NormalizePhase] before use.
type WaveParameters struct {
	WaveLength float64
	Amplitude  float64
	Phase      float64
}

// Path returns the closed wave path for p. See [WavePath].
func (p WaveParameters) Path(radius, waterLevel, cx, cy float64) BezPath {
	return WavePath(radius, waterLevel, p.WaveLength, p.Phase, p.Amplitude, cx, cy)
}

// WaveSegment returns the two control points and the end point of the cubic
// Bézier approximating one quarter period of a sine wave.
//
// The segment starts at (x, y) where y is 0 for stages 0 and 2, and ±amplitude
// for stages 1 and 3. It spans waveLength/4 horizontally. Stage 0 rises to the
// crest, stage 1 falls back to the baseline, stage 2 falls to the trough and
// stage 3 rises back to the baseline. The points are in a y-up space; stage is
// taken modulo 4.
//
// The control points match the sine's tangent at the quarter-period
// boundaries. An amplitude of 0 produces a flat segment.
func WaveSegment(x float64, stage int, waveLength, amplitude float64) [3]Point {
	// k is half the horizontal distance covered while the sine rises by one
	// radian of phase.
	k := waveLength / (4 * math.Pi)
	q := waveLength / 4
	switch stage & 3 {
	case 0:
		return [3]Point{
			Pt(x+k, amplitude/2),
			Pt(x+2*k, amplitude),
			Pt(x+q, amplitude),
		}
	case 1:
		return [3]Point{
			Pt(x+k*(math.Pi-2), amplitude),
			Pt(x+k*(math.Pi-1), amplitude/2),
			Pt(x+q, 0),
		}
	case 2:
		return [3]Point{
			Pt(x+k, -amplitude/2),
			Pt(x+2*k, -amplitude),
			Pt(x+q, -amplitude),
		}
	default:
		return [3]Point{
			Pt(x+k*(math.Pi-2), -amplitude),
			Pt(x+k*(math.Pi-1), -amplitude/2),
			Pt(x+q, 0),
		}
	}
}

// NormalizePhase maps phase into the half-open interval (-2π, 0].
func NormalizePhase(phase float64) float64 {
	const tau = 2 * math.Pi
	phase = math.Mod(phase, tau)
	if phase > 0 {
		phase -= tau
	}
	if phase <= -tau {
		phase += tau
	}
	return phase
}

// CurveCount returns the number of quarter segments [WavePath] emits for a
// circle of the given radius: enough to cover twice the diameter, rounded up
// to an even count.
func CurveCount(radius, waveLength float64) int {
	return int(math.Ceil(2*radius/waveLength*4)) * 2
}

// WavePath returns a closed path whose top edge is a sine wave with the given
// wave length, phase and amplitude, centered vertically on waterLevel, and
// whose bottom edge lies on the bottom of the circle at (cx, cy) with the
// given radius.
//
// The wave starts one diameter to the left of the circle and extends far
// enough to the right that translating the path horizontally by up to a
// diameter never exposes an unfilled edge inside the circle. Shifting phase
// by a multiple of 2π yields the same path.
//
// radius and waveLength must be positive and amplitude must not be negative.
// Violating this produces meaningless paths.
func WavePath(radius, waterLevel, waveLength, phase, amplitude, cx, cy float64) BezPath {
	n := CurveCount(radius, waveLength)
	offset := NormalizePhase(phase) / (2 * math.Pi) * waveLength
	left := cx - radius + offset - 2*radius

	// Segments are computed in a y-up space relative to (left, waterLevel).
	aff := FlipY.ThenTranslate(Vec(left, waterLevel))

	p := make(BezPath, 0, n+4)
	p.MoveTo(Pt(left, waterLevel))
	var waveRight float64
	for c := range n {
		pts := WaveSegment(float64(c)*waveLength/4, c%4, waveLength, amplitude)
		p.CubicTo(pts[0].Transform(aff), pts[1].Transform(aff), pts[2].Transform(aff))
		waveRight = pts[2].X
	}
	p.LineTo(Pt(waveRight+left, cy+radius))
	p.LineTo(Pt(left, cy+radius))
	p.ClosePath()
	return p
}

package liquid

import (
	"math"
	"testing"
)

// evalCubic evaluates the cubic Bézier (p0, p1, p2, p3) at t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}

func TestWaveSegmentStages(t *testing.T) {
	// With a wave length of 4π, a quarter period is π wide and the inner
	// control points sit at integer offsets.
	const (
		L = 4 * math.Pi
		A = 2.0
	)
	tests := []struct {
		stage int
		want  [3]Point
	}{
		{0, [3]Point{Pt(1, 1), Pt(2, 2), Pt(math.Pi, 2)}},
		{1, [3]Point{Pt(math.Pi-2, 2), Pt(math.Pi-1, 1), Pt(math.Pi, 0)}},
		{2, [3]Point{Pt(1, -1), Pt(2, -2), Pt(math.Pi, -2)}},
		{3, [3]Point{Pt(math.Pi-2, -2), Pt(math.Pi-1, -1), Pt(math.Pi, 0)}},
		{-1, [3]Point{Pt(math.Pi-2, -2), Pt(math.Pi-1, -1), Pt(math.Pi, 0)}},
		{6, [3]Point{Pt(1, -1), Pt(2, -2), Pt(math.Pi, -2)}},
	}
	for _, tt := range tests {
		got := WaveSegment(0, tt.stage, L, A)
		diff(t, tt.want, got, approx)
	}

	got := WaveSegment(10, 0, L, A)
	diff(t, [3]Point{Pt(11, 1), Pt(12, 2), Pt(10+math.Pi, 2)}, got, approx)
}

func TestWaveSegmentApproximatesSine(t *testing.T) {
	const (
		L = 40.0
		A = 5.0
	)
	starts := [4]float64{0, A, 0, -A}
	for stage := range 4 {
		x0 := float64(stage) * L / 4
		pts := WaveSegment(x0, stage, L, A)
		p0 := Pt(x0, starts[stage])
		for i := 0; i <= 20; i++ {
			pt := evalCubic(p0, pts[0], pts[1], pts[2], float64(i)/20)
			want := A * math.Sin(pt.X/L*2*math.Pi)
			if d := math.Abs(pt.Y - want); d > 0.01*A {
				t.Errorf("stage %d: at x=%v got y=%v, want %v", stage, pt.X, pt.Y, want)
			}
		}
	}
}

func TestWaveSegmentTangentContinuity(t *testing.T) {
	// At every quarter boundary the incoming and outgoing control arms must
	// be collinear, otherwise the wave has kinks.
	const (
		L = 12.0
		A = 3.0
	)
	var prev [3]Point
	for c := range 8 {
		pts := WaveSegment(float64(c)*L/4, c%4, L, A)
		if c > 0 {
			in := Vec(prev[2].X-prev[1].X, prev[2].Y-prev[1].Y)
			out := Vec(pts[0].X-prev[2].X, pts[0].Y-prev[2].Y)
			if cross := in.X*out.Y - in.Y*out.X; math.Abs(cross) > 1e-9 {
				t.Errorf("segment %d: tangent discontinuity, cross product %v", c, cross)
			}
		}
		prev = pts
	}
}

func TestNormalizePhase(t *testing.T) {
	const tau = 2 * math.Pi
	for _, phase := range []float64{0, 1, -1, math.Pi, -math.Pi, tau, -tau, 3 * tau, 100, -100, 1e6} {
		got := NormalizePhase(phase)
		if got > 0 || got <= -tau {
			t.Errorf("NormalizePhase(%v) = %v, outside of (-2π, 0]", phase, got)
		}
		if d := math.Mod(phase-got, tau); math.Abs(d) > 1e-6 && math.Abs(math.Abs(d)-tau) > 1e-6 {
			t.Errorf("NormalizePhase(%v) = %v, not congruent modulo 2π", phase, got)
		}
	}
	if got := NormalizePhase(-tau); got != 0 {
		t.Errorf("NormalizePhase(-2π) = %v, want 0", got)
	}
	if got := NormalizePhase(math.Pi); math.Abs(got+math.Pi) > 1e-12 {
		t.Errorf("NormalizePhase(π) = %v, want -π", got)
	}
}

func TestCurveCount(t *testing.T) {
	tests := []struct {
		radius, waveLength float64
		want               int
	}{
		{100, 50, 32},
		{10, 7, 24},
		{1, 4, 4},
		{360, 80, 72},
	}
	for _, tt := range tests {
		if got := CurveCount(tt.radius, tt.waveLength); got != tt.want {
			t.Errorf("CurveCount(%v, %v) = %d, want %d", tt.radius, tt.waveLength, got, tt.want)
		}
	}
}

func TestWavePathStructure(t *testing.T) {
	tests := []struct {
		radius, waveLength, amplitude float64
	}{
		{100, 50, 3},
		{10, 7, 0},
		{720, 45, 3.2},
		{1, 100, 1},
	}
	for _, tt := range tests {
		const (
			cx, cy = 200, 150
			level  = 120
		)
		p := WavePath(tt.radius, level, tt.waveLength, 0, tt.amplitude, cx, cy)
		n := CurveCount(tt.radius, tt.waveLength)
		if len(p) != n+4 {
			t.Fatalf("got %d elements, want %d", len(p), n+4)
		}
		left := cx - tt.radius - 2*tt.radius
		diff(t, MoveTo(Pt(left, level)), p[0], approx)
		if got := countKind(p, CubicToKind); got != n {
			t.Errorf("got %d cubics, want %d", got, n)
		}
		for _, el := range p[1 : n+1] {
			if el.Kind != CubicToKind {
				t.Fatalf("got %s, want CubicTo", el)
			}
		}
		right := left + float64(n)*tt.waveLength/4
		diff(t, LineTo(Pt(right, cy+tt.radius)), p[n+1], approx)
		diff(t, LineTo(Pt(left, cy+tt.radius)), p[n+2], approx)
		diff(t, ClosePath(), p[n+3])

		// The wave covers the circle even after being shifted by a diameter.
		box := p.ControlBox()
		if box.MinX() > cx-tt.radius-2*tt.radius+1e-9 || box.MaxX() < cx+tt.radius {
			t.Errorf("wave spans [%v, %v], doesn't cover the circle", box.MinX(), box.MaxX())
		}
	}
}

func TestWavePathCrest(t *testing.T) {
	const (
		L     = 40.0
		A     = 4.0
		level = 100.0
	)
	p := WavePath(50, level, L, 0, A, 0, 0)
	left := -150.0
	// Crests lie above the water level in y-down space.
	diff(t, Pt(left+L/4, level-A), p[1].P2, approx)
	diff(t, Pt(left+L/2, level), p[2].P2, approx)
	diff(t, Pt(left+3*L/4, level+A), p[3].P2, approx)
	diff(t, Pt(left+L, level), p[4].P2, approx)
}

func TestWavePathPhasePeriodic(t *testing.T) {
	for _, phase := range []float64{0, 1, -1, math.Pi, 10, -20, 2 * math.Pi} {
		a := WavePath(80, 60, 35, phase, 2.5, 100, 100)
		b := WavePath(80, 60, 35, phase-2*math.Pi, 2.5, 100, 100)
		diff(t, a, b, approx)
	}
}

func TestWavePathPhaseShift(t *testing.T) {
	const L = 40.0
	a := WavePath(50, 70, L, 0, 3, 100, 100)
	b := WavePath(50, 70, L, -math.Pi/2, 3, 100, 100)
	// A quarter period of phase shifts the whole path left by L/4.
	diff(t, translatePath(a, Vec(-L/4, 0)), b, approx)
}

func TestWavePathAmplitudeSymmetry(t *testing.T) {
	const (
		r = 60.0
		L = 30.0
		A = 2.5
	)
	neg := WavePath(r, 75, L, 0, -A, 100, 100)
	shifted := WavePath(r, 75, L, math.Pi, A, 100, 100)
	n := CurveCount(r, L)
	// Shifting by π moves the start half a period to the left, so the
	// segments of shifted lag two quarters behind those of neg.
	for c := 0; c < n-2; c++ {
		diff(t, neg[1+c], shifted[3+c], approx)
	}
}

func TestWavePathFlat(t *testing.T) {
	const level = 42.5
	p := WavePath(30, level, 12, 0.3, 0, 50, 50)
	for _, el := range p {
		if el.Kind != CubicToKind {
			continue
		}
		for _, pt := range []Point{el.P0, el.P1, el.P2} {
			if pt.Y != level {
				t.Errorf("got y=%v in %s, want %v", pt.Y, el, level)
			}
		}
	}
	if p[0].P0.Y != level {
		t.Errorf("path starts at y=%v, want %v", p[0].P0.Y, level)
	}
}

func TestWaveParametersPath(t *testing.T) {
	params := WaveParameters{WaveLength: 25, Amplitude: 1.5, Phase: 0.7}
	diff(t, WavePath(40, 10, 25, 0.7, 1.5, 5, 6), params.Path(40, 10, 5, 6))
}

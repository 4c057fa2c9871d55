// Package liquid draws liquid fill gauges: circles filled to a level, whose
// surface is an animated sine wave.
//
// # Waves
//
// A sine wave is approximated by cubic Béziers, four per period, each
// spanning a quarter of the wave length (see [WaveSegment]). [WavePath] tiles
// these quarter segments across a circle's bounding box and closes the shape
// below the circle, producing a filled region whose top edge is the wave.
// The path is meant to be clipped to the circle; it extends a diameter past
// the circle on either side so that it can be moved horizontally without
// exposing unfilled edges. Because shifting the phase by 2π yields the same
// path, translating a wave by a multiple of its wave length and jumping back
// produces a seamless loop.
//
// # Gauges
//
// A [Gauge] composes several overlapping waves with decreasing amplitude and
// opacity and increasing speed, clips them to a circle and draws a ring
// around them. Gauges don't render anything themselves. Instead, they draw
// into a [RenderSink] provided by the host, which maps coordinates, owns the
// resulting shapes and runs animations. Package
// [honnef.co/go/liquid/svg] provides a RenderSink that produces SVG
// documents.
//
// Gauges are configured with a [GaugeConfig], which can be loaded from YAML
// with [LoadConfig]. The appearance of waves and ring is derived from the
// config's color and style by [FillAttrs] and [LineAttrs].
//
// # Geometry
//
// The package includes the small set of 2D primitives gauges are built from:
// [Point], [Vec2], [Affine], [Rect], [Circle] and [BezPath]. Canvas space is
// y-down, like in most graphics APIs.
package liquid

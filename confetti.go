package confetti

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA8 returns the color as 8-bit channels, for renderers that want bytes.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions and sizes. The origin is the
// top-left of the canvas, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// ShapeKind selects how a particle is drawn.
type ShapeKind uint8

const (
	ShapeStrip ShapeKind = iota // elongated rounded rectangle (even indices)
	ShapeDot                    // square with fully rounded corners (odd indices)
)

// String returns the shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeStrip:
		return "strip"
	case ShapeDot:
		return "dot"
	default:
		return "unknown"
	}
}

// State is the activation state of a System.
type State uint8

const (
	StateIdle    State = iota // particles rest at their start positions
	StateFalling              // fall animation unlocked; terminal
)

// String returns the state name.
func (s State) String() string {
	if s == StateFalling {
		return "falling"
	}
	return "idle"
}

// Descriptor is the renderable view of one particle at one instant. Frames
// are ordered by Index.
type Descriptor struct {
	Index    int
	Position Vec2 // center of the piece
	Size     Vec2 // width, height
	Radius   float64
	Color    Color
	Rotation float64 // degrees
	Shape    ShapeKind
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// frac returns the fractional part of v.
func frac(v float64) float64 {
	return v - math.Floor(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

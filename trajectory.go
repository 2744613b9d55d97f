package confetti

import "math"

const (
	// DefaultPieceCount is the number of particles when Config.PieceCount is unset.
	DefaultPieceCount = 50
	// DefaultFallDuration is the fall time of every particle in seconds.
	DefaultFallDuration = 3.0
	// MinFallDuration replaces non-positive durations so progress never divides by zero.
	MinFallDuration = 0.01

	// StaggerStep is the spacing in seconds between delay buckets.
	StaggerStep = 0.08
	// StaggerBuckets is the number of distinct delays; delay = (index mod StaggerBuckets) * StaggerStep.
	StaggerBuckets = 10

	baseSize          = 4
	sizeVariants      = 6
	stripAspect       = 1.5
	stripCornerRadius = 2.0
	startAbove        = 20.0  // start Y sits this far above the canvas
	endBelow          = 50.0  // end Y sits this far below the canvas
	driftSpan         = 120.0 // horizontal drift range, centered on start X
	seedStep          = 0.1
	startHash         = 97.0
	driftHash         = 31.0
)

// Particle holds the fixed attributes of one confetti piece. All fields are
// derived from the index and canvas size; none change while it falls.
type Particle struct {
	Index        int
	Color        Color
	Size         float64 // base length; Extent is derived from it and Shape
	Extent       Vec2    // drawn width, height
	Radius       float64 // corner radius
	Shape        ShapeKind
	Rotation     float64 // degrees
	Start        Vec2
	End          Vec2
	Delay        float64 // seconds before this piece starts falling
	FallDuration float64 // seconds from leaving Start to reaching End
}

// Generator maps particle indices to attributes. The zero value uses the
// default palette and fall duration.
type Generator struct {
	Palette      Palette
	FallDuration float64
}

// Generate returns the attributes for index on a width x height canvas using
// the default palette and fall duration.
func Generate(index int, width, height float64) Particle {
	return Generator{}.Generate(index, width, height)
}

// Generate returns the attributes for index on a width x height canvas. It is
// pure: equal inputs always produce equal output. A zero-sized axis places
// every position on that axis at 0. Negative indices are treated as 0.
func (g Generator) Generate(index int, width, height float64) Particle {
	if index < 0 {
		index = 0
	}
	width = sanitizeExtent(width)
	height = sanitizeExtent(height)

	seed := float64(index) * seedStep
	size := float64(baseSize + index%sizeVariants)

	p := Particle{
		Index:        index,
		Color:        g.Palette.At(index),
		Size:         size,
		Rotation:     float64(index % 360),
		Delay:        float64(index%StaggerBuckets) * StaggerStep,
		FallDuration: normalizeDuration(g.FallDuration),
	}

	if index%2 == 0 {
		p.Shape = ShapeStrip
		p.Extent = Vec2{X: size, Y: size * stripAspect}
		p.Radius = stripCornerRadius
	} else {
		p.Shape = ShapeDot
		p.Extent = Vec2{X: size, Y: size}
		p.Radius = size / 2
	}

	if width > 0 {
		p.Start.X = frac(seed*startHash) * width
		p.End.X = p.Start.X + (frac(seed*driftHash)-0.5)*driftSpan
	}
	if height > 0 {
		p.Start.Y = -startAbove
		p.End.Y = height + endBelow
	}
	return p
}

// GenerateAll returns attributes for indices [0, count).
func (g Generator) GenerateAll(count int, width, height float64) []Particle {
	if count < 0 {
		count = 0
	}
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Generate(i, width, height))
	}
	return out
}

// sanitizeExtent maps negative, NaN and infinite canvas sizes to 0.
func sanitizeExtent(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// normalizeDuration applies the default for 0 and MinFallDuration for
// negative or non-finite values. Short positive durations are kept.
func normalizeDuration(d float64) float64 {
	switch {
	case d == 0:
		return DefaultFallDuration
	case d < 0 || math.IsNaN(d) || math.IsInf(d, 0):
		return MinFallDuration
	}
	return d
}

package confetti

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEasing is the curve applied to fall progress: slow start, fast finish.
const DefaultEasing = "inQuad"

var easings = map[string]ease.TweenFunc{
	"linear":  ease.Linear,
	"inQuad":  ease.InQuad,
	"inCubic": ease.InCubic,
	"inQuart": ease.InQuart,
	"inQuint": ease.InQuint,
	"inSine":  ease.InSine,
	"inExpo":  ease.InExpo,
	"inCirc":  ease.InCirc,
}

// EasingFunc looks up a named easing curve. The empty name resolves to
// DefaultEasing.
func EasingFunc(name string) (ease.TweenFunc, bool) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames returns the accepted easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// easedProgress returns the eased fraction of a fall after local seconds.
// The ends are exact so pinned particles land on their end position.
func easedProgress(fn ease.TweenFunc, local, duration float64) float64 {
	if local <= 0 {
		return 0
	}
	if local >= duration {
		return 1
	}
	return clamp01(float64(fn(float32(local), 0, 1, float32(duration))))
}

// FallTween animates one particle from Start to End with a pair of gween
// tweens, for retained renderers that advance their own objects each frame
// instead of polling System.Frame. It waits out the particle's delay first.
//
// Tween values are float32, so positions can differ from System.FrameAt in
// the low digits.
type FallTween struct {
	x, y     *gween.Tween
	wait     float32
	Position Vec2
	Done     bool
}

// NewFallTween creates a FallTween for p. A nil fn uses DefaultEasing.
func NewFallTween(p Particle, fn ease.TweenFunc) *FallTween {
	if fn == nil {
		fn, _ = EasingFunc(DefaultEasing)
	}
	d := float32(normalizeDuration(p.FallDuration))
	return &FallTween{
		x:        gween.New(float32(p.Start.X), float32(p.End.X), d, fn),
		y:        gween.New(float32(p.Start.Y), float32(p.End.Y), d, fn),
		wait:     float32(p.Delay),
		Position: p.Start,
	}
}

// Update advances the tween by dt seconds and writes the new Position. Time
// left over after the delay runs out is applied to the fall in the same call.
func (f *FallTween) Update(dt float32) {
	if f.Done || dt <= 0 {
		return
	}
	if f.wait > 0 {
		f.wait -= dt
		if f.wait > 0 {
			return
		}
		dt = -f.wait
		f.wait = 0
	}

	x, doneX := f.x.Update(dt)
	y, doneY := f.y.Update(dt)
	f.Position = Vec2{X: float64(x), Y: float64(y)}
	f.Done = doneX && doneY
}

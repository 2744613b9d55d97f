package confetti

import (
	"math"

	"github.com/tanema/gween/ease"
)

// System owns one confetti effect: its configuration, canvas size, activation
// state and the attributes of every particle. It is single-threaded; callers
// drive it from their frame loop.
type System struct {
	cfg       Config
	gen       Generator
	easeFn    ease.TweenFunc
	act       Activation
	particles []Particle
	frame     []Descriptor
	elapsed   float64 // seconds since the Falling transition (or last restart)
	width     float64
	height    float64
	finishAt  float64 // elapsed time at which the last particle lands
}

// New creates a System from cfg and evaluates the host's active flag once.
// Particles are generated immediately for cfg.Width x cfg.Height; call Resize
// when the real canvas size becomes known.
func New(cfg Config, active bool) *System {
	cfg = cfg.Normalize()
	fn, _ := EasingFunc(cfg.Easing)
	s := &System{
		cfg:    cfg,
		gen:    Generator{Palette: cfg.Palette, FallDuration: cfg.FallDuration},
		easeFn: fn,
		act:    NewActivation(active),
		width:  cfg.Width,
		height: cfg.Height,
	}
	s.regenerate()
	if s.act.Falling() {
		s.debugf("activated at construction")
	}
	return s
}

// Config returns the normalized configuration.
func (s *System) Config() Config {
	c := s.cfg
	c.Palette = c.Palette.Clone()
	c.Width, c.Height = s.width, s.height
	return c
}

// Resize reports a new canvas size. When it differs from the current size
// every particle is regenerated, and a fall in progress restarts from the new
// start positions. It reports whether anything changed.
func (s *System) Resize(width, height float64) bool {
	width = sanitizeExtent(width)
	height = sanitizeExtent(height)
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height = width, height
	s.regenerate()
	if s.act.Falling() {
		s.elapsed = 0
	}
	return true
}

// Size returns the current canvas size.
func (s *System) Size() (width, height float64) {
	return s.width, s.height
}

// SetActive feeds the host's activation flag. It reports whether this call
// started the fall.
func (s *System) SetActive(active bool) bool {
	if !s.act.Observe(active) {
		return false
	}
	s.elapsed = 0
	s.debugf("idle -> falling")
	return true
}

// State returns the activation state.
func (s *System) State() State {
	return s.act.State()
}

// Transitions returns how many times the system entered Falling: 0 or 1.
func (s *System) Transitions() int {
	return s.act.Transitions()
}

// Update advances the fall clock by dt seconds. It does nothing while Idle.
func (s *System) Update(dt float64) {
	if !s.act.Falling() || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	s.elapsed += dt
}

// Elapsed returns seconds since the fall started, 0 while Idle.
func (s *System) Elapsed() float64 {
	return s.elapsed
}

// Replay rewinds the fall clock so every particle falls again from its start
// position. The system stays Falling; Replay is a no-op while Idle.
func (s *System) Replay() {
	if !s.act.Falling() {
		return
	}
	s.elapsed = 0
	s.debugf("replay")
}

// Done reports whether every particle has reached its end position.
func (s *System) Done() bool {
	return s.act.Falling() && s.elapsed >= s.finishAt
}

// Len returns the number of particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns the attributes of every particle, ordered by index.
// The returned slice MUST NOT be mutated and is replaced on Resize.
func (s *System) Particles() []Particle {
	return s.particles
}

// Position returns where particle p is drawn t seconds after the fall began.
func (s *System) Position(p Particle, t float64) Vec2 {
	if !s.act.Falling() {
		return p.Start
	}
	u := easedProgress(s.easeFn, math.Max(0, t-p.Delay), p.FallDuration)
	switch {
	case u <= 0:
		return p.Start
	case u >= 1:
		return p.End
	}
	return Vec2{X: lerp(p.Start.X, p.End.X, u), Y: lerp(p.Start.Y, p.End.Y, u)}
}

// Frame returns descriptors for the current elapsed time. The returned slice
// is reused by the next call to Frame.
func (s *System) Frame() []Descriptor {
	s.frame = s.FrameAt(s.elapsed, s.frame[:0])
	return s.frame
}

// FrameAt appends descriptors for time t (seconds since the fall began) to
// dst and returns the extended slice. It does not change the system.
func (s *System) FrameAt(t float64, dst []Descriptor) []Descriptor {
	for i := range s.particles {
		p := &s.particles[i]
		dst = append(dst, Descriptor{
			Index:    p.Index,
			Position: s.Position(*p, t),
			Size:     p.Extent,
			Radius:   p.Radius,
			Color:    p.Color,
			Rotation: p.Rotation,
			Shape:    p.Shape,
		})
	}
	return dst
}

// Tweens returns a FallTween per particle using the system's easing, for
// renderers that animate retained objects themselves.
func (s *System) Tweens() []*FallTween {
	out := make([]*FallTween, len(s.particles))
	for i, p := range s.particles {
		out[i] = NewFallTween(p, s.easeFn)
	}
	return out
}

// regenerate recomputes every particle for the current canvas size.
func (s *System) regenerate() {
	s.particles = s.gen.GenerateAll(s.cfg.PieceCount, s.width, s.height)
	s.finishAt = 0
	for _, p := range s.particles {
		if end := p.Delay + p.FallDuration; end > s.finishAt {
			s.finishAt = end
		}
	}
	s.debugf("generated %d particles for %vx%v canvas", len(s.particles), s.width, s.height)
}

// Package confetti is a deterministic celebratory particle engine.
//
// A [System] holds a fixed number of confetti pieces. Each piece's color,
// size, shape, rotation, stagger delay and fall path are derived from its
// index and the canvas size by [Generate], so the same inputs always produce
// the same effect. Nothing is random and nothing is simulated: positions are
// an eased interpolation between an off-screen start above the canvas and an
// off-screen end below it.
//
// # Quick start
//
//	sys := confetti.New(confetti.DefaultConfig(), false)
//	sys.Resize(800, 600)   // canvas size known
//	sys.SetActive(true)    // Idle -> Falling, exactly once
//
//	// each frame
//	sys.Update(dt)
//	for _, d := range sys.Frame() {
//		// draw d.Shape at d.Position with d.Size, d.Color, d.Rotation
//	}
//
// # Activation
//
// A system starts Idle unless the host is already active at construction.
// Only a false -> true edge of the active flag starts the fall, and Falling
// never reverts to Idle. [System.Replay] rewinds the clock of a falling
// system for hosts that reuse one instance.
//
// # Rendering
//
// The core knows nothing about drawing. [System.Frame] returns plain
// [Descriptor] values ordered by index. Sub-packages provide renderers:
// overlay draws with [Ebitengine], term draws in a terminal with [tcell], and
// ecs mirrors particles into a [Donburi] world. Retained renderers can use
// [FallTween] (built on [gween]) instead of polling.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package confetti

// Package ecs mirrors a confetti System into a Donburi world.
//
// Every particle becomes one entity carrying a Particle component (the
// current descriptor) and a Fall component (its FallTween). A world is
// advanced in one of two ways: Step polls the System and copies its frame,
// while StepTweens advances each entity's own tween. Pick one per world.
// Use Replay rather than System.Replay so the tweens restart too, and Attach
// when the System was created with an already active host.
package ecs

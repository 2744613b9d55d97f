package ecs

import (
	"sort"

	"github.com/phanxgames/confetti"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// FallState holds the tween that animates one particle entity.
type FallState struct {
	Tween *confetti.FallTween
}

// Activated is published once when a System enters Falling through Activate.
type Activated struct {
	Pieces int
}

var (
	// Particle is the current descriptor of a confetti piece.
	Particle = donburi.NewComponentType[confetti.Descriptor]()
	// Fall is the per-entity tween used by StepTweens.
	Fall = donburi.NewComponentType[FallState]()

	// ActivatedEventType is the Donburi event type for the Idle -> Falling
	// transition. Subscribe to it and call ProcessEvents as usual.
	ActivatedEventType = events.NewEventType[Activated]()
)

func particleQuery() *donburi.Query {
	return donburi.NewQuery(filter.Contains(Particle, Fall))
}

// Spawn replaces any existing particle entities in world with one entity per
// particle of sys, returned in index order.
func Spawn(world donburi.World, sys *confetti.System) []donburi.Entity {
	Despawn(world)

	tweens := sys.Tweens()
	frame := sys.Frame()
	entities := make([]donburi.Entity, len(frame))
	for i, d := range frame {
		e := world.Create(Particle, Fall)
		entry := world.Entry(e)
		Particle.SetValue(entry, d)
		Fall.SetValue(entry, FallState{Tween: tweens[i]})
		entities[i] = e
	}
	return entities
}

// Despawn removes every particle entity and returns how many were removed.
func Despawn(world donburi.World) int {
	var doomed []donburi.Entity
	particleQuery().Each(world, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, e := range doomed {
		world.Remove(e)
	}
	return len(doomed)
}

// Count returns the number of particle entities in world.
func Count(world donburi.World) int {
	return particleQuery().Count(world)
}

// Each calls fn with every particle descriptor in index order.
func Each(world donburi.World, fn func(confetti.Descriptor)) {
	var all []confetti.Descriptor
	particleQuery().Each(world, func(entry *donburi.Entry) {
		all = append(all, *Particle.Get(entry))
	})
	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	for _, d := range all {
		fn(d)
	}
}

// Activate feeds the host's active flag to sys and publishes Activated when
// it starts the fall. Tweens are recreated so both stepping modes start from
// the same instant.
func Activate(world donburi.World, sys *confetti.System, active bool) bool {
	if !sys.SetActive(active) {
		return false
	}
	Spawn(world, sys)
	ActivatedEventType.Publish(world, Activated{Pieces: sys.Len()})
	return true
}

// Attach spawns entities for sys and, when sys is already Falling (it was
// constructed with an active host), publishes Activated. Call it once per
// world; later transitions go through Activate.
func Attach(world donburi.World, sys *confetti.System) {
	Spawn(world, sys)
	if sys.State() == confetti.StateFalling {
		ActivatedEventType.Publish(world, Activated{Pieces: sys.Len()})
	}
}

// Replay rewinds sys and recreates every entity's tween so Step and
// StepTweens both restart the fall. It is a no-op while Idle.
func Replay(world donburi.World, sys *confetti.System) bool {
	if sys.State() != confetti.StateFalling {
		return false
	}
	sys.Replay()
	Spawn(world, sys)
	return true
}

// Resize forwards a canvas size to sys and respawns the entities when the
// particles were regenerated.
func Resize(world donburi.World, sys *confetti.System, width, height float64) bool {
	if !sys.Resize(width, height) {
		return false
	}
	Spawn(world, sys)
	return true
}

// Step advances sys by dt seconds and copies its frame into the Particle
// components.
func Step(world donburi.World, sys *confetti.System, dt float64) {
	sys.Update(dt)
	frame := sys.Frame()
	particleQuery().Each(world, func(entry *donburi.Entry) {
		d := Particle.Get(entry)
		if d.Index >= 0 && d.Index < len(frame) {
			*d = frame[d.Index]
		}
	})
}

// StepTweens advances every entity's FallTween by dt seconds and writes the
// result into its Particle position. Only the System's state is read: tweens
// stay at their start positions until the fall has begun.
func StepTweens(world donburi.World, sys *confetti.System, dt float32) {
	if sys.State() != confetti.StateFalling {
		return
	}
	particleQuery().Each(world, func(entry *donburi.Entry) {
		f := Fall.Get(entry)
		if f.Tween == nil {
			return
		}
		f.Tween.Update(dt)
		Particle.Get(entry).Position = f.Tween.Position
	})
}

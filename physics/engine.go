// Package physics advances rigid bodies with a fixed timestep and resolves
// their overlaps with the terrain and with each other.
package physics

import (
	"math"

	"github.com/automoto/arrowfall/components"
	"github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/automoto/arrowfall/tags"
	"github.com/automoto/arrowfall/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Terrain is the read-only tile grid the engine collides against.
type Terrain interface {
	IsInside(x, y int) bool
	Get(layer terrain.Layer, x, y int) terrain.Tile
}

var (
	characterQuery = donburi.NewQuery(filter.Contains(tags.Character, components.Character, components.Body))
	arrowQuery     = donburi.NewQuery(filter.Contains(tags.Arrow, components.Arrow, components.Body))
)

// Engine owns the physics tunables and the time accumulator. It is not safe
// for concurrent use; one goroutine owns the world during Update.
type Engine struct {
	gravity        gamemath.Vector2
	maxResolutions uint8
	updateStep     float64
	remainingTime  float64
	steps          uint64

	characters []*donburi.Entry
	arrows     []*donburi.Entry
	queue      tileCollisions
}

// NewEngine returns an engine configured from cfg. Invalid values are
// clamped the same way the setters clamp them.
func NewEngine(cfg config.PhysicsConfig) *Engine {
	e := &Engine{}
	e.SetGravity(cfg.Gravity)
	e.SetMaxResolutions(cfg.MaxResolutions)
	e.SetUpdateStep(cfg.UpdateStep)
	return e
}

func (e *Engine) SetGravity(gravity gamemath.Vector2) {
	e.gravity = gravity
}

func (e *Engine) Gravity() gamemath.Vector2 {
	return e.gravity
}

// SetMaxResolutions bounds the tile collisions resolved per character per
// step. Values below 1 become 1.
func (e *Engine) SetMaxResolutions(n int) {
	switch {
	case n <= 0:
		n = 1
	case n > math.MaxUint8:
		n = math.MaxUint8
	}
	e.maxResolutions = uint8(n)
}

func (e *Engine) MaxResolutions() uint8 {
	return e.maxResolutions
}

// SetUpdateStep sets the fixed step in seconds. Non-positive values reset it
// to the default.
func (e *Engine) SetUpdateStep(step float64) {
	if step <= 0 || math.IsNaN(step) {
		step = config.DefaultUpdateStep
	}
	e.updateStep = step
}

func (e *Engine) UpdateStep() float64 {
	return e.updateStep
}

// RemainingTime is the real time not yet consumed by a fixed step.
func (e *Engine) RemainingTime() float64 {
	return e.remainingTime
}

// Steps is the number of fixed steps run since the engine was created.
func (e *Engine) Steps() uint64 {
	return e.steps
}

// Update consumes elapsed seconds of real time in whole fixed steps and
// clears per-step accumulators once the remainder is below one step.
// Negative elapsed time is ignored.
func (e *Engine) Update(w donburi.World, elapsed float64) {
	if elapsed > 0 {
		e.remainingTime += elapsed
	}

	for e.remainingTime >= e.updateStep {
		e.step(w)
		e.remainingTime -= e.updateStep
	}

	e.clearAllAccumulators(w)
}

// UpdateSystem runs Update as an ECS system, reading the frame time from the
// level's clock.
func (e *Engine) UpdateSystem(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	e.Update(ecs.World, components.Clock.Get(entry).DeltaTime)
}

func (e *Engine) step(w donburi.World) {
	e.collect(w)
	e.move(e.updateStep)

	ter := levelTerrain(w)
	if ter != nil {
		for _, c := range e.characters {
			e.generateTileCollisions(ter, c)
			e.resolveTileCollisions(w)
		}
	}

	for _, a := range e.arrows {
		e.resolveArrow(w, ter, a)
	}

	e.resolveCharacterCollisions(w)

	e.steps++
	flushEvents(w)
}

// collect snapshots the bodies for this step. Entities are never removed
// while a step runs, so the entries stay valid until the events flush.
func (e *Engine) collect(w donburi.World) {
	e.characters = e.characters[:0]
	characterQuery.Each(w, func(entry *donburi.Entry) {
		e.characters = append(e.characters, entry)
	})

	e.arrows = e.arrows[:0]
	arrowQuery.Each(w, func(entry *donburi.Entry) {
		e.arrows = append(e.arrows, entry)
	})
}

func (e *Engine) move(dt float64) {
	for _, c := range e.characters {
		e.integrate(components.Body.Get(c), dt)
	}

	// Resting arrows are left alone so gravity does not drag them out of
	// the wall they are stuck in.
	for _, a := range e.arrows {
		body := components.Body.Get(a)
		if body.Velocity.SquaredLength() > 0 {
			components.Arrow.Get(a).PreviousVelocity = body.Velocity
			e.integrate(body, dt)
		}
	}
}

func (e *Engine) integrate(b *components.BodyData, dt float64) {
	b.Position = b.Position.
		Add(b.Velocity.Add(b.TempVelocity).Scale(dt)).
		Add(b.Acceleration.Scale(dt * dt * 0.5))
	b.Velocity = b.Velocity.Add(b.Acceleration.Add(e.gravity.Scale(b.GravityScale)).Scale(dt))
}

func (e *Engine) clearAllAccumulators(w donburi.World) {
	components.Body.Each(w, func(entry *donburi.Entry) {
		components.Body.Get(entry).ClearAccumulators()
	})
}

func levelTerrain(w donburi.World) Terrain {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	level := components.Level.Get(entry)
	if level.Terrain == nil {
		return nil
	}
	return level.Terrain
}

func tileBody(x, y int) components.BodyData {
	return components.BodyData{
		Position: gamemath.Vec(float64(x), float64(y)),
		Size:     gamemath.Vec(1, 1),
	}
}

// tileRange returns the inclusive tile span covered by a body.
func tileRange(b *components.BodyData) (x0, y0, x1, y1 int) {
	x0, y0 = b.Min().Floor()
	x1, y1 = b.Max().Floor()
	return x0, y0, x1, y1
}

func solidTile(ter Terrain, x, y int) bool {
	return ter.IsInside(x, y) && ter.Get(terrain.Fore, x, y).IsSolid()
}

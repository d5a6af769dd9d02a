package systems

import (
	"github.com/automoto/arrowfall/components"
	"github.com/automoto/arrowfall/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation runs the physics engine and the collision reactions over a world.
type Simulation struct {
	ecs    *ecs.ECS
	engine *physics.Engine
}

// NewSimulation wires the systems in order. w must already hold a level entity.
func NewSimulation(w donburi.World, engine *physics.Engine) *Simulation {
	ecs := ecs.NewECS(w)

	RegisterCollisionReactions(w)

	ecs.AddSystem(ResetGrounding)
	ecs.AddSystem(engine.UpdateSystem)
	ecs.AddSystem(ProbeGrounding)
	ecs.AddSystem(UpdateSweep)

	return &Simulation{ecs: ecs, engine: engine}
}

// Update advances the simulation by dt seconds of real time.
func (s *Simulation) Update(dt float64) {
	if entry, ok := components.Clock.First(s.ecs.World); ok {
		components.Clock.Get(entry).DeltaTime = dt
	}
	s.ecs.Update()
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

func (s *Simulation) Engine() *physics.Engine {
	return s.engine
}

package systems

import (
	"github.com/automoto/arrowfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSweep removes dead characters and spent arrows. It runs after physics
// so nothing is removed while the engine iterates the world.
func UpdateSweep(ecs *ecs.ECS) {
	Sweep(ecs.World)
}

// Sweep removes dead characters and spent arrows from w and returns how many
// entities it removed.
func Sweep(w donburi.World) int {
	var doomed []donburi.Entity

	components.Character.Each(w, func(e *donburi.Entry) {
		if components.Character.Get(e).Dead {
			doomed = append(doomed, e.Entity())
		}
	})
	components.Arrow.Each(w, func(e *donburi.Entry) {
		if components.Arrow.Get(e).Spent {
			doomed = append(doomed, e.Entity())
		}
	})

	for _, entity := range doomed {
		if w.Valid(entity) {
			w.Remove(entity)
		}
	}
	return len(doomed)
}

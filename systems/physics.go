package systems

import (
	"github.com/automoto/arrowfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundProbe is how far below its feet a character still counts as standing.
const groundProbe = 0.01

// ResetGrounding clears the grounded flag before physics runs. Landings
// reported during the update set it again.
func ResetGrounding(ecs *ecs.ECS) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		components.Character.Get(e).OnGround = false
	})
}

// ProbeGrounding marks characters resting on solid ground. It covers frames
// where no fixed step ran and characters that touch the floor without
// sinking into it.
func ProbeGrounding(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	ter := components.Level.Get(entry).Terrain
	if ter == nil {
		return
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		if character.OnGround {
			return
		}
		body := components.Body.Get(e)
		if body.Velocity.Y < 0 {
			return
		}
		lo, hi := body.Min(), body.Max()
		character.OnGround = ter.SolidBelow(lo.X, hi.X, hi.Y+groundProbe)
	})
}

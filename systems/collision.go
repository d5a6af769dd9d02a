package systems

import (
	"github.com/automoto/arrowfall/components"
	cfg "github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/physics"
	"github.com/yohamta/donburi"
)

// RegisterCollisionReactions subscribes the gameplay reactions to the physics
// events of w.
func RegisterCollisionReactions(w donburi.World) {
	physics.TileCollisionEvent.Subscribe(w, placeOnGround)
	physics.CharactersCollisionEvent.Subscribe(w, stomp)
	physics.ArrowHitEvent.Subscribe(w, arrowHit)
}

// placeOnGround marks a character grounded when it was pushed up out of a tile.
func placeOnGround(w donburi.World, c physics.TileCollision) {
	if c.Axis != physics.AxisY || !w.Valid(c.Character) {
		return
	}
	e := w.Entry(c.Character)
	body := components.Body.Get(e)
	if body.Center().Y < c.TilePosition.Y+0.5 {
		components.Character.Get(e).OnGround = true
	}
}

// stomp bounces the upper character off the lower one and kills the lower.
func stomp(w donburi.World, c physics.CharactersCollision) {
	if c.Axis != physics.AxisY || !w.Valid(c.C1) || !w.Valid(c.C2) {
		return
	}
	upper, lower := w.Entry(c.C1), w.Entry(c.C2)
	if components.Body.Get(upper).Center().Y > components.Body.Get(lower).Center().Y {
		upper, lower = lower, upper
	}

	upperData := components.Character.Get(upper)
	lowerData := components.Character.Get(lower)
	if upperData.Dead || lowerData.Dead {
		return
	}

	components.Body.Get(upper).Velocity.Y = -cfg.Gameplay.StompBounce
	upperData.Stomps++
	lowerData.Dead = true
}

// arrowHit kills the character unless the arrow is its own or already spent.
// Arrows lying in the terrain are harmless.
func arrowHit(w donburi.World, h physics.ArrowHit) {
	if !w.Valid(h.Arrow) || !w.Valid(h.Character) {
		return
	}
	arrow := components.Arrow.Get(w.Entry(h.Arrow))
	if arrow.Spent || arrow.Stuck || arrow.Owner == h.Character {
		return
	}

	character := components.Character.Get(w.Entry(h.Character))
	if character.Dead {
		return
	}
	character.Hits++
	character.Dead = true
	arrow.Spent = true
}

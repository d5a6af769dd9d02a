package factory

import (
	"github.com/automoto/arrowfall/archetypes"
	"github.com/automoto/arrowfall/components"
	cfg "github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateArrow spawns an arrow fired by owner along direction. The arrow
// starts centered on the owner and inherits nothing from its velocity.
func CreateArrow(w donburi.World, owner *donburi.Entry, direction gamemath.Vector2) *donburi.Entry {
	ownerBody := components.Body.Get(owner)
	size := cfg.Gameplay.ArrowSize

	start := ownerBody.Center().Sub(size.Scale(0.5))
	return CreateLooseArrow(w, owner.Entity(), start, gamemath.Normalize(direction).Scale(cfg.Gameplay.ArrowSpeed))
}

// CreateLooseArrow spawns an arrow at pos with the given velocity. owner may
// be donburi.Null for traps.
func CreateLooseArrow(w donburi.World, owner donburi.Entity, pos, velocity gamemath.Vector2) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(w)

	body := components.NewBody(pos, cfg.Gameplay.ArrowSize)
	body.Velocity = velocity
	body.GravityScale = cfg.Gameplay.ArrowGravityScale
	components.Body.SetValue(arrow, body)

	components.Arrow.SetValue(arrow, components.ArrowData{
		Owner: owner,
	})

	return arrow
}

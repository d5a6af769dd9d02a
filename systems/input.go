package systems

import (
	"github.com/automoto/arrowfall/components"
	cfg "github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/automoto/arrowfall/systems/factory"
	"github.com/yohamta/donburi"
)

// Control is one frame of intent for a character, however it was produced.
type Control struct {
	Direction int // -1 left, 0 none, 1 right
	Jump      bool
	Fire      bool
	Up        bool
	Down      bool
}

// ApplyControl turns a control frame into body changes. Running is a
// one-update velocity so collision resolution never has to undo it; the jump
// only works from the ground. Returns the fired arrow, if any.
func ApplyControl(w donburi.World, e *donburi.Entry, c Control) *donburi.Entry {
	if !e.Valid() {
		return nil
	}
	character := components.Character.Get(e)
	if character.Dead {
		return nil
	}
	body := components.Body.Get(e)

	if c.Direction != 0 {
		character.Facing = float64(c.Direction)
		body.ApplyImpulse(gamemath.Vec(float64(c.Direction)*cfg.Gameplay.RunSpeed, 0))
	}

	if c.Jump && character.OnGround {
		body.Velocity.Y = -cfg.Gameplay.JumpSpeed
		character.OnGround = false
	}

	if c.Fire {
		return factory.CreateArrow(w, e, gamemath.AimDirection(character.Facing, c.Up, c.Down))
	}
	return nil
}

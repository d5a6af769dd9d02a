package factory

import (
	"github.com/automoto/arrowfall/archetypes"
	"github.com/automoto/arrowfall/components"
	cfg "github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateCharacter spawns a character with its top-left corner at pos. A zero
// size falls back to the configured character size.
func CreateCharacter(w donburi.World, name string, pos, size gamemath.Vector2) *donburi.Entry {
	character := archetypes.Character.Spawn(w)

	if size.IsZero() {
		size = cfg.Gameplay.CharacterSize
	}
	components.Body.SetValue(character, components.NewBody(pos, size))
	components.Character.SetValue(character, components.CharacterData{
		Name:   name,
		Facing: 1,
	})

	return character
}

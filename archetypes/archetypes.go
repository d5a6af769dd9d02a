package archetypes

import (
	"github.com/automoto/arrowfall/components"
	"github.com/automoto/arrowfall/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Body,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Body,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}

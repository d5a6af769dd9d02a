package factory

import (
	"github.com/automoto/arrowfall/archetypes"
	"github.com/automoto/arrowfall/components"
	"github.com/automoto/arrowfall/terrain"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entity holding the terrain and the frame clock.
func CreateLevel(w donburi.World, name string, ter *terrain.Terrain) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	components.Level.SetValue(level, components.LevelData{
		Name:    name,
		Terrain: ter,
	})
	components.Clock.SetValue(level, components.ClockData{})

	return level
}

// CreateLevelFromTMX spawns the level entity and one character per spawn point.
func CreateLevelFromTMX(w donburi.World, level *terrain.Level) (*donburi.Entry, []*donburi.Entry) {
	entry := CreateLevel(w, level.Name, level.Terrain)

	characters := make([]*donburi.Entry, 0, len(level.Spawns))
	for _, spawn := range level.Spawns {
		characters = append(characters, CreateCharacter(w, spawn.Name, spawn.Position, spawn.Size))
	}
	return entry, characters
}

package components

import (
	"github.com/automoto/arrowfall/terrain"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name    string
	Terrain *terrain.Terrain
}

var Level = donburi.NewComponentType[LevelData]()

// ClockData carries the real time elapsed since the previous frame.
type ClockData struct {
	DeltaTime float64 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()

package components

import (
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Name     string
	OnGround bool
	Facing   float64 // -1 left, 1 right
	Stomps   int     // characters landed on
	Hits     int     // arrows taken
	Dead     bool    // removed by the sweep after physics
}

var Character = donburi.NewComponentType[CharacterData]()

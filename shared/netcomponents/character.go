package netcomponents

import "github.com/yohamta/donburi"

// NetCharacterData carries the discrete character state. It is not
// interpolated.
type NetCharacterData struct {
	Name         string
	Width        float64
	Height       float64
	Facing       int // -1 left, 1 right
	OnGround     bool
	Stomps       int
	Hits         int
	LastSequence uint32 // Last input sequence applied by the server
}

var NetCharacter = donburi.NewComponentType[NetCharacterData]()

package netcomponents

import "github.com/yohamta/donburi"

// NetVelocityData is the replicated persistent velocity of a body, in tiles
// per second. One-update run impulses are not included.
type NetVelocityData struct {
	X, Y float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		X: lerp(from.X, to.X, t),
		Y: lerp(from.Y, to.Y, t),
	}
}

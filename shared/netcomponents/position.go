package netcomponents

import "github.com/yohamta/donburi"

// NetPositionData is the replicated top-left corner of a body, in tiles.
type NetPositionData struct {
	X, Y float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition blends two snapshots for client-side rendering.
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X: lerp(from.X, to.X, t),
		Y: lerp(from.Y, to.Y, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

package netcomponents

import "github.com/yohamta/donburi"

type NetArrowData struct {
	OwnerNetworkID uint // 0 when the owner is gone
	Width, Height  float64
	Stuck          bool
}

var NetArrow = donburi.NewComponentType[NetArrowData]()

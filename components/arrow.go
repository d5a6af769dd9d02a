package components

import (
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ArrowData struct {
	Owner donburi.Entity // donburi.Null for environment arrows
	// PreviousVelocity is the velocity before the last integration, so hit
	// reactions still know where a stopped arrow came from.
	PreviousVelocity gamemath.Vector2
	Stuck            bool
	Spent            bool
}

var Arrow = donburi.NewComponentType[ArrowData]()

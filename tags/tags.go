package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Arrow     = donburi.NewTag().SetName("Arrow")
	Level     = donburi.NewTag().SetName("Level")
)

// Resolv tags for the terrain index
const (
	ResolvSolid = "solid"
	ResolvTile  = "tile"
)

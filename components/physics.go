package components

import (
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the rigid body of a character or arrow. The box spans
// [Position, Position+Size].
type BodyData struct {
	Position     gamemath.Vector2
	Velocity     gamemath.Vector2 // units/s
	Acceleration gamemath.Vector2 // units/s², on top of gravity
	// TempVelocity only contributes to the next fixed step and is cleared
	// after every update.
	TempVelocity gamemath.Vector2
	Size         gamemath.Vector2
	GravityScale float64
}

var Body = donburi.NewComponentType[BodyData]()

// NewBody returns a body with normal gravity. Negative extents are clamped to zero.
func NewBody(position, size gamemath.Vector2) BodyData {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return BodyData{
		Position:     position,
		Size:         size,
		GravityScale: 1,
	}
}

func (b *BodyData) Min() gamemath.Vector2 {
	return b.Position
}

func (b *BodyData) Max() gamemath.Vector2 {
	return b.Position.Add(b.Size)
}

func (b *BodyData) Center() gamemath.Vector2 {
	return b.Position.Add(b.Size.Scale(0.5))
}

// ApplyImpulse adds a velocity that only lasts for the current update.
func (b *BodyData) ApplyImpulse(v gamemath.Vector2) {
	b.TempVelocity = b.TempVelocity.Add(v)
}

func (b *BodyData) ClearAccumulators() {
	b.TempVelocity.Clear()
}

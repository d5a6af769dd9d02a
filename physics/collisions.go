package physics

import (
	"math"

	"github.com/automoto/arrowfall/components"
	"github.com/automoto/arrowfall/shared/gamemath"
)

// Axis is the axis a collision is resolved along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// PenetrationX returns how far a must move on the X axis to leave b, negated.
// It is zero when the projections are disjoint or only touch.
func PenetrationX(a, b *components.BodyData) float64 {
	return penetration(a.Position.X, a.Size.X, b.Position.X, b.Size.X)
}

// PenetrationY is PenetrationX on the Y axis.
func PenetrationY(a, b *components.BodyData) float64 {
	return penetration(a.Position.Y, a.Size.Y, b.Position.Y, b.Size.Y)
}

// Penetration returns both axis penetrations.
func Penetration(a, b *components.BodyData) gamemath.Vector2 {
	return gamemath.Vec(PenetrationX(a, b), PenetrationY(a, b))
}

func penetration(aMin, aSize, bMin, bSize float64) float64 {
	// A zero-size box has no interior and never overlaps
	if aSize <= 0 || bSize <= 0 {
		return 0
	}
	depth := math.Min(aMin+aSize-bMin, bMin+bSize-aMin)
	if depth <= 0 {
		return 0
	}
	return -depth
}

// Collide reports whether a and b strictly overlap on both axes.
func Collide(a, b *components.BodyData) bool {
	return PenetrationX(a, b) < 0 && PenetrationY(a, b) < 0
}

// LeastPenetrationAxis picks the axis with the smaller overlap magnitude.
// Both values are expected to be non-positive; ties go to Y.
func LeastPenetrationAxis(px, py float64) Axis {
	if px > py {
		return AxisX
	}
	return AxisY
}

// ResolveWithStatic pushes dynamic out of static along the axis of least
// penetration and stops dynamic's velocity on that axis.
func ResolveWithStatic(dynamic, static *components.BodyData) {
	p := Penetration(dynamic, static)
	if p.X >= 0 || p.Y >= 0 {
		return
	}

	dc, sc := dynamic.Center(), static.Center()
	if LeastPenetrationAxis(p.X, p.Y) == AxisX {
		dynamic.Position.X += gamemath.PushSign(dc.X, sc.X) * -p.X
		dynamic.Velocity.X = 0
		return
	}
	dynamic.Position.Y += gamemath.PushSign(dc.Y, sc.Y) * -p.Y
	dynamic.Velocity.Y = 0
}

// ResolveWithDynamic pushes a and b apart along the axis of least
// penetration, each taking half of the correction.
func ResolveWithDynamic(a, b *components.BodyData) {
	p := Penetration(a, b)
	if p.X >= 0 || p.Y >= 0 {
		return
	}

	ac, bc := a.Center(), b.Center()
	if LeastPenetrationAxis(p.X, p.Y) == AxisX {
		half := gamemath.PushSign(ac.X, bc.X) * -p.X * 0.5
		a.Position.X += half
		b.Position.X -= half
		return
	}
	half := gamemath.PushSign(ac.Y, bc.Y) * -p.Y * 0.5
	a.Position.Y += half
	b.Position.Y -= half
}

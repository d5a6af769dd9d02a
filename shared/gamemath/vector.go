package gamemath

import "math"

// Vector2 is a 2D vector in world units (tiles). Y grows downward.
type Vector2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// SquaredLength avoids the sqrt when only comparing magnitudes.
func (v Vector2) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clear zeroes the vector in place.
func (v *Vector2) Clear() {
	v.X = 0
	v.Y = 0
}

// Floor returns the integer cell containing the point.
func (v Vector2) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

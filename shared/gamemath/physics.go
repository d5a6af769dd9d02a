package gamemath

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// PushSign returns -1 when a lies before b on an axis and 1 otherwise.
// Ties push forward so resolution always moves the body.
func PushSign(a, b float64) float64 {
	if a < b {
		return -1
	}
	return 1
}

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v Vector2) Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.Scale(1 / l)
}

// AimDirection maps a facing direction and vertical input to a throw vector.
// facingX is -1 or 1.
func AimDirection(facingX float64, upPressed, downPressed bool) Vector2 {
	switch {
	case upPressed && !downPressed:
		return Normalize(Vec(facingX, -1))
	case downPressed && !upPressed:
		return Normalize(Vec(facingX, 1))
	}
	return Vec(facingX, 0)
}

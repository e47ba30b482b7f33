package gamemath

// ApplyFriction moves speed toward zero by friction*dt without crossing it.
func ApplyFriction(speed, friction, dt float64) float64 {
	step := friction * dt
	if speed > step {
		return speed - step
	}
	if speed < -step {
		return speed + step
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampFloat constrains a value to the range [min, max]
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp moves from toward to by t, with t clamped to [0, 1] so the result never
// passes the destination.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*ClampFloat(t, 0, 1)
}

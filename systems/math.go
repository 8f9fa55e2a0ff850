package systems

import "math"

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// velocityMagnitude returns the magnitude of a velocity vector.
func velocityMagnitude(vx, vy float32) float32 {
	return float32(math.Sqrt(float64(vx*vx + vy*vy)))
}

// LimitSpeed rescales (vx, vy) so its magnitude lies in [minSpeed, maxSpeed].
// A zero vector is left alone since it has no direction to scale.
func LimitSpeed(vx, vy, minSpeed, maxSpeed float32) (float32, float32) {
	speed := velocityMagnitude(vx, vy)
	if speed == 0 {
		return vx, vy
	}
	if speed > maxSpeed {
		return vx / speed * maxSpeed, vy / speed * maxSpeed
	}
	if speed < minSpeed {
		return vx / speed * minSpeed, vy / speed * minSpeed
	}
	return vx, vy
}

// Heading returns the angle of a velocity in radians.
func Heading(vx, vy float32) float32 {
	return float32(math.Atan2(float64(vy), float64(vx)))
}

package colorscape

import "math"

// Clamp01 clamps a value to [0, 1] range.
// NaN is returned unchanged.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Lerp linearly interpolates from a to b.
// t is clamped to [0, 1], so Lerp never extrapolates past either endpoint.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*Clamp01(t)
}

// LerpAngle interpolates between two angles in degrees along the shorter
// arc of the circle. The result is normalized to [0, 360).
//
// LerpAngle(350, 10, 0.5) is 0, not 180.
func LerpAngle(a, b, t float64) float64 {
	// Signed shortest delta in (-180, 180].
	d := (b - a) - math.Floor((b-a)/360)*360
	if d > 180 {
		d -= 360
	}

	angle := a + d*Clamp01(t)
	if angle < 0 {
		angle = -(math.Mod(-angle, 360) - 360)
	}
	return math.Mod(angle, 360)
}

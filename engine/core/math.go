package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180.0
}

func RadToDeg(rad float32) float32 {
	return rad * 180.0 / math.Pi
}

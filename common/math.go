package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon is the smallest magnitude treated as non-zero input or speed.
const Epsilon = 1e-6

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := t - math.Floor(t/length)*length
	if r >= length {
		r = 0
	}
	return r
}

// PingPong bounces t back and forth between 0 and length.
func PingPong(t, length float64) float64 {
	t = Repeat(t, length*2)
	return length - math.Abs(t-length)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeSafe returns the unit vector of v, or zero when v has no length.
func NormalizeSafe(v cp.Vector) cp.Vector {
	l := v.Length()
	if l < Epsilon {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// Wrap01 keeps a cyclic progress value in [0,1).
func Wrap01(v float64) float64 {
	return Repeat(v, 1)
}

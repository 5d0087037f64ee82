package common

import (
	"math"
	"time"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
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

// Approximately mirrors a float equality check with a small epsilon.
func Approximately(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// Seconds converts a YAML seconds value into a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

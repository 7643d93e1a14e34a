package services

import (
	"math"
)

// CurrentPoints derives a challenge's decayed value from its base points,
// decay factor and solve count:
//
//	points = max(floor, round(base / (1 + decay*ln(solves))))
//
// The first solve causes no reduction (ln(1) = 0, and solves = 0 means
// nobody has solved yet), so solves <= 1 always yields the base value. The
// result is clamped to [floor, base].
func CurrentPoints(base, floor uint, decay float64, solves uint) uint {
	if decay <= 0 || solves <= 1 {
		return base
	}
	v := uint(math.Round(float64(base) / (1 + decay*math.Log(float64(solves)))))
	if v < floor {
		return floor
	}
	if v > base {
		return base
	}
	return v
}

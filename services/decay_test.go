package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPointsNoDecay(t *testing.T) {
	assert.Equal(t, uint(500), CurrentPoints(500, 100, 0, 25))
}

func TestCurrentPointsFirstSolveKeepsBase(t *testing.T) {
	assert.Equal(t, uint(500), CurrentPoints(500, 100, 0.5, 0))
	assert.Equal(t, uint(500), CurrentPoints(500, 100, 0.5, 1))
}

func TestCurrentPointsDecays(t *testing.T) {
	// 500 / (1 + 0.5*ln(2)) = 371.29...
	assert.Equal(t, uint(371), CurrentPoints(500, 100, 0.5, 2))
	// 500 / (1 + 0.5*ln(50)) = 169.14...
	assert.Equal(t, uint(169), CurrentPoints(500, 100, 0.5, 50))
}

func TestCurrentPointsNeverBelowFloor(t *testing.T) {
	assert.Equal(t, uint(100), CurrentPoints(500, 100, 0.5, 100000))
}

func TestCurrentPointsMonotonicallyNonIncreasing(t *testing.T) {
	prev := CurrentPoints(500, 100, 0.8, 1)
	for solves := uint(2); solves <= 1000; solves++ {
		v := CurrentPoints(500, 100, 0.8, solves)
		assert.LessOrEqual(t, v, prev, "points increased at %d solves", solves)
		prev = v
	}
}

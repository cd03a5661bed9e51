package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxnav/voxnav/core"
)

func TestNull(t *testing.T) {
	t.Parallel()
	assert.Zero(t, core.Null(1, 2, 3))
}

func TestManhattan(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 6.0, core.Manhattan(1, 2, 3))
}

func TestEuclidean(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, math.Sqrt(14), core.Euclidean(1, 2, 3), 1e-9)
}

func TestChebyshev(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3.0, core.Chebyshev(1, 2, 3))
}

func TestOctile(t *testing.T) {
	t.Parallel()

	// a single space diagonal step costs sqrt(3)
	assert.InDelta(t, math.Sqrt(3), core.Octile(1, 1, 1), 1e-9)

	expected := 3 + core.Sqrt2Minus1*2 + core.Sqrt3MinusSqrt2*1
	assert.InDelta(t, expected, core.Octile(1, 2, 3), 1e-9)

	// symmetric in its arguments
	assert.InDelta(t, core.Octile(1, 2, 3), core.Octile(3, 1, 2), 1e-9)
}

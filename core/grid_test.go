package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnav/voxnav/core"
)

// cube returns a w×h×d matrix filled with the given value.
func cube(w, h, d int, value float64) [][][]float64 {
	m := make([][][]float64, w)
	for x := range m {
		m[x] = make([][]float64, h)
		for y := range m[x] {
			m[x][y] = make([]float64, d)
			for z := range m[x][y] {
				m[x][y][z] = value
			}
		}
	}
	return m
}

func TestNewGridFromMatrix(t *testing.T) {
	t.Parallel()

	matrix := cube(3, 4, 5, 1)
	matrix[0][0][0] = 0
	matrix[1][2][3] = 7

	grid, err := core.NewGrid(core.GridConfig{Matrix: matrix})
	require.NoError(t, err)

	assert.Equal(t, 3, grid.Width)
	assert.Equal(t, 4, grid.Height)
	assert.Equal(t, 5, grid.Depth)

	assert.False(t, grid.Node(0, 0, 0).Walkable)
	assert.True(t, grid.Node(1, 2, 3).Walkable)
	assert.Equal(t, 7.0, grid.Node(1, 2, 3).Weight)
}

func TestNewGridDimensionsOnly(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Width: 2, Height: 2, Depth: 2})
	require.NoError(t, err)
	assert.True(t, grid.Walkable(1, 1, 1))
	assert.Equal(t, 1.0, grid.Node(0, 0, 0).Weight)
}

func TestNewGridErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty matrix", func(t *testing.T) {
		t.Parallel()
		_, err := core.NewGrid(core.GridConfig{Matrix: [][][]float64{}})
		assert.Error(t, err)
	})

	t.Run("ragged matrix", func(t *testing.T) {
		t.Parallel()
		matrix := cube(3, 3, 3, 1)
		matrix[1][1] = matrix[1][1][:2]
		_, err := core.NewGrid(core.GridConfig{Matrix: matrix})
		assert.Error(t, err)
	})

	t.Run("no dimensions", func(t *testing.T) {
		t.Parallel()
		_, err := core.NewGrid(core.GridConfig{})
		assert.Error(t, err)
	})
}

func TestNodeOutsideBounds(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1)})
	require.NoError(t, err)

	assert.Nil(t, grid.Node(-1, 0, 0))
	assert.Nil(t, grid.Node(3, 0, 0))
	assert.NotNil(t, grid.Node(2, 2, 2))
	assert.False(t, grid.Walkable(0, 0, 3))
}

func TestInverseMatrix(t *testing.T) {
	t.Parallel()

	matrix := cube(3, 3, 3, 0)
	matrix[1][1][1] = 1

	grid, err := core.NewGrid(core.GridConfig{Matrix: matrix, Inverse: true})
	require.NoError(t, err)

	assert.True(t, grid.Walkable(0, 0, 0))
	assert.False(t, grid.Walkable(1, 1, 1))
}

func TestCalcCost(t *testing.T) {
	t.Parallel()

	matrix := cube(3, 3, 3, 1)
	matrix[1][1][1] = 5
	grid, err := core.NewGrid(core.GridConfig{Matrix: matrix})
	require.NoError(t, err)

	a := grid.Node(0, 0, 0)
	b := grid.Node(1, 1, 0)
	c := grid.Node(1, 1, 1)

	assert.InDelta(t, math.Sqrt2, grid.CalcCost(a, b, false), 1e-9)
	assert.InDelta(t, math.Sqrt2, grid.CalcCost(a, b, true), 1e-9)

	// weighted cost scales by the target node's weight
	assert.InDelta(t, math.Sqrt(3), grid.CalcCost(a, c, false), 1e-9)
	assert.InDelta(t, 5*math.Sqrt(3), grid.CalcCost(a, c, true), 1e-9)
}

func TestNeighborsOpenCenter(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1)})
	require.NoError(t, err)
	center := grid.Node(1, 1, 1)

	assert.Len(t, grid.Neighbors(center, core.DiagonalNever), 6)
	assert.Len(t, grid.Neighbors(center, core.DiagonalOnlyWhenNoObstacle), 26)
	assert.Len(t, grid.Neighbors(center, core.DiagonalIfAtMostOneObstacle), 26)
	assert.Len(t, grid.Neighbors(center, core.DiagonalAlways), 26)
}

func TestNeighborsCorner(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1)})
	require.NoError(t, err)
	corner := grid.Node(0, 0, 0)

	assert.Len(t, grid.Neighbors(corner, core.DiagonalNever), 3)
	assert.Len(t, grid.Neighbors(corner, core.DiagonalAlways), 7)
}

func TestNeighborsWithObstacle(t *testing.T) {
	t.Parallel()

	matrix := cube(3, 3, 3, 1)
	matrix[1][0][1] = 0 // the -y face neighbor of the center

	grid, err := core.NewGrid(core.GridConfig{Matrix: matrix})
	require.NoError(t, err)
	center := grid.Node(1, 1, 1)

	assert.Len(t, grid.Neighbors(center, core.DiagonalNever), 5)
	assert.Len(t, grid.Neighbors(center, core.DiagonalAlways), 25)
	// one obstacle is tolerated, only the blocked cell itself is lost
	assert.Len(t, grid.Neighbors(center, core.DiagonalIfAtMostOneObstacle), 25)
	// strict mode also drops the diagonals the obstacle touches
	assert.Len(t, grid.Neighbors(center, core.DiagonalOnlyWhenNoObstacle), 17)
}

func TestNeighborsIncludeConnections(t *testing.T) {
	t.Parallel()

	grid0, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1), GridID: 0})
	require.NoError(t, err)
	grid1, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1), GridID: 1})
	require.NoError(t, err)

	portal := grid0.Node(1, 1, 1)
	portal.Connect(grid1.Node(0, 0, 0))

	neighbors := grid0.Neighbors(portal, core.DiagonalNever)
	assert.Len(t, neighbors, 7)
	assert.Contains(t, neighbors, grid1.Node(0, 0, 0))
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1)})
	require.NoError(t, err)

	node := grid.Node(1, 1, 1)
	node.G = 4
	node.H = 2
	node.F = 6
	node.Opened = core.ByStart
	node.Closed = true
	node.Parent = grid.Node(0, 0, 0)

	grid.Cleanup()

	assert.Zero(t, node.G)
	assert.Zero(t, node.H)
	assert.Zero(t, node.F)
	assert.Equal(t, core.NotOpened, node.Opened)
	assert.False(t, node.Closed)
	assert.Nil(t, node.Parent)
}

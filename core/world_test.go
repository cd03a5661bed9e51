package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnav/voxnav/core"
)

func twoGridWorld(t *testing.T) (*core.World, *core.Grid, *core.Grid) {
	t.Helper()

	grid0, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1), GridID: 0})
	require.NoError(t, err)
	grid1, err := core.NewGrid(core.GridConfig{Matrix: cube(3, 3, 3, 1), GridID: 1})
	require.NoError(t, err)

	return core.NewWorld(map[int]*core.Grid{0: grid0, 1: grid1}), grid0, grid1
}

func TestWorldNodeAt(t *testing.T) {
	t.Parallel()
	world, grid0, grid1 := twoGridWorld(t)

	assert.Same(t, grid0.Node(1, 2, 0), world.NodeAt(core.NodeID{X: 1, Y: 2, Z: 0, GridID: 0}))
	assert.Same(t, grid1.Node(1, 2, 0), world.NodeAt(core.NodeID{X: 1, Y: 2, Z: 0, GridID: 1}))
	assert.Nil(t, world.NodeAt(core.NodeID{X: 0, Y: 0, Z: 0, GridID: 7}))
}

func TestWorldGridFor(t *testing.T) {
	t.Parallel()
	world, grid0, grid1 := twoGridWorld(t)

	assert.Same(t, grid0, world.GridFor(grid0.Node(0, 0, 0)))
	assert.Same(t, grid1, world.GridFor(grid1.Node(0, 0, 0)))
}

func TestWorldNeighborsCrossGrid(t *testing.T) {
	t.Parallel()
	world, grid0, grid1 := twoGridWorld(t)

	portal := grid0.Node(2, 2, 2)
	target := grid1.Node(2, 2, 2)
	portal.Connect(target)

	neighbors := world.Neighbors(portal, core.DiagonalNever)
	assert.Contains(t, neighbors, target)

	// the connection is one-way until declared on the other side too
	assert.NotContains(t, world.Neighbors(target, core.DiagonalNever), portal)
}

func TestWorldCalcCost(t *testing.T) {
	t.Parallel()
	world, grid0, grid1 := twoGridWorld(t)

	// co-located nodes of different grids are zero distance apart
	assert.Zero(t, world.CalcCost(grid0.Node(2, 2, 2), grid1.Node(2, 2, 2), true))
	assert.Equal(t, 1.0, world.CalcCost(grid0.Node(0, 0, 0), grid0.Node(1, 0, 0), false))
}

func TestWorldCleanup(t *testing.T) {
	t.Parallel()
	world, grid0, grid1 := twoGridWorld(t)

	grid0.Node(1, 1, 1).Closed = true
	grid1.Node(2, 2, 2).Opened = core.ByEnd

	world.Cleanup()

	assert.False(t, grid0.Node(1, 1, 1).Closed)
	assert.Equal(t, core.NotOpened, grid1.Node(2, 2, 2).Opened)
}

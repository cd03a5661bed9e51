package msp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/msp"
)

func TestTreeSpansReachableNodes(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Width: 3, Height: 3, Depth: 3})
	require.NoError(t, err)
	start := grid.Node(0, 0, 0)

	finder := msp.New(pathfinding.Options{})
	nodes, err := finder.Tree(grid, start)
	require.NoError(t, err)

	require.Len(t, nodes, 27)
	assert.Same(t, start, nodes[0])

	settled := map[*core.GridNode]bool{start: true}
	for _, node := range nodes[1:] {
		// every node hangs off an earlier settled node
		require.NotNil(t, node.Parent)
		assert.True(t, settled[node.Parent])
		settled[node] = true
	}
}

func TestTreeCostsNondecreasing(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Width: 4, Height: 4, Depth: 1})
	require.NoError(t, err)

	finder := msp.New(pathfinding.Options{})
	nodes, err := finder.Tree(grid, grid.Node(0, 0, 0))
	require.NoError(t, err)

	for i := 1; i < len(nodes); i++ {
		assert.LessOrEqual(t, nodes[i-1].G, nodes[i].G)
	}
}

func TestTreeStopsOnBudget(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Width: 5, Height: 5, Depth: 5})
	require.NoError(t, err)

	finder := msp.New(pathfinding.Options{MaxRuns: 3})
	_, err = finder.Tree(grid, grid.Node(0, 0, 0))
	assert.ErrorIs(t, err, pathfinding.ErrRunsExceeded)
}

package idastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/idastar"
)

func TestStraightLine(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Width: 4, Height: 1, Depth: 1})
	require.NoError(t, err)

	finder := idastar.New(pathfinding.Options{})
	path, runs, err := finder.FindPath(grid.Node(0, 0, 0), grid.Node(3, 0, 0), grid)
	require.NoError(t, err)
	assert.Positive(t, runs)

	require.Len(t, path, 4)
	for i, node := range path {
		assert.Equal(t, i, node.X)
	}
}

func TestTrackRecursionReleasesNodes(t *testing.T) {
	t.Parallel()

	grid, err := core.NewGrid(core.GridConfig{Width: 3, Height: 3, Depth: 1})
	require.NoError(t, err)

	finder := idastar.New(pathfinding.Options{TrackRecursion: true})
	path, _, err := finder.FindPath(grid.Node(0, 0, 0), grid.Node(2, 2, 0), grid)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	// off the found path all retain counts unwound to zero
	onPath := map[*core.GridNode]bool{}
	for _, node := range path {
		onPath[node] = true
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			node := grid.Node(x, y, 0)
			if !onPath[node] {
				assert.Zero(t, node.RetainCount, "node (%d,%d)", x, y)
			}
		}
	}
}

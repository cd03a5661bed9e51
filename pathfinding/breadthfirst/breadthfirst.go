// Package breadthfirst implements plain breadth-first search over the grid.
// Every move counts the same, so the first time the goal is dequeued the
// path has the fewest steps. Node weights are ignored.
package breadthfirst

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
)

// Finder runs breadth-first search with a FIFO frontier.
type Finder struct {
	pathfinding.Finder
}

// New creates a breadth-first finder. The heuristic options are ignored.
func New(opts pathfinding.Options) *Finder {
	return &Finder{Finder: pathfinding.NewFinder("BreadthFirst", opts, false)}
}

// FindPath searches the map from start to end.
func (f *Finder) FindPath(start, end *core.GridNode, src core.NodeSource) ([]*core.GridNode, int, error) {
	f.StartSearch()

	start.Opened = core.ByStart
	queue := []*core.GridNode{start}

	for len(queue) > 0 {
		f.Runs++
		if err := f.KeepRunning(); err != nil {
			return nil, f.Runs, err
		}

		node := queue[0]
		queue = queue[1:]
		node.Closed = true

		if node == end {
			return core.Backtrace(end), f.Runs, nil
		}

		for _, neighbor := range f.FindNeighbors(src, node) {
			if neighbor.Closed || neighbor.Opened != core.NotOpened {
				continue
			}
			neighbor.Opened = core.ByStart
			neighbor.Parent = node
			queue = append(queue, neighbor)
		}
	}

	return nil, f.Runs, nil
}

var _ pathfinding.Pathfinder = (*Finder)(nil)

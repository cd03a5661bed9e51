// Package biastar implements bidirectional A*: one frontier grows from the
// start, one from the end, alternating one expansion each per iteration.
// The search finishes when a relaxed neighbor turns out to be opened by the
// oncoming frontier; the two backtraces are joined at that meeting edge.
package biastar

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/astar"
)

// Finder runs A* from both endpoints at once.
type Finder struct {
	*astar.Finder
}

// New creates a bidirectional A* finder with the same defaults as A*.
func New(opts pathfinding.Options) *Finder {
	return &Finder{Finder: astar.NewNamed("BiA*", opts, true)}
}

// FindPath searches from both ends. It fails (empty path) as soon as either
// frontier drains: a side with no nodes left can never be reached.
func (f *Finder) FindPath(start, end *core.GridNode, src core.NodeSource) ([]*core.GridNode, int, error) {
	f.StartSearch()

	start.G = 0
	start.F = 0
	start.Opened = core.ByStart
	startOpen := core.NewOpenList(start)

	end.G = 0
	end.F = 0
	end.Opened = core.ByEnd
	endOpen := core.NewOpenList(end)

	for startOpen.Len() > 0 && endOpen.Len() > 0 {
		f.Runs++
		if err := f.KeepRunning(); err != nil {
			return nil, f.Runs, err
		}
		if path := f.CheckNeighbors(end, src, startOpen, core.ByStart, core.ByEnd); path != nil {
			return path, f.Runs, nil
		}

		f.Runs++
		if err := f.KeepRunning(); err != nil {
			return nil, f.Runs, err
		}
		if path := f.CheckNeighbors(start, src, endOpen, core.ByEnd, core.ByStart); path != nil {
			return path, f.Runs, nil
		}
	}

	return nil, f.Runs, nil
}

var _ pathfinding.Pathfinder = (*Finder)(nil)

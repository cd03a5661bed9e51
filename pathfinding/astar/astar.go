// Package astar implements the A* finder, the baseline the best-first,
// bidirectional and Theta* variants build on.
package astar

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
)

// RelaxFunc is the relaxation hook CheckNeighbors applies to every neighbor.
// It defaults to the shared ProcessNode; Theta* substitutes its
// line-of-sight shortcut here.
type RelaxFunc func(src core.NodeSource, node, parent, end *core.GridNode, open *core.OpenList, openedBy core.OpenedBy)

// Finder runs A*: pop the open node with the lowest f, finish when it is the
// goal, otherwise relax its neighbors.
type Finder struct {
	pathfinding.Finder

	Relax RelaxFunc
}

// New creates an A* finder. Without an explicit heuristic it uses Manhattan
// distance, or octile distance when diagonal movement is enabled (Manhattan
// is not admissible there).
func New(opts pathfinding.Options) *Finder {
	return NewNamed("A*", opts, true)
}

// NewNamed builds an A* core under a different finder name; the derived
// finders (best-first, bidirectional, Theta*) use it to keep their own name
// in budget errors.
func NewNamed(name string, opts pathfinding.Options, weighted bool) *Finder {
	if opts.Heuristic == nil {
		if opts.DiagonalMovement == core.DiagonalNever {
			opts.Heuristic = core.Manhattan
		} else {
			opts.Heuristic = core.Octile
		}
	}
	f := &Finder{Finder: pathfinding.NewFinder(name, opts, weighted)}
	f.Relax = f.ProcessNode
	return f
}

// CheckNeighbors runs one expansion step. With backtraceBy set (the
// bidirectional case) the goal test changes: instead of popping the end
// node, finding a neighbor already opened by the oncoming frontier finishes
// the search.
func (f *Finder) CheckNeighbors(end *core.GridNode, src core.NodeSource, open *core.OpenList, openedBy, backtraceBy core.OpenedBy) []*core.GridNode {
	node := open.Pop()
	if node == nil {
		return nil
	}
	node.Closed = true

	if backtraceBy == core.NotOpened && node == end {
		return core.Backtrace(end)
	}

	for _, neighbor := range f.FindNeighbors(src, node) {
		if neighbor.Closed {
			continue
		}
		if backtraceBy != core.NotOpened && neighbor.Opened == backtraceBy {
			// met the oncoming frontier
			if backtraceBy == core.ByEnd {
				return core.BiBacktrace(node, neighbor)
			}
			return core.BiBacktrace(neighbor, node)
		}
		f.Relax(src, neighbor, node, end, open, openedBy)
	}

	return nil
}

// FindPath searches the map from start to end.
func (f *Finder) FindPath(start, end *core.GridNode, src core.NodeSource) ([]*core.GridNode, int, error) {
	return f.Search(start, end, src, func(_, end *core.GridNode, src core.NodeSource, open *core.OpenList) []*core.GridNode {
		return f.CheckNeighbors(end, src, open, core.ByStart, core.NotOpened)
	})
}

// Package msp grows a minimum spanning tree out of a start node with
// Prim's algorithm: a Dijkstra-style sweep with no goal bias, so every
// popped node carries the cheapest cost back to the root. FindPath reuses
// the sweep, stopping it the moment the end node joins the tree.
package msp

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
)

// Finder grows minimum spanning trees over the grid.
type Finder struct {
	pathfinding.Finder
}

// New creates a spanning-tree finder. The heuristic is fixed to null; cost
// alone orders the sweep.
func New(opts pathfinding.Options) *Finder {
	opts.Heuristic = core.Null
	return &Finder{Finder: pathfinding.NewFinder("MinimumSpanningTree", opts, true)}
}

// WalkTree sweeps outward from start, calling visit on every node as it is
// settled into the tree. visit returning true stops the sweep early.
func (f *Finder) WalkTree(src core.NodeSource, start *core.GridNode, visit func(*core.GridNode) bool) error {
	// nothing on the map matches this, so the sweep never terminates on a
	// goal test of its own
	fakeEnd := &core.GridNode{X: -1, Y: -1, Z: -1}

	start.G = 0
	start.F = 0
	start.Opened = core.ByStart
	open := core.NewOpenList(start)

	for open.Len() > 0 {
		f.Runs++
		if err := f.KeepRunning(); err != nil {
			return err
		}

		node := open.Pop()
		if node == nil {
			continue
		}
		node.Closed = true

		if visit(node) {
			return nil
		}

		for _, neighbor := range f.FindNeighbors(src, node) {
			if neighbor.Closed {
				continue
			}
			f.ProcessNode(src, neighbor, node, fakeEnd, open, core.ByStart)
		}
	}

	return nil
}

// Tree returns every node reachable from start, in settle order. The parent
// pointers left on the nodes form the spanning tree.
func (f *Finder) Tree(src core.NodeSource, start *core.GridNode) ([]*core.GridNode, error) {
	f.StartSearch()

	var nodes []*core.GridNode
	err := f.WalkTree(src, start, func(node *core.GridNode) bool {
		nodes = append(nodes, node)
		return false
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// FindPath grows the tree until end is settled, then backtraces through it.
func (f *Finder) FindPath(start, end *core.GridNode, src core.NodeSource) ([]*core.GridNode, int, error) {
	f.StartSearch()

	found := false
	err := f.WalkTree(src, start, func(node *core.GridNode) bool {
		if node == end {
			found = true
			return true
		}
		return false
	})
	if err != nil {
		return nil, f.Runs, err
	}
	if !found {
		return nil, f.Runs, nil
	}
	return core.Backtrace(end), f.Runs, nil
}

var _ pathfinding.Pathfinder = (*Finder)(nil)

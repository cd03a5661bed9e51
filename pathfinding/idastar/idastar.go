// Package idastar implements iterative-deepening A*. Instead of an open
// list it runs repeated depth-first probes, each bounded by an f cutoff that
// grows to the smallest f seen past the previous bound. Memory stays linear
// in the path depth; without a runs or time budget an unreachable goal keeps
// the search probing forever, so configure one.
package idastar

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
)

// Finder runs IDA* over the grid. Node weights are ignored.
type Finder struct {
	pathfinding.Finder
}

// New creates an IDA* finder with the A* heuristic defaults.
func New(opts pathfinding.Options) *Finder {
	if opts.Heuristic == nil {
		if opts.DiagonalMovement == core.DiagonalNever {
			opts.Heuristic = core.Manhattan
		} else {
			opts.Heuristic = core.Octile
		}
	}
	return &Finder{Finder: pathfinding.NewFinder("IDA*", opts, false)}
}

// search is one depth-first probe. It returns the node when the goal is
// reached at this depth, otherwise the smallest f value that exceeded the
// cutoff (the next iteration's bound).
func (f *Finder) search(src core.NodeSource, node *core.GridNode, g, cutoff float64, path *[]*core.GridNode, depth int, end *core.GridNode) (float64, *core.GridNode, error) {
	f.Runs++
	if err := f.KeepRunning(); err != nil {
		return 0, nil, err
	}

	fv := g + f.ApplyHeuristic(node, end)*float64(f.Weight)
	if fv > cutoff {
		return fv, nil, nil
	}

	if node == end {
		if len(*path) < depth+1 {
			grown := make([]*core.GridNode, depth+1)
			copy(grown, *path)
			*path = grown
		}
		(*path)[depth] = node
		return 0, node, nil
	}

	minT := infinity
	for _, neighbor := range f.FindNeighbors(src, node) {
		if f.TrackRecursion {
			neighbor.RetainCount++
			neighbor.Tested = true
		}

		t, found, err := f.search(src, neighbor, g+src.CalcCost(node, neighbor, false), cutoff, path, depth+1, end)
		if err != nil {
			return 0, nil, err
		}
		if found != nil {
			if len(*path) < depth+1 {
				grown := make([]*core.GridNode, depth+1)
				copy(grown, *path)
				*path = grown
			}
			(*path)[depth] = node
			return 0, found, nil
		}

		if f.TrackRecursion {
			neighbor.RetainCount--
			if neighbor.RetainCount == 0 {
				neighbor.Tested = false
			}
		}

		if t < minT {
			minT = t
		}
	}

	return minT, nil, nil
}

const infinity = float64(1 << 62)

// FindPath searches the map from start to end, deepening the f cutoff until
// the goal is reached or a budget trips.
func (f *Finder) FindPath(start, end *core.GridNode, src core.NodeSource) ([]*core.GridNode, int, error) {
	f.StartSearch()

	cutoff := f.ApplyHeuristic(start, end) * float64(f.Weight)
	for {
		path := []*core.GridNode{}
		t, found, err := f.search(src, start, 0, cutoff, &path, 0, end)
		if err != nil {
			return nil, f.Runs, err
		}
		if found != nil {
			return path, f.Runs, nil
		}
		cutoff = t
	}
}

var _ pathfinding.Pathfinder = (*Finder)(nil)

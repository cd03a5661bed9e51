// Package pathfinding carries the machinery shared by every finder: the
// configuration options, the budget checks, and the relaxation step that
// updates a neighbor's cost and parent when a cheaper route to it shows up.
// The algorithms themselves live in the subpackages (astar, dijkstra, ...).
package pathfinding

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/voxnav/voxnav/core"
)

var (
	// ErrRunsExceeded aborts a search that used up its iteration budget.
	ErrRunsExceeded = errors.New("maximum runs exceeded")
	// ErrTimeExceeded aborts a search that used up its wall-clock budget.
	ErrTimeExceeded = errors.New("time limit exceeded")
)

// Options configures a finder. The zero value means: finder-default
// heuristic, weight multiplier 1, no diagonal movement, unlimited runs and
// time. A negative TimeLimit fails on the first budget check.
type Options struct {
	// Heuristic estimates remaining cost; nil picks the finder's default.
	Heuristic core.Heuristic

	// Weight scales the heuristic. Values above 1 trade optimality for
	// speed; 0 is treated as 1.
	Weight int

	// DiagonalMovement selects the adjacency policy.
	DiagonalMovement core.DiagonalMovement

	// MaxRuns caps the number of expansion steps; 0 means unlimited.
	MaxRuns int

	// TimeLimit caps the wall-clock search time; 0 means unlimited.
	TimeLimit time.Duration

	// TrackRecursion keeps RetainCount/Tested bookkeeping during IDA*
	// recursion. Ignored by the other finders.
	TrackRecursion bool
}

// Finder holds the configuration and per-run counters shared by all
// algorithms. Concrete finders embed it and drive Search with their own
// expansion step.
type Finder struct {
	Heuristic        core.Heuristic
	Weight           int
	DiagonalMovement core.DiagonalMovement
	// Weighted reports whether the algorithm honors node weights.
	Weighted       bool
	MaxRuns        int
	TimeLimit      time.Duration
	TrackRecursion bool

	// Runs counts expansion steps of the current search.
	Runs int

	name      string
	startTime time.Time
}

// NewFinder builds the shared base. name shows up in budget errors;
// weighted declares whether the algorithm honors node weights.
func NewFinder(name string, opts Options, weighted bool) Finder {
	if opts.Weight == 0 {
		opts.Weight = 1
	}
	return Finder{
		Heuristic:        opts.Heuristic,
		Weight:           opts.Weight,
		DiagonalMovement: opts.DiagonalMovement,
		Weighted:         weighted,
		MaxRuns:          opts.MaxRuns,
		TimeLimit:        opts.TimeLimit,
		TrackRecursion:   opts.TrackRecursion,
		name:             name,
	}
}

// Name returns the finder's algorithm name.
func (f *Finder) Name() string { return f.name }

// ApplyHeuristic evaluates the heuristic on the absolute per-axis distances
// between the two nodes.
func (f *Finder) ApplyHeuristic(a, b *core.GridNode) float64 {
	return f.Heuristic(
		math.Abs(float64(a.X-b.X)),
		math.Abs(float64(a.Y-b.Y)),
		math.Abs(float64(a.Z-b.Z)),
	)
}

// FindNeighbors asks the map for the reachable neighbors of node under the
// finder's diagonal policy.
func (f *Finder) FindNeighbors(src core.NodeSource, node *core.GridNode) []*core.GridNode {
	return src.Neighbors(node, f.DiagonalMovement)
}

// StartSearch resets the per-run counters. Every FindPath implementation
// calls it once before its main loop.
func (f *Finder) StartSearch() {
	f.startTime = time.Now()
	f.Runs = 0
}

// KeepRunning returns a budget error once the iteration or time budget is
// used up. Both are hard aborts; no partial path is produced.
func (f *Finder) KeepRunning() error {
	if f.MaxRuns > 0 && f.Runs >= f.MaxRuns {
		return fmt.Errorf("%s hit the barrier of %d iterations without finding the destination: %w",
			f.name, f.MaxRuns, ErrRunsExceeded)
	}
	if f.TimeLimit != 0 && time.Since(f.startTime) >= f.TimeLimit {
		return fmt.Errorf("%s took longer than %v, aborting: %w", f.name, f.TimeLimit, ErrTimeExceeded)
	}
	return nil
}

// ProcessNode is the relaxation step: if node is unopened or reachable more
// cheaply through parent, update its g, cached h, f and parent, then push it
// into the open list (tombstoning the stale entry when it was already open).
// openedBy tags which frontier discovered the node.
func (f *Finder) ProcessNode(src core.NodeSource, node, parent, end *core.GridNode, open *core.OpenList, openedBy core.OpenedBy) {
	ng := parent.G + src.CalcCost(parent, node, f.Weighted)

	if node.Opened == core.NotOpened || ng < node.G {
		oldF := node.F
		node.G = ng
		if node.H == 0 {
			node.H = f.ApplyHeuristic(node, end) * float64(f.Weight)
		}
		node.F = node.G + node.H
		node.Parent = parent

		if node.Opened == core.NotOpened {
			open.Push(node)
			node.Opened = openedBy
		} else {
			// cheaper route to an open node: tombstone the stale entry
			// and push a fresh one (decrease-key)
			open.Remove(node, oldF)
			open.Push(node)
		}
	}
}

// Step is one algorithm-specific expansion. It returns the finished path,
// or nil to keep the search loop running.
type Step func(start, end *core.GridNode, src core.NodeSource, open *core.OpenList) []*core.GridNode

// Search is the find-path template shared by the heap-based finders: seed
// the start node, then loop one expansion at a time under the budget checks
// until a path is found or the frontier drains. An exhausted frontier is an
// empty result, not an error.
func (f *Finder) Search(start, end *core.GridNode, src core.NodeSource, step Step) ([]*core.GridNode, int, error) {
	f.StartSearch()
	start.G = 0
	start.F = 0
	start.Opened = core.ByStart

	open := core.NewOpenList(start)
	for open.Len() > 0 {
		f.Runs++
		if err := f.KeepRunning(); err != nil {
			return nil, f.Runs, err
		}
		if path := step(start, end, src, open); path != nil {
			return path, f.Runs, nil
		}
	}

	return nil, f.Runs, nil
}

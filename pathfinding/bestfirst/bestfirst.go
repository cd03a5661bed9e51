// Package bestfirst implements greedy best-first search: A* whose heuristic
// dwarfs the accumulated cost, so expansion chases the goal directly. Fast,
// not cost-optimal.
package bestfirst

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/astar"
)

// greedyBias makes h dominate g in f = g + h.
const greedyBias = 1_000_000

// Finder is the greedy best-first variant of A*.
type Finder struct {
	*astar.Finder
}

// New creates a best-first finder. The heuristic default follows A*
// (Manhattan, or octile with diagonals); node weights are ignored.
func New(opts pathfinding.Options) *Finder {
	inner := opts.Heuristic
	if inner == nil {
		if opts.DiagonalMovement == core.DiagonalNever {
			inner = core.Manhattan
		} else {
			inner = core.Octile
		}
	}
	opts.Heuristic = func(dx, dy, dz float64) float64 {
		return inner(dx, dy, dz) * greedyBias
	}
	return &Finder{Finder: astar.NewNamed("BestFirst", opts, false)}
}

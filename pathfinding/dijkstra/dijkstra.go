// Package dijkstra implements uniform-cost search: A* with the null
// heuristic, so f is the accumulated cost alone.
package dijkstra

import (
	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/astar"
)

// Finder runs Dijkstra's algorithm over the grid.
type Finder struct {
	*astar.Finder
}

// New creates a Dijkstra finder. Any configured heuristic is replaced by the
// null heuristic.
func New(opts pathfinding.Options) *Finder {
	opts.Heuristic = core.Null
	return &Finder{Finder: astar.NewNamed("Dijkstra", opts, true)}
}

package pathfinding

import "github.com/voxnav/voxnav/core"

// Pathfinder is the contract every finder satisfies: search the map from
// start to end and report the path (empty if unreachable), the number of
// expansion steps, and a budget error if one tripped.
type Pathfinder interface {
	FindPath(start, end *core.GridNode, src core.NodeSource) ([]*core.GridNode, int, error)
}

// Result is the serializable outcome of a search.
type Result struct {
	Path []core.Coord `json:"path"`
	Runs int          `json:"runs"`
}

// NewResult converts a node path into its coordinate form.
func NewResult(path []*core.GridNode, runs int) Result {
	coords := make([]core.Coord, 0, len(path))
	for _, node := range path {
		coords = append(coords, core.Coord{node.X, node.Y, node.Z})
	}
	return Result{Path: coords, Runs: runs}
}

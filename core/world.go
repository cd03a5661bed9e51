package core

// World is a registry of grids keyed by grid id. It lets one search traverse
// nodes tagged with different grid ids as if they were a single graph; the
// only edges between grids are the ones declared explicitly through
// GridNode.Connect.
type World struct {
	grids map[int]*Grid
}

// NewWorld builds a world over the given grids. The map keys must match the
// GridID the grids were built with.
func NewWorld(grids map[int]*Grid) *World {
	return &World{grids: grids}
}

// Grid returns the grid registered under the given id, or nil.
func (w *World) Grid(id int) *Grid { return w.grids[id] }

// NodeAt implements NodeSource by resolving the node through its owning grid.
func (w *World) NodeAt(id NodeID) *GridNode {
	grid, ok := w.grids[id.GridID]
	if !ok {
		return nil
	}
	return grid.Node(id.X, id.Y, id.Z)
}

// GridFor implements NodeSource.
func (w *World) GridFor(node *GridNode) *Grid { return w.grids[node.GridID] }

// Neighbors delegates to the grid owning the node.
func (w *World) Neighbors(node *GridNode, diagonal DiagonalMovement) []*GridNode {
	return w.grids[node.GridID].Neighbors(node, diagonal)
}

// CalcCost delegates to the grid owning the first node. When the two nodes
// belong to different grids the same-grid formula is applied unchanged; no
// cross-grid metric is defined.
func (w *World) CalcCost(a, b *GridNode, weighted bool) float64 {
	return w.grids[a.GridID].CalcCost(a, b, weighted)
}

// Cleanup resets the search state of every node in every grid.
func (w *World) Cleanup() {
	for _, grid := range w.grids {
		grid.Cleanup()
	}
}

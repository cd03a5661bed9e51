package core

// NodeSource is the capability a finder needs from the map it searches:
// resolve a node by identity, enumerate reachable neighbors, and price an
// edge. Both Grid and World implement it, so a search neither knows nor
// cares whether it runs over one grid or several connected ones.
type NodeSource interface {
	// NodeAt returns the node with the given identity, or nil if the
	// position is outside the map.
	NodeAt(id NodeID) *GridNode

	// Neighbors returns the reachable adjacent nodes of node under the
	// given diagonal-movement policy, in a deterministic order.
	Neighbors(node *GridNode, diagonal DiagonalMovement) []*GridNode

	// CalcCost returns the cost of moving from a to b. When weighted is
	// true the target node's weight scales the cost.
	CalcCost(a, b *GridNode, weighted bool) float64

	// GridFor returns the grid that owns the given node.
	GridFor(node *GridNode) *Grid

	// Cleanup resets the search state of every owned node.
	Cleanup()
}

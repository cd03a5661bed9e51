package core

// OpenedBy tags which frontier discovered a node. Zero means the node has
// not been opened yet; bidirectional searches use ByStart and ByEnd to tell
// their two frontiers apart.
type OpenedBy int

const (
	NotOpened OpenedBy = 0
	ByStart   OpenedBy = 1
	ByEnd     OpenedBy = 2
)

// NodeID is the stable identity of a grid cell, usable as a map key by the
// open list and by the World. GridID is 0 for single-grid setups.
type NodeID struct {
	X, Y, Z int
	GridID  int
}

// GridNode is one cell of a Grid: fixed identity (coordinates, walkability,
// weight) plus the mutable search state the finders scribble on. Nodes are
// allocated once per grid and reused across searches; Cleanup resets the
// search state between runs.
type GridNode struct {
	X, Y, Z int

	// Walkable reports whether a search may enter this cell.
	Walkable bool

	// Weight multiplies the traversal cost into this cell when a weighted
	// algorithm is used.
	Weight float64

	// GridID disambiguates cells when several grids form a World.
	GridID int

	// Connections are manually declared edges to nodes in (possibly) other
	// grids, independent of lattice adjacency. Declare both directions if
	// bidirectional traversal is wanted.
	Connections []*GridNode

	// search state

	// G is the cost from the start node to this node.
	G float64
	// H is the heuristic estimate from this node to the goal.
	H float64
	// F is the estimated total cost of a path through this node (G + H).
	// Nodes order by F in the open list.
	F float64

	Opened OpenedBy
	Closed bool

	// Parent is the predecessor on the best known path. Parent links form a
	// tree rooted at the search origin; they point into grid-owned storage
	// and never own the node they reference.
	Parent *GridNode

	// RetainCount and Tested track overlapping recursive visits for IDA*.
	RetainCount int
	Tested      bool
}

// ID returns the node's identity key.
func (n *GridNode) ID() NodeID {
	return NodeID{X: n.X, Y: n.Y, Z: n.Z, GridID: n.GridID}
}

// Connect declares a one-way traversal edge from n to other.
func (n *GridNode) Connect(other *GridNode) {
	n.Connections = append(n.Connections, other)
}

// Cleanup resets all per-search state so the node can take part in a fresh
// search. Running a finder over nodes that still carry state from a previous
// run is a caller error.
func (n *GridNode) Cleanup() {
	n.G = 0
	n.H = 0
	n.F = 0
	n.Opened = NotOpened
	n.Closed = false
	n.Parent = nil
	n.RetainCount = 0
	n.Tested = false
}

package core

import (
	"fmt"
	"math"
)

// GridConfig describes how to build a Grid. Either give explicit dimensions
// for an all-walkable grid, or a Matrix whose shape determines the
// dimensions and whose values determine walkability and weight.
type GridConfig struct {
	Width, Height, Depth int

	// Matrix is a dense [width][height][depth] array of cell values. A cell
	// is an obstacle when int(value) < 1 (or >= 1 when Inverse is set);
	// values above 1 assign a traversal weight to the cell.
	Matrix [][][]float64

	// Inverse flips obstacle polarity: values <= 0 become walkable.
	Inverse bool

	// GridID tags every node of this grid, for use inside a World.
	GridID int
}

// Grid owns a dense 3D array of nodes, one per cell, and answers the
// topology and cost queries the finders rely on.
type Grid struct {
	Width, Height, Depth int

	gridID int
	nodes  [][][]*GridNode
}

// NewGrid builds a grid from the given configuration. It returns an error
// if the matrix is empty or not rectangular, or if no usable dimensions can
// be derived at all.
func NewGrid(cfg GridConfig) (*Grid, error) {
	width, height, depth := cfg.Width, cfg.Height, cfg.Depth
	if cfg.Matrix != nil {
		if len(cfg.Matrix) == 0 || len(cfg.Matrix[0]) == 0 || len(cfg.Matrix[0][0]) == 0 {
			return nil, fmt.Errorf("grid: matrix is not a 3D structure or is empty")
		}
		width, height, depth = len(cfg.Matrix), len(cfg.Matrix[0]), len(cfg.Matrix[0][0])
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%dx%d", width, height, depth)
	}

	g := &Grid{Width: width, Height: height, Depth: depth, gridID: cfg.GridID}
	g.nodes = make([][][]*GridNode, width)
	for x := 0; x < width; x++ {
		g.nodes[x] = make([][]*GridNode, height)
		for y := 0; y < height; y++ {
			g.nodes[x][y] = make([]*GridNode, depth)
			for z := 0; z < depth; z++ {
				weight := 1
				if cfg.Matrix != nil {
					if len(cfg.Matrix[x]) != height || len(cfg.Matrix[x][y]) != depth {
						return nil, fmt.Errorf("grid: matrix is not rectangular at [%d][%d]", x, y)
					}
					weight = int(cfg.Matrix[x][y][z])
				}
				walkable := weight >= 1
				if cfg.Inverse {
					walkable = weight <= 0
				}
				g.nodes[x][y][z] = &GridNode{
					X: x, Y: y, Z: z,
					Walkable: walkable,
					Weight:   float64(weight),
					GridID:   cfg.GridID,
				}
			}
		}
	}
	return g, nil
}

// GridID returns the identifier this grid tags its nodes with.
func (g *Grid) GridID() int { return g.gridID }

// Node returns the node at (x, y, z), or nil if outside the grid.
func (g *Grid) Node(x, y, z int) *GridNode {
	if !g.Inside(x, y, z) {
		return nil
	}
	return g.nodes[x][y][z]
}

// NodeAt implements NodeSource.
func (g *Grid) NodeAt(id NodeID) *GridNode { return g.Node(id.X, id.Y, id.Z) }

// GridFor implements NodeSource.
func (g *Grid) GridFor(*GridNode) *Grid { return g }

// Inside reports whether the position lies within the grid bounds.
func (g *Grid) Inside(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < g.Depth
}

// Walkable reports whether the position is inside the grid and enterable.
func (g *Grid) Walkable(x, y, z int) bool {
	return g.Inside(x, y, z) && g.nodes[x][y][z].Walkable
}

// CalcCost returns the Euclidean distance between the two nodes, scaled by
// the target node's weight when weighted is set. The value depends only on
// the two endpoints, never on path history.
func (g *Grid) CalcCost(a, b *GridNode, weighted bool) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dz := float64(b.Z - a.Z)
	ng := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if weighted {
		ng *= b.Weight
	}
	return ng
}

// Neighbors returns the reachable neighbors of node in a fixed order:
// the six orthogonals, any manual connections, the twelve edge diagonals,
// then the eight corner diagonals.
//
// Flag naming follows the plane decomposition of the 26-neighborhood:
// c* is the current z-plane, u* the upper plane (+z), l* the lower plane
// (-z); *s are orthogonal ("straight") flags, *d diagonal flags, ut/lb the
// two z-axis steps. Index 0..3 walks -y, +x, +y, -x around each plane.
func (g *Grid) Neighbors(node *GridNode, diagonal DiagonalMovement) []*GridNode {
	x, y, z := node.X, node.Y, node.Z
	var neighbors []*GridNode

	var cs0, cd0, cs1, cd1, cs2, cd2, cs3, cd3 bool
	var us0, ud0, us1, ud1, us2, ud2, us3, ud3, ut bool
	var ls0, ld0, ls1, ld1, ls2, ld2, ls3, ld3, lb bool

	// +x
	if g.Walkable(x+1, y, z) {
		neighbors = append(neighbors, g.nodes[x+1][y][z])
		cs1 = true
	}
	// -x
	if g.Walkable(x-1, y, z) {
		neighbors = append(neighbors, g.nodes[x-1][y][z])
		cs3 = true
	}
	// +y
	if g.Walkable(x, y+1, z) {
		neighbors = append(neighbors, g.nodes[x][y+1][z])
		cs2 = true
	}
	// -y
	if g.Walkable(x, y-1, z) {
		neighbors = append(neighbors, g.nodes[x][y-1][z])
		cs0 = true
	}
	// +z
	if g.Walkable(x, y, z+1) {
		neighbors = append(neighbors, g.nodes[x][y][z+1])
		ut = true
	}
	// -z
	if g.Walkable(x, y, z-1) {
		neighbors = append(neighbors, g.nodes[x][y][z-1])
		lb = true
	}

	// manual connections to other grids come regardless of policy
	neighbors = append(neighbors, node.Connections...)

	if diagonal == DiagonalNever {
		return neighbors
	}

	switch diagonal {
	case DiagonalOnlyWhenNoObstacle:
		cd0 = cs0 && cs3
		cd1 = cs0 && cs1
		cd2 = cs1 && cs2
		cd3 = cs2 && cs3

		us0 = cs0 && ut
		us1 = cs1 && ut
		us2 = cs2 && ut
		us3 = cs3 && ut

		ls0 = cs0 && lb
		ls1 = cs1 && lb
		ls2 = cs2 && lb
		ls3 = cs3 && lb

	case DiagonalIfAtMostOneObstacle:
		cd0 = cs0 || cs3
		cd1 = cs0 || cs1
		cd2 = cs1 || cs2
		cd3 = cs2 || cs3

		us0 = cs0 || ut
		us1 = cs1 || ut
		us2 = cs2 || ut
		us3 = cs3 || ut

		ls0 = cs0 || lb
		ls1 = cs1 || lb
		ls2 = cs2 || lb
		ls3 = cs3 || lb

	case DiagonalAlways:
		cd0, cd1, cd2, cd3 = true, true, true, true
		us0, us1, us2, us3 = true, true, true, true
		ls0, ls1, ls2, ls3 = true, true, true, true
	}

	// edge diagonals; a rejected target also clears its gating flag so it
	// cannot enable a corner diagonal below

	// +x +y
	if cd2 && g.Walkable(x+1, y+1, z) {
		neighbors = append(neighbors, g.nodes[x+1][y+1][z])
	} else {
		cd2 = false
	}
	// +x -y
	if cd1 && g.Walkable(x+1, y-1, z) {
		neighbors = append(neighbors, g.nodes[x+1][y-1][z])
	} else {
		cd1 = false
	}
	// -x +y
	if cd3 && g.Walkable(x-1, y+1, z) {
		neighbors = append(neighbors, g.nodes[x-1][y+1][z])
	} else {
		cd3 = false
	}
	// -x -y
	if cd0 && g.Walkable(x-1, y-1, z) {
		neighbors = append(neighbors, g.nodes[x-1][y-1][z])
	} else {
		cd0 = false
	}
	// +x +z
	if us2 && g.Walkable(x+1, y, z+1) {
		neighbors = append(neighbors, g.nodes[x+1][y][z+1])
	} else {
		us2 = false
	}
	// +x -z
	if ls2 && g.Walkable(x+1, y, z-1) {
		neighbors = append(neighbors, g.nodes[x+1][y][z-1])
	} else {
		ls2 = false
	}
	// -x +z
	if us3 && g.Walkable(x-1, y, z+1) {
		neighbors = append(neighbors, g.nodes[x-1][y][z+1])
	} else {
		us3 = false
	}
	// -x -z
	if ls3 && g.Walkable(x-1, y, z-1) {
		neighbors = append(neighbors, g.nodes[x-1][y][z-1])
	} else {
		ls3 = false
	}
	// +y +z
	if us0 && g.Walkable(x, y+1, z+1) {
		neighbors = append(neighbors, g.nodes[x][y+1][z+1])
	} else {
		us0 = false
	}
	// +y -z
	if ls0 && g.Walkable(x, y+1, z-1) {
		neighbors = append(neighbors, g.nodes[x][y+1][z-1])
	} else {
		ls0 = false
	}
	// -y +z
	if us1 && g.Walkable(x, y-1, z+1) {
		neighbors = append(neighbors, g.nodes[x][y-1][z+1])
	} else {
		us1 = false
	}
	// -y -z
	if ls1 && g.Walkable(x, y-1, z-1) {
		neighbors = append(neighbors, g.nodes[x][y-1][z-1])
	} else {
		ls1 = false
	}

	// corner diagonals depend on the three face flags and the three edge
	// flags touching them
	switch diagonal {
	case DiagonalOnlyWhenNoObstacle:
		ud0 = cd0 && cs0 && cs3 && us0 && us3 && ut
		ud1 = cd1 && cs0 && cs1 && us0 && us1 && ut
		ud2 = cd2 && cs1 && cs2 && us1 && us2 && ut
		ud3 = cd3 && cs2 && cs3 && us2 && us3 && ut

		ld0 = cd0 && cs0 && cs3 && ls0 && ls3 && lb
		ld1 = cd1 && cs0 && cs1 && ls0 && ls1 && lb
		ld2 = cd2 && cs1 && cs2 && ls1 && ls2 && lb
		ld3 = cd3 && cs2 && cs3 && ls2 && ls3 && lb

	case DiagonalIfAtMostOneObstacle:
		ud0 = countTrue(cd0, cs0, cs3, us0, us3, ut) >= 5
		ud1 = countTrue(cd1, cs0, cs1, us0, us1, ut) >= 5
		ud2 = countTrue(cd2, cs1, cs2, us1, us2, ut) >= 5
		ud3 = countTrue(cd3, cs2, cs3, us2, us3, ut) >= 5

		ld0 = countTrue(cd0, cs0, cs3, ls0, ls3, lb) >= 5
		ld1 = countTrue(cd1, cs0, cs1, ls0, ls1, lb) >= 5
		ld2 = countTrue(cd2, cs1, cs2, ls1, ls2, lb) >= 5
		ld3 = countTrue(cd3, cs2, cs3, ls2, ls3, lb) >= 5

	case DiagonalAlways:
		ud0, ud1, ud2, ud3 = true, true, true, true
		ld0, ld1, ld2, ld3 = true, true, true, true
	}

	// +x +y +z
	if ud2 && g.Walkable(x+1, y+1, z+1) {
		neighbors = append(neighbors, g.nodes[x+1][y+1][z+1])
	}
	// +x +y -z
	if ld2 && g.Walkable(x+1, y+1, z-1) {
		neighbors = append(neighbors, g.nodes[x+1][y+1][z-1])
	}
	// +x -y +z
	if ud1 && g.Walkable(x+1, y-1, z+1) {
		neighbors = append(neighbors, g.nodes[x+1][y-1][z+1])
	}
	// +x -y -z
	if ld1 && g.Walkable(x+1, y-1, z-1) {
		neighbors = append(neighbors, g.nodes[x+1][y-1][z-1])
	}
	// -x +y +z
	if ud3 && g.Walkable(x-1, y+1, z+1) {
		neighbors = append(neighbors, g.nodes[x-1][y+1][z+1])
	}
	// -x +y -z
	if ld3 && g.Walkable(x-1, y+1, z-1) {
		neighbors = append(neighbors, g.nodes[x-1][y+1][z-1])
	}
	// -x -y +z
	if ud0 && g.Walkable(x-1, y-1, z+1) {
		neighbors = append(neighbors, g.nodes[x-1][y-1][z+1])
	}
	// -x -y -z
	if ld0 && g.Walkable(x-1, y-1, z-1) {
		neighbors = append(neighbors, g.nodes[x-1][y-1][z-1])
	}

	return neighbors
}

// Cleanup resets the search state of every node in the grid.
func (g *Grid) Cleanup() {
	for _, plane := range g.nodes {
		for _, row := range plane {
			for _, node := range row {
				node.Cleanup()
			}
		}
	}
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

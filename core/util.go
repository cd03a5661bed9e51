package core

// Coord is an integer voxel position.
type Coord [3]int

// Backtrace follows parent links from node to the root and returns the
// path ordered root→node, both endpoints included.
func Backtrace(node *GridNode) []*GridNode {
	path := []*GridNode{node}
	for node.Parent != nil {
		node = node.Parent
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// BiBacktrace joins the two halves of a bidirectional search: the forward
// backtrace to a, followed by the reversed backward backtrace to b. a and b
// are the two distinct nodes where the frontiers met, so no node repeats.
func BiBacktrace(a, b *GridNode) []*GridNode {
	pathA := Backtrace(a)
	pathB := Backtrace(b)
	for i, j := 0, len(pathB)-1; i < j; i, j = i+1, j-1 {
		pathB[i], pathB[j] = pathB[j], pathB[i]
	}
	return append(pathA, pathB...)
}

// Bresenham rasterizes the segment between a and b, emitting exactly one
// voxel per step of the driving axis (the axis with the largest absolute
// delta) and both endpoints. The 2D double-error scheme is generalized to
// two error terms for the non-driving axes.
func Bresenham(a, b Coord) []Coord {
	var line []Coord
	x0, y0, z0 := a[0], a[1], a[2]
	x1, y1, z1 := b[0], b[1], b[2]
	dx, dy, dz := abs(x1-x0), abs(y1-y0), abs(z1-z0)
	sx, sy, sz := 1, 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	if z0 >= z1 {
		sz = -1
	}

	switch {
	case dx >= dy && dx >= dz: // driving axis is x
		err1 := 2*dy - dx
		err2 := 2*dz - dx
		for x0 != x1 {
			line = append(line, Coord{x0, y0, z0})
			if err1 > 0 {
				y0 += sy
				err1 -= 2 * dx
			}
			if err2 > 0 {
				z0 += sz
				err2 -= 2 * dx
			}
			err1 += 2 * dy
			err2 += 2 * dz
			x0 += sx
		}
	case dy >= dx && dy >= dz: // driving axis is y
		err1 := 2*dx - dy
		err2 := 2*dz - dy
		for y0 != y1 {
			line = append(line, Coord{x0, y0, z0})
			if err1 > 0 {
				x0 += sx
				err1 -= 2 * dy
			}
			if err2 > 0 {
				z0 += sz
				err2 -= 2 * dy
			}
			err1 += 2 * dx
			err2 += 2 * dz
			y0 += sy
		}
	default: // driving axis is z
		err1 := 2*dy - dz
		err2 := 2*dx - dz
		for z0 != z1 {
			line = append(line, Coord{x0, y0, z0})
			if err1 > 0 {
				y0 += sy
				err1 -= 2 * dz
			}
			if err2 > 0 {
				x0 += sx
				err2 -= 2 * dz
			}
			err1 += 2 * dy
			err2 += 2 * dx
			z0 += sz
		}
	}

	return append(line, Coord{x0, y0, z0})
}

// Raytrace walks the continuous segment between the centers of a and b and
// returns every voxel the segment geometrically intersects (a supercover
// line, a superset of Bresenham's). The walk advances along whichever axis
// reaches its next voxel boundary soonest, ties broken by axis order.
func Raytrace(a, b Coord) []Coord {
	var line []Coord

	d := [3]float64{float64(b[0] - a[0]), float64(b[1] - a[1]), float64(b[2] - a[2])}
	pos := a

	var tForOne, tNextBorder [3]float64
	var step [3]int
	for i := 0; i < 3; i++ {
		if d[i] != 0 {
			tForOne[i] = 1 / absFloat(d[i])
		} else {
			tForOne[i] = 1e10
		}
		// starting at a cell center, the first boundary is half a cell away
		if d[i] < 0 {
			step[i] = -1
		} else {
			step[i] = 1
		}
		tNextBorder[i] = 0.5 * tForOne[i]
	}

	t := 0.0
	for t <= 1.0 {
		line = append(line, pos)
		axis := 2
		if tNextBorder[0] <= tNextBorder[1] && tNextBorder[0] <= tNextBorder[2] {
			axis = 0
		} else if tNextBorder[1] <= tNextBorder[2] && tNextBorder[1] <= tNextBorder[0] {
			axis = 1
		}
		t = tNextBorder[axis]
		tNextBorder[axis] += tForOne[axis]
		pos[axis] += step[axis]
	}

	return line
}

// LineOfSight reports whether every voxel strictly between the two nodes is
// walkable, using the conservative supercover walk. A node always has line
// of sight to itself.
func LineOfSight(grid *Grid, a, b *GridNode) bool {
	if a == b {
		return true
	}
	line := Raytrace(Coord{a.X, a.Y, a.Z}, Coord{b.X, b.Y, b.Z})
	for _, c := range line[1 : len(line)-1] {
		if !grid.Walkable(c[0], c[1], c[2]) {
			return false
		}
	}
	return true
}

// ExpandPath interpolates every consecutive waypoint pair with Bresenham and
// concatenates the segments, dropping the duplicated shared endpoints, so a
// sparse waypoint list becomes a dense every-voxel path.
func ExpandPath(path []Coord) []Coord {
	var expanded []Coord
	if len(path) < 2 {
		return expanded
	}
	for i := 0; i < len(path)-1; i++ {
		segment := Bresenham(path[i], path[i+1])
		if i > 0 {
			segment = segment[1:]
		}
		expanded = append(expanded, segment...)
	}
	return expanded
}

// SmoothenPath string-pulls a dense path: from an anchor it scans ahead and
// drops waypoints as long as the interpolated line to the farther candidate
// stays walkable, otherwise it commits the last good candidate as the new
// anchor. The first and last waypoints always survive. useRaytrace selects
// the supercover walk instead of Bresenham for the visibility test.
func SmoothenPath(grid *Grid, path []Coord, useRaytrace bool) []Coord {
	if len(path) < 3 {
		return path
	}

	interpolate := Bresenham
	if useRaytrace {
		interpolate = Raytrace
	}

	anchor := path[0]
	newPath := []Coord{anchor}
	lastValid := path[1]
	for _, coord := range path[2 : len(path)-1] {
		line := interpolate(anchor, coord)
		blocked := false
		for _, c := range line[1:] {
			if !grid.Walkable(c[0], c[1], c[2]) {
				blocked = true
				break
			}
		}
		if !blocked {
			newPath = append(newPath, lastValid)
			anchor = lastValid
		}
		lastValid = coord
	}

	return append(newPath, path[len(path)-1])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package core

// DiagonalMovement controls which diagonal steps the neighbor enumeration
// is allowed to take, based on the walkability of the orthogonal cells
// contributing to the diagonal.
type DiagonalMovement int

const (
	// DiagonalNever restricts movement to the six face-adjacent cells.
	DiagonalNever DiagonalMovement = iota
	// DiagonalOnlyWhenNoObstacle permits a diagonal only if every
	// contributing orthogonal cell is walkable.
	DiagonalOnlyWhenNoObstacle
	// DiagonalIfAtMostOneObstacle permits a diagonal if at most one of the
	// contributing orthogonal cells is blocked.
	DiagonalIfAtMostOneObstacle
	// DiagonalAlways permits every diagonal whose target cell is walkable.
	DiagonalAlways
)

func (d DiagonalMovement) String() string {
	switch d {
	case DiagonalNever:
		return "never"
	case DiagonalOnlyWhenNoObstacle:
		return "onlyWhenNoObstacle"
	case DiagonalIfAtMostOneObstacle:
		return "ifAtMostOneObstacle"
	case DiagonalAlways:
		return "always"
	}
	return "unknown"
}

package core

import "math"

var (
	// Sqrt2Minus1 and Sqrt3MinusSqrt2 are the per-axis surcharges of the
	// 3D octile distance: a planar diagonal step costs √2, a space diagonal √3.
	Sqrt2Minus1     = math.Sqrt2 - 1
	Sqrt3MinusSqrt2 = math.Sqrt(3) - math.Sqrt2
)

// Heuristic estimates the remaining cost to the goal from the absolute
// per-axis distances.
type Heuristic func(dx, dy, dz float64) float64

// Null always returns 0, turning A* into Dijkstra: f is driven by g alone.
func Null(dx, dy, dz float64) float64 {
	return 0
}

// Manhattan returns the sum of the axis distances. Only admissible when
// diagonal movement is disabled.
func Manhattan(dx, dy, dz float64) float64 {
	return dx + dy + dz
}

// Euclidean returns the straight-line distance.
func Euclidean(dx, dy, dz float64) float64 {
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Chebyshev returns the largest axis distance.
func Chebyshev(dx, dy, dz float64) float64 {
	return math.Max(dx, math.Max(dy, dz))
}

// Octile generalizes the 2D octile distance to three axes: move diagonally
// across all three axes while possible, then across two, then straight.
func Octile(dx, dy, dz float64) float64 {
	dmax := math.Max(dx, math.Max(dy, dz))
	dmin := math.Min(dx, math.Min(dy, dz))
	dmid := dx + dy + dz - dmax - dmin
	return dmax + Sqrt2Minus1*dmid + Sqrt3MinusSqrt2*dmin
}

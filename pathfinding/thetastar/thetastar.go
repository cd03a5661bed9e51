// Package thetastar implements Theta*, the any-angle variant of A*. During
// relaxation it tries to shortcut past the parent: when the grandparent has
// line of sight to the node the edge snaps straight to it, so the resulting
// path is a short list of waypoints instead of one node per cell.
package thetastar

import (
	"log"

	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/astar"
)

// Finder runs Theta* over the grid. Node weights are ignored.
type Finder struct {
	*astar.Finder
}

// New creates a Theta* finder. Any-angle shortcuts need the full neighbor
// set, so the diagonal policy is forced to always.
func New(opts pathfinding.Options) *Finder {
	if opts.DiagonalMovement != core.DiagonalAlways {
		log.Printf("[WARN] Theta* only supports diagonal movement \"always\", overriding %q", opts.DiagonalMovement)
		opts.DiagonalMovement = core.DiagonalAlways
	}
	f := &Finder{Finder: astar.NewNamed("Theta*", opts, false)}
	f.Relax = f.relaxWithSight
	return f
}

// relaxWithSight rewires node straight to parent's parent when the two can
// see each other; otherwise it falls back to the plain A* relaxation.
func (f *Finder) relaxWithSight(src core.NodeSource, node, parent, end *core.GridNode, open *core.OpenList, openedBy core.OpenedBy) {
	grand := parent.Parent
	if grand == nil || grand.GridID != node.GridID || !core.LineOfSight(src.GridFor(node), node, grand) {
		f.ProcessNode(src, node, parent, end, open, openedBy)
		return
	}

	ng := grand.G + src.CalcCost(grand, node, false)
	if node.Opened == core.NotOpened || ng < node.G {
		oldF := node.F
		node.G = ng
		if node.H == 0 {
			node.H = f.ApplyHeuristic(node, end)
		}
		node.F = node.G + node.H
		node.Parent = grand

		if node.Opened == core.NotOpened {
			open.Push(node)
			node.Opened = openedBy
		} else {
			open.Remove(node, oldF)
			open.Push(node)
		}
	}
}

var _ pathfinding.Pathfinder = (*Finder)(nil)

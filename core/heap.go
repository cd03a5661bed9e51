package core

import "container/heap"

// openEntry is one physical heap entry. Entries order by f, with the push
// sequence breaking ties in FIFO order so equal-cost nodes pop stably.
type openEntry struct {
	f    float64
	seq  int
	node *GridNode
}

type entryKey struct {
	f   float64
	seq int
}

type openHeap []openEntry

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)   { *h = append(*h, x.(openEntry)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// OpenList is the search frontier: a binary heap over (f, sequence) with
// lazy deletion. Decrease-key never moves a heap entry; Remove tombstones
// the stale (f, sequence) pair and Push inserts a fresh entry, so at most
// one entry per node is active at any time even though several physical
// entries may coexist.
type OpenList struct {
	entries openHeap
	pushed  int
	lastSeq map[NodeID]int
	removed map[entryKey]struct{}
}

// NewOpenList creates an open list seeded with the given node.
func NewOpenList(node *GridNode) *OpenList {
	o := &OpenList{
		lastSeq: make(map[NodeID]int),
		removed: make(map[entryKey]struct{}),
	}
	o.Push(node)
	return o
}

// Push inserts the node with its current f value and records the insertion
// sequence under the node's identity.
func (o *OpenList) Push(node *GridNode) {
	seq := o.pushed
	o.pushed++
	o.lastSeq[node.ID()] = seq
	heap.Push(&o.entries, openEntry{f: node.F, seq: seq, node: node})
}

// Remove tombstones the node's last pushed entry. oldF must be the f value
// the node carried when it was pushed; the entry stays in the heap and is
// discarded when it surfaces.
func (o *OpenList) Remove(node *GridNode, oldF float64) {
	seq, ok := o.lastSeq[node.ID()]
	if !ok {
		return
	}
	o.removed[entryKey{f: oldF, seq: seq}] = struct{}{}
}

// Pop extracts the active entry with the lowest (f, sequence), skipping and
// dropping tombstoned entries. It returns nil once no active entry remains.
func (o *OpenList) Pop() *GridNode {
	for o.entries.Len() > 0 {
		entry := heap.Pop(&o.entries).(openEntry)
		key := entryKey{f: entry.f, seq: entry.seq}
		if _, stale := o.removed[key]; stale {
			delete(o.removed, key)
			continue
		}
		return entry.node
	}
	return nil
}

// Pushed returns how many entries have been pushed in total.
func (o *OpenList) Pushed() int { return o.pushed }

// Len returns the number of physical entries, tombstoned ones included.
func (o *OpenList) Len() int { return o.entries.Len() }

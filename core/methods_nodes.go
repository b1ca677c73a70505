// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns handles in ascending slot order.
//
// Ownership:
//   - The arena owns records; adjacency lists hold Handles only.
//   - RemoveNode detaches the node from every neighbor before releasing its slot.

package core

// resolve returns the live record behind h, or nil when h is zero, issued
// by another Graph, out of range or stale. Every public method goes through
// resolve; no Handle is ever dereferenced unchecked.
func (g *Graph) resolve(h Handle) *record {
	if h.IsZero() || h.graph != g.id || int(h.index) >= len(g.slots) {
		return nil
	}
	s := &g.slots[h.index]
	if s.gen != h.gen {
		return nil
	}

	return s.node
}

// handle returns the current Handle of slot idx.
func (g *Graph) handle(idx uint32) Handle {
	return Handle{graph: g.id, index: idx, gen: g.slots[idx].gen}
}

// CreateNode inserts a new territory and returns its Handle.
//
// Implementation:
//   - Stage 1: Build the record with an empty adjacency list and apply opts.
//   - Stage 2: Reuse the most recently freed slot, or grow the arena.
//   - Stage 3: Stamp the Handle with the slot's current generation.
//
// Behavior highlights:
//   - No failure mode. The Graph becomes the sole owner of the node.
//   - Names are not required to be unique; see Lookup.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) CreateNode(class Classification, opts ...NodeOption) Handle {
	r := &record{class: class}
	for _, opt := range opts {
		opt(r)
	}

	var idx uint32
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		idx = uint32(len(g.slots))
		g.slots = append(g.slots, slot{gen: 1})
	}
	g.slots[idx].node = r
	g.live++

	return g.handle(idx)
}

// HasNode reports whether h refers to a live node.
// Complexity: O(1).
func (g *Graph) HasNode(h Handle) bool {
	return g.resolve(h) != nil
}

// RemoveNode deletes the node behind h and every adjacency reference to it.
//
// Implementation:
//   - Stage 1: Resolve h; a zero, foreign (other Graph) or stale handle is a no-op.
//   - Stage 2: Scan every other live node and drop its entries pointing to h.
//   - Stage 3: Release the slot: clear it, bump its generation, push it on the free list.
//
// Behavior highlights:
//   - Idempotent: removing twice leaves the graph exactly as removing once.
//   - After return no live node lists h, and h never resolves again.
//
// Returns:
//   - bool: true if a node was removed.
//
// Complexity:
//   - Time O(V + E): back-references are not indexed by target.
func (g *Graph) RemoveNode(h Handle) bool {
	if g.resolve(h) == nil {
		return false
	}

	for i := range g.slots {
		r := g.slots[i].node
		if r == nil || uint32(i) == h.index {
			continue
		}
		r.adj = dropHandle(r.adj, h)
	}

	g.release(h.index)

	return true
}

// release frees slot idx and invalidates every Handle pointing at it.
func (g *Graph) release(idx uint32) {
	s := &g.slots[idx]
	s.node = nil
	s.gen++
	if s.gen == 0 {
		// Wrapped around; skip 0 so a recycled slot never yields a zero Handle.
		s.gen = 1
	}
	g.free = append(g.free, idx)
	g.live--
}

// Node returns a snapshot of the node behind h.
// Returns ErrNodeNotFound if h is not live.
// Complexity: O(1).
func (g *Graph) Node(h Handle) (Node, error) {
	r := g.resolve(h)
	if r == nil {
		return Node{}, ErrNodeNotFound
	}

	return Node{Handle: h, Name: r.name, Class: r.class}, nil
}

// Name returns the display name of h ("" if unnamed).
// Returns ErrNodeNotFound if h is not live.
func (g *Graph) Name(h Handle) (string, error) {
	r := g.resolve(h)
	if r == nil {
		return "", ErrNodeNotFound
	}

	return r.name, nil
}

// Class returns the classification of h.
// Returns ErrNodeNotFound if h is not live.
func (g *Graph) Class(h Handle) (Classification, error) {
	r := g.resolve(h)
	if r == nil {
		return Classification{}, ErrNodeNotFound
	}

	return r.class, nil
}

// Nodes returns the handles of all live nodes in ascending slot order.
// Complexity: O(S) where S is the arena size.
func (g *Graph) Nodes() []Handle {
	out := make([]Handle, 0, g.live)
	for i := range g.slots {
		if g.slots[i].node != nil {
			out = append(out, g.handle(uint32(i)))
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return g.live
}

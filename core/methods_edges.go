// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() lists each undirected pair once, from its lower slot index,
//     in slot order then adjacency insertion order.
//
// Policy:
//   - Edge operations on a handle that is not live return ErrNodeNotFound
//     and leave the graph untouched.

package core

// Edge is one undirected adjacency between A and B (A == B for a self-loop).
type Edge struct {
	A Handle
	B Handle
}

// AddEdge adds the undirected adjacency h1—h2.
//
// Implementation:
//   - Stage 1: Resolve both handles (ErrNodeNotFound).
//   - Stage 2: Apply loop policy (ErrLoopNotAllowed) and multi-edge policy (ErrMultiEdgeNotAllowed).
//   - Stage 3: Append h2 to h1's list and h1 to h2's list; a self-loop is stored once.
//
// Behavior highlights:
//   - With WithMultiEdges(), a repeated call stores one more entry on each side.
//   - On any error the graph is not modified.
//
// Complexity:
//   - Time O(deg(h1)) for the duplicate check, O(1) amortized otherwise.
func (g *Graph) AddEdge(h1, h2 Handle) error {
	r1, r2 := g.resolve(h1), g.resolve(h2)
	if r1 == nil || r2 == nil {
		return ErrNodeNotFound
	}
	if h1 == h2 && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && containsHandle(r1.adj, h2) {
		return ErrMultiEdgeNotAllowed
	}

	r1.adj = append(r1.adj, h2)
	if h1 != h2 {
		r2.adj = append(r2.adj, h1)
	}

	return nil
}

// RemoveEdge removes every adjacency entry between h1 and h2, on both sides.
// A missing edge is a no-op. Returns ErrNodeNotFound if either handle is not live.
// Complexity: O(deg(h1) + deg(h2)).
func (g *Graph) RemoveEdge(h1, h2 Handle) error {
	r1, r2 := g.resolve(h1), g.resolve(h2)
	if r1 == nil || r2 == nil {
		return ErrNodeNotFound
	}

	r1.adj = dropHandle(r1.adj, h2)
	if h1 != h2 {
		r2.adj = dropHandle(r2.adj, h1)
	}

	return nil
}

// HasEdge reports whether h1 and h2 are live and adjacent.
// Complexity: O(deg(h1)).
func (g *Graph) HasEdge(h1, h2 Handle) bool {
	r1, r2 := g.resolve(h1), g.resolve(h2)
	if r1 == nil || r2 == nil {
		return false
	}

	return containsHandle(r1.adj, h2)
}

// Edges returns every undirected adjacency once. Parallel edges appear once per entry.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	g.eachEdge(func(e Edge) { out = append(out, e) })

	return out
}

// EdgeCount returns the number of undirected adjacencies (see Edges).
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	n := 0
	g.eachEdge(func(Edge) { n++ })

	return n
}

// eachEdge visits each live pair from the side with the lower slot index.
// Entries whose target no longer resolves are skipped.
func (g *Graph) eachEdge(fn func(Edge)) {
	for i := range g.slots {
		r := g.slots[i].node
		if r == nil {
			continue
		}
		self := g.handle(uint32(i))
		for _, nb := range r.adj {
			if g.resolve(nb) == nil || nb.index < self.index {
				continue
			}
			fn(Edge{A: self, B: nb})
		}
	}
}

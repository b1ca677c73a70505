// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Identity:
//   - Clones copy the arena slot-for-slot, generations and Graph identity
//     included, so a Handle issued by the source resolves to the same
//     territory on the clone.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes, but no edges.
// Complexity: O(S) where S is the arena size.
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		id:         g.id,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		slots:      make([]slot, len(g.slots)),
		free:       append([]uint32(nil), g.free...),
		live:       g.live,
	}
	for i, s := range g.slots {
		clone.slots[i].gen = s.gen
		if s.node != nil {
			clone.slots[i].node = &record{name: s.node.name, class: s.node.class}
		}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes and adjacency.
// Stale adjacency entries, if any, are not carried over.
// Complexity: O(S + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for i, s := range g.slots {
		if s.node == nil {
			continue
		}
		adj := make([]Handle, 0, len(s.node.adj))
		for _, nb := range s.node.adj {
			if g.resolve(nb) != nil {
				adj = append(adj, nb)
			}
		}
		clone.slots[i].node.adj = adj
	}

	return clone
}

// Clear removes every node while preserving configuration flags.
// Every Handle issued before Clear becomes stale.
// Complexity: O(S).
func (g *Graph) Clear() {
	for i := range g.slots {
		if g.slots[i].node != nil {
			g.release(uint32(i))
		}
	}
}

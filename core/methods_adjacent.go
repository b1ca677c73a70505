// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree) and adjacency-list helpers.
//
// Determinism:
//   - Neighbors() preserves adjacency insertion order.
//
// Stale references:
//   - An adjacency entry whose target does not resolve is filtered out of
//     every read. It is never returned and never reported as an error.

package core

// Neighbors returns the live neighbors of h in insertion order.
//
// Implementation:
//   - Stage 1: Resolve h (ErrNodeNotFound).
//   - Stage 2: Copy the adjacency list, skipping entries that no longer resolve.
//
// Behavior highlights:
//   - The returned slice is owned by the caller.
//   - A self-loop lists h once; parallel edges list the neighbor once per edge.
//
// Complexity:
//   - Time O(deg(h)), Space O(deg(h)).
func (g *Graph) Neighbors(h Handle) ([]Handle, error) {
	r := g.resolve(h)
	if r == nil {
		return nil, ErrNodeNotFound
	}

	out := make([]Handle, 0, len(r.adj))
	for _, nb := range r.adj {
		if g.resolve(nb) == nil {
			continue
		}
		out = append(out, nb)
	}

	return out, nil
}

// Degree returns the number of live adjacency entries of h.
// Returns ErrNodeNotFound if h is not live.
// Complexity: O(deg(h)).
func (g *Graph) Degree(h Handle) (int, error) {
	r := g.resolve(h)
	if r == nil {
		return 0, ErrNodeNotFound
	}

	d := 0
	for _, nb := range r.adj {
		if g.resolve(nb) != nil {
			d++
		}
	}

	return d, nil
}

// containsHandle reports whether list holds h.
func containsHandle(list []Handle, h Handle) bool {
	for _, x := range list {
		if x == h {
			return true
		}
	}

	return false
}

// dropHandle removes every occurrence of h from list in place and returns
// the shortened slice. Adjacency slices are never shared with callers, so
// reusing the backing array is safe.
func dropHandle(list []Handle, h Handle) []Handle {
	out := list[:0]
	for _, x := range list {
		if x != h {
			out = append(out, x)
		}
	}
	// Clear the tail so dropped handles do not linger in the backing array.
	for i := len(out); i < len(list); i++ {
		list[i] = Handle{}
	}

	return out
}

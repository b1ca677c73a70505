// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (copies restricted to a subset of territories).
//
// Views do NOT mutate the input Graph and keep its Handles valid.

package core

// InducedSubgraph returns a copy of g holding only the nodes for which keep
// returns true, and the edges with both endpoints kept. Handles of kept
// nodes resolve on the result; handles of dropped nodes are stale there.
//
// Complexity: O(S + E) plus the cost of detaching each dropped node.
func InducedSubgraph(g *Graph, keep func(Node) bool) *Graph {
	out := g.Clone()
	for _, n := range out.snapshot() {
		if !keep(n) {
			out.RemoveNode(n.Handle)
		}
	}

	return out
}

// LandView returns the induced subgraph of all Land territories.
func LandView(g *Graph) *Graph {
	return InducedSubgraph(g, func(n Node) bool { return n.Class.IsLand() })
}

// SeaView returns the induced subgraph of all Sea territories.
func SeaView(g *Graph) *Graph {
	return InducedSubgraph(g, func(n Node) bool { return n.Class.IsSea() })
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing policy getters and the Stats snapshot.
// Policy:
//   - No mutation here.
//   - Every exported function documents its complexity.

package core

// GraphStats is a read-only summary of a Graph's policy flags and contents.
type GraphStats struct {
	AllowsLoops bool // WithLoops was given
	AllowsMulti bool // WithMultiEdges was given

	NodeCount int
	EdgeCount int

	SeaCount          int // Sea territories
	LandCount         int // all Land territories, supply centers included
	SupplyCenterCount int // Core and Neutral centers
	NeutralCount      int // Neutral centers only

	// CoresByOwner counts Core supply centers per owning power.
	CoresByOwner map[string]int
}

// Looped reports whether self-loops are permitted by policy.
// If false, AddEdge(h, h) returns ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
// If false, a second AddEdge over the same pair returns ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Stats produces a snapshot of flags, counts and the classification breakdown.
//
// Implementation:
//   - Stage 1: Record policy flags and node count.
//   - Stage 2: Classify every live node once.
//   - Stage 3: Count edges via EdgeCount.
//
// Complexity:
//   - Time O(S + E), Space O(P) for P distinct owners.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		AllowsLoops:  g.allowLoops,
		AllowsMulti:  g.allowMulti,
		NodeCount:    g.live,
		CoresByOwner: make(map[string]int),
	}

	for _, n := range g.snapshot() {
		c := n.Class
		if c.IsSea() {
			stats.SeaCount++
			continue
		}
		stats.LandCount++
		if !c.IsSupplyCenter() {
			continue
		}
		stats.SupplyCenterCount++
		if owner, ok := c.Owner(); ok {
			stats.CoresByOwner[owner]++
		} else {
			stats.NeutralCount++
		}
	}

	stats.EdgeCount = g.EdgeCount()

	return &stats
}

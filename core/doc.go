// Package core provides the territory adjacency graph: an undirected,
// in-memory graph of map territories (Sea, Land, supply centers) and the
// borders between them.
//
// Ownership model:
//
//   - The Graph owns every node. Nodes live in an arena of slots.
//   - Callers and adjacency lists refer to nodes by Handle, a generational
//     index (slot, generation). A Handle is a capability to look a node up
//     through its Graph, never a pointer to the node itself.
//   - A Handle is stamped with its Graph's identity. Clones and views share
//     that identity; any other Graph rejects the Handle as not found.
//   - RemoveNode detaches the node from every neighbor, frees the slot and
//     bumps its generation: old Handles fail the liveness check from then on.
//   - Reads filter any adjacency entry that fails the liveness check, so a
//     stale reference is never returned to a caller.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(h,h) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows repeated AddEdge over the same pair (one entry per call);
//	    otherwise the second AddEdge → ErrMultiEdgeNotAllowed.
//	    RemoveEdge always removes every entry between the pair.
//
// Core Methods:
//
//	// Node lifecycle
//	CreateNode(class Classification, opts ...NodeOption) Handle // O(1)
//	RemoveNode(h Handle) bool                                   // O(V+E), idempotent
//	HasNode(h Handle) bool                                      // O(1)
//
//	// Edge lifecycle
//	AddEdge(h1, h2 Handle) error     // O(deg)
//	RemoveEdge(h1, h2 Handle) error  // O(deg)
//	HasEdge(h1, h2 Handle) bool      // O(deg)
//
//	// Query
//	Node(h) / Name(h) / Class(h)     // O(1)
//	Neighbors(h) ([]Handle, error)   // O(deg), insertion order
//	Nodes() []Handle                 // slot order
//	Edges() []Edge, EdgeCount()      // O(V+E)
//	Lookup(name), Match(glob), Filter(pred)
//	Stats() *GraphStats
//
//	// Copies
//	Clone(), CloneEmpty(), InducedSubgraph(g, keep), LandView(g), SeaView(g)
//
// Errors:
//
//	ErrNodeNotFound        – zero, foreign or stale Handle in a node/edge operation
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrBadPattern          – invalid glob in Match
//
// RemoveNode never returns an error: removing a node that is not there is a no-op.
//
// A Graph is not safe for concurrent use; serialize access externally.
package core

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Handle, Node, Graph, options, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - handle does not refer to a live node.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same pair when multi-edges are disabled.
//	ErrBadPattern          - name pattern failed to compile.
package core

import (
	"errors"
	"strconv"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates a handle that is zero, issued by another Graph, or stale.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadPattern indicates a name pattern passed to Match did not compile.
	ErrBadPattern = errors.New("core: bad name pattern")
)

// Handle identifies one node of one Graph across API calls.
//
// A Handle is a generational index: the slot the node lives in plus the
// generation of that slot at creation time. Removing the node bumps the
// generation, so every Handle issued before the removal stops resolving.
// A Handle also carries the identity of the issuing Graph; it resolves on
// that Graph and on its clones and views, never on an unrelated Graph.
// The zero Handle never resolves.
type Handle struct {
	graph uint32
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

// String renders h as "index@generation" (e.g. "3@1"); useful in test output.
func (h Handle) String() string {
	if h.IsZero() {
		return "nil"
	}
	return strconv.FormatUint(uint64(h.index), 10) + "@" + strconv.FormatUint(uint64(h.gen), 10)
}

// Node is a read-only snapshot of one territory.
type Node struct {
	// Handle identifies the node in its Graph.
	Handle Handle

	// Name is the optional display name ("" when none was given).
	Name string

	// Class is the immutable terrain classification.
	Class Classification
}

// slot is one arena cell. A slot is live iff node != nil.
// gen starts at 1 and is bumped on every release, so a freed slot never
// reissues a Handle equal to one handed out earlier.
type slot struct {
	gen  uint32
	node *record
}

// record is the stored node. adj holds non-owning references: a Handle
// in adj is a relation to a neighbor, resolved through the Graph on use.
type record struct {
	name  string
	class Classification
	adj   []Handle
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (an edge from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// NodeOption configures a node at CreateNode time.
type NodeOption func(r *record)

// WithName sets the display name of a new node.
func WithName(name string) NodeOption {
	return func(r *record) { r.name = name }
}

// Graph is an undirected territory adjacency graph.
//
// The Graph is the sole owner of every node: nodes live in an arena of
// slots and are addressed by Handle. Adjacency lists store Handles, never
// pointers, so a removed node cannot be reached through a neighbor.
//
// Graph is not safe for concurrent use. Callers that share a Graph across
// goroutines must serialize access themselves.
type Graph struct {
	// Identity shared with clones; stamped into every issued Handle.
	id uint32

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	slots []slot   // arena; index = Handle.index
	free  []uint32 // released slot indices, reused LIFO
	live  int      // number of live slots
}

// graphSeq issues Graph identities. 0 is left to the zero Graph.
var graphSeq atomic.Uint32

// NewGraph creates an empty Graph with the given options.
// By default the Graph is simple: no loops, no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{id: graphSeq.Add(1)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

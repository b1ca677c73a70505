// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: Name and predicate lookups over live nodes.
//
// Determinism:
//   - Every result is in ascending slot order, the order of Nodes().

package core

import (
	"fmt"

	"github.com/gobwas/glob"
)

// snapshot returns a Node for every live slot in ascending slot order.
func (g *Graph) snapshot() []Node {
	out := make([]Node, 0, g.live)
	for i := range g.slots {
		r := g.slots[i].node
		if r == nil {
			continue
		}
		out = append(out, Node{
			Handle: g.handle(uint32(i)),
			Name:   r.name,
			Class:  r.class,
		})
	}

	return out
}

// Lookup returns the first live node named name.
// Names are not unique by contract; "first" means lowest slot index.
// Complexity: O(S).
func (g *Graph) Lookup(name string) (Handle, bool) {
	for i := range g.slots {
		r := g.slots[i].node
		if r != nil && r.name == name {
			return g.handle(uint32(i)), true
		}
	}

	return Handle{}, false
}

// Match returns every live node whose name matches the glob pattern
// (gobwas/glob syntax: *, ?, [abc], {a,b}). Unnamed nodes match only
// patterns that accept the empty string.
//
// Returns ErrBadPattern (wrapping the compile error) on an invalid pattern.
// Complexity: O(S · |name|).
func (g *Graph) Match(pattern string) ([]Handle, error) {
	m, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("Match(%q): %w: %w", pattern, ErrBadPattern, err)
	}

	return g.Filter(func(n Node) bool { return m.Match(n.Name) }), nil
}

// Filter returns the handles of live nodes for which pred returns true.
// pred must not mutate g.
// Complexity: O(S) calls to pred.
func (g *Graph) Filter(pred func(Node) bool) []Handle {
	var out []Handle
	for _, n := range g.snapshot() {
		if pred(n) {
			out = append(out, n.Handle)
		}
	}

	return out
}

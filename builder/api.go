// SPDX-License-Identifier: MIT
// Package: territory/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, cons...). Creates g, runs cons in order.
//   - Constructors address territories by name; the Index maps names to Handles.
//   - Determinism: same constructors in the same order ⇒ identical graphs and handles.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/territory/core"
)

// Constructor applies a deterministic graph mutation. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Register every territory they create in idx under its name.
//   - Respect core graph mode flags (loops/multigraph).
type Constructor func(g *core.Graph, idx Index) error

// Index maps territory names to their handles in the graph being built.
type Index map[string]core.Handle

// Names returns the registered names in lexicographic order.
func (idx Index) Names() []string {
	out := make([]string, 0, len(idx))
	for name := range idx {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// resolve looks name up or fails with ErrUnknownTerritory.
func (idx Index) resolve(method, name string) (core.Handle, error) {
	h, ok := idx[name]
	if !ok {
		return core.Handle{}, wrapf(method, fmt.Sprintf("territory %q", name), ErrUnknownTerritory)
	}

	return h, nil
}

// BuildGraph creates a new core.Graph with graph options gopts and applies
// all constructors in order. Any constructor error is wrapped with the
// context "BuildGraph: %w" and returned immediately; no partial cleanup is
// attempted.
//
// Complexity:
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrDuplicateTerritory, ErrUnknownTerritory, ...) or
//     core sentinels (core.ErrMultiEdgeNotAllowed, ...).
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, Index, error) {
	g := core.NewGraph(gopts...)
	idx := make(Index)

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, idx); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, idx, nil
}

// Compose returns a Constructor that applies cons in order.
// A nil entry fails with ErrConstructFailed when the composed constructor runs.
func Compose(cons ...Constructor) Constructor {
	return func(g *core.Graph, idx Index) error {
		for i, fn := range cons {
			if fn == nil {
				return wrapf(methodCompose, fmt.Sprintf("nil constructor at index %d", i), ErrConstructFailed)
			}
			if err := fn(g, idx); err != nil {
				return err
			}
		}

		return nil
	}
}

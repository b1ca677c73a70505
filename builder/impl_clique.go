// SPDX-License-Identifier: MIT
// Package: territory/builder
//
// impl_clique.go — implementation of Clique(names...) constructor.
//
// Contract:
//   • Every name must already be registered (else ErrUnknownTerritory).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Honors core mode flags; a repeated name trips core.ErrLoopNotAllowed.
//
// Complexity:
//   • Time: O(k²) edges for k names.
//
// Determinism:
//   • Pair order is lexicographic by argument position (i,j), i<j.

package builder

import "github.com/katalvlaran/territory/core"

// Clique returns a Constructor that makes the named territories pairwise adjacent.
// Fewer than two names is a no-op.
func Clique(names ...string) Constructor {
	return func(g *core.Graph, idx Index) error {
		// Resolve all names first so an unknown name adds no edges at all.
		for _, name := range names {
			if _, err := idx.resolve(methodClique, name); err != nil {
				return err
			}
		}

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				if err := addBorder(g, idx, methodClique, names[i], names[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

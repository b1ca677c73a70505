// SPDX-License-Identifier: MIT
// Package: territory/builder
//
// impl_territory.go — primitive constructors: Territory, Border, Borders.
//
// Contract:
//   • Territory registers exactly one node under a unique, non-empty name.
//   • Border adds exactly one undirected edge between two registered names.
//   • Core policy errors (loops, multi-edges) are returned wrapped, not masked.

package builder

import (
	"fmt"

	"github.com/katalvlaran/territory/core"
)

// Territory returns a Constructor that creates one named territory.
func Territory(name string, class core.Classification) Constructor {
	return func(g *core.Graph, idx Index) error {
		if name == "" {
			return wrapf(methodTerritory, "name", ErrEmptyName)
		}
		if _, dup := idx[name]; dup {
			return wrapf(methodTerritory, fmt.Sprintf("%q", name), ErrDuplicateTerritory)
		}
		idx[name] = g.CreateNode(class, core.WithName(name))

		return nil
	}
}

// Border returns a Constructor that connects territories a and b.
func Border(a, b string) Constructor {
	return func(g *core.Graph, idx Index) error {
		return addBorder(g, idx, methodBorder, a, b)
	}
}

// Borders returns a Constructor that adds each pair in order.
// It stops at the first failing pair.
func Borders(pairs ...[2]string) Constructor {
	return func(g *core.Graph, idx Index) error {
		for _, p := range pairs {
			if err := addBorder(g, idx, methodBorder, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// addBorder resolves both names and adds the edge, tagging errors with method.
func addBorder(g *core.Graph, idx Index, method, a, b string) error {
	ha, err := idx.resolve(method, a)
	if err != nil {
		return err
	}
	hb, err := idx.resolve(method, b)
	if err != nil {
		return err
	}
	if err = g.AddEdge(ha, hb); err != nil {
		return wrapf(method, fmt.Sprintf("%s—%s", a, b), err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for territory/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (named territories, sample maps).
//   - Keep assertion helpers in one place so failures read the same everywhere.

package core_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/territory/builder"
	"github.com/katalvlaran/territory/core"
)

// Territory names used across core tests, shared with the builder's sample maps.
const (
	Constantinople = builder.Constantinople
	Ankara         = builder.Ankara
	Smyrna         = builder.Smyrna
	Sevastopol     = builder.Sevastopol
	BlackSea       = builder.BlackSea
	EasternMed     = builder.EasternMed
	Armenia        = builder.Armenia
	Syria          = builder.Syria

	PowerTurkey = builder.PowerTurkey
	PowerRussia = builder.PowerRussia
)

// fixture is a graph plus the handles of its named nodes.
type fixture struct {
	g  *core.Graph
	by map[string]core.Handle
}

// h returns the handle of name, failing the test if name is unknown.
func (f *fixture) h(t *testing.T, name string) core.Handle {
	t.Helper()
	h, ok := f.by[name]
	require.True(t, ok, "fixture has no territory %q", name)

	return h
}

// add creates a named node and records its handle.
func (f *fixture) add(name string, class core.Classification) core.Handle {
	h := f.g.CreateNode(class, core.WithName(name))
	f.by[name] = h

	return h
}

// link adds an edge between two named nodes.
func (f *fixture) link(t *testing.T, a, b string) {
	t.Helper()
	require.NoError(t, f.g.AddEdge(f.h(t, a), f.h(t, b)), "AddEdge(%s,%s)", a, b)
}

// newFixture returns an empty fixture over a graph built with opts.
func newFixture(opts ...core.GraphOption) *fixture {
	return &fixture{g: core.NewGraph(opts...), by: make(map[string]core.Handle)}
}

// turkeyFixture builds the 3-node Turkey triangle.
func turkeyFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture()
	f.add(Constantinople, core.CoreCenter(PowerTurkey))
	f.add(Smyrna, core.CoreCenter(PowerTurkey))
	f.add(Ankara, core.CoreCenter(PowerTurkey))

	f.link(t, Constantinople, Ankara)
	f.link(t, Constantinople, Smyrna)
	f.link(t, Ankara, Smyrna)

	return f
}

// regionFixture builds the 8-node Turkey region.
func regionFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture()
	f.add(Constantinople, core.CoreCenter(PowerTurkey))
	f.add(Smyrna, core.CoreCenter(PowerTurkey))
	f.add(Ankara, core.CoreCenter(PowerTurkey))
	f.add(Sevastopol, core.CoreCenter(PowerRussia))
	f.add(BlackSea, core.SeaTerritory())
	f.add(EasternMed, core.SeaTerritory())
	f.add(Armenia, core.LandTerritory())
	f.add(Syria, core.LandTerritory())

	for _, p := range regionBorders {
		f.link(t, p[0], p[1])
	}

	return f
}

// regionBorders is the adjacency list of regionFixture.
var regionBorders = builder.RegionBorders

// neighborNames returns the sorted names of h's neighbors.
func neighborNames(t *testing.T, g *core.Graph, h core.Handle) []string {
	t.Helper()
	nbs, err := g.Neighbors(h)
	require.NoError(t, err, "Neighbors(%v)", h)
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		name, err := g.Name(nb)
		require.NoError(t, err, "Name(%v)", nb)
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// requireSameStrings fails with a cmp diff when want and got differ.
func requireSameStrings(t *testing.T, want, got []string, op string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", op, diff)
	}
}

// requireSymmetric asserts b ∈ N(a) ⇔ a ∈ N(b) for every live pair.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, a := range g.Nodes() {
		nbs, err := g.Neighbors(a)
		require.NoError(t, err)
		for _, b := range nbs {
			require.True(t, g.HasNode(b), "neighbor %v of %v is not live", b, a)
			require.True(t, g.HasEdge(b, a), "edge %v→%v has no mirror", a, b)
		}
	}
}

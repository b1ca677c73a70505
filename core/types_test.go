// SPDX-License-Identifier: MIT
// Package core_test verifies classification values, handle identity and
// the read-side APIs (Stats, lookups, clones, views).

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/territory/core"
)

func TestClassification_Variants(t *testing.T) {
	cases := []struct {
		name    string
		class   core.Classification
		terrain core.Terrain
		sea     bool
		center  bool
		neutral bool
		owner   string
		text    string
	}{
		{"zero value", core.Classification{}, core.Sea, true, false, false, "", "Sea"},
		{"sea", core.SeaTerritory(), core.Sea, true, false, false, "", "Sea"},
		{"normal land", core.LandTerritory(), core.Land, false, false, false, "", "Land/Normal"},
		{"core center", core.CoreCenter(PowerTurkey), core.Land, false, true, false, PowerTurkey, "Land/SupplyCenter/Core(Turkey)"},
		{"neutral center", core.NeutralCenter(), core.Land, false, true, true, "", "Land/SupplyCenter/Neutral"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.class
			assert.Equal(t, tc.terrain, c.Terrain())
			assert.Equal(t, tc.sea, c.IsSea())
			assert.Equal(t, !tc.sea, c.IsLand())
			assert.Equal(t, tc.center, c.IsSupplyCenter())
			assert.Equal(t, tc.neutral, c.IsNeutral())
			owner, ok := c.Owner()
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.owner != "", ok)
			assert.Equal(t, tc.text, c.String())

			lt, isLand := c.LandType()
			assert.Equal(t, c.IsLand(), isLand)
			if tc.center {
				assert.Equal(t, core.SupplyCenter, lt)
			} else {
				assert.Equal(t, core.Normal, lt)
			}
		})
	}
}

func TestClassification_CoreCenterEmptyOwnerPanics(t *testing.T) {
	assert.Panics(t, func() { core.CoreCenter("") })
}

func TestClassification_ImmutableThroughGraph(t *testing.T) {
	g := core.NewGraph()
	h := g.CreateNode(core.CoreCenter(PowerRussia), core.WithName(Sevastopol))

	n, err := g.Node(h)
	require.NoError(t, err)
	n.Class = core.SeaTerritory() // mutating the snapshot
	n.Name = "renamed"

	c := mustClass(t, g, h)
	assert.True(t, c.IsSupplyCenter(), "snapshot edits must not reach the graph")
	name, _ := g.Name(h)
	assert.Equal(t, Sevastopol, name)
}

func TestHandle_String(t *testing.T) {
	g := core.NewGraph()
	h := g.CreateNode(core.SeaTerritory())
	assert.Equal(t, "0@1", h.String())

	g.RemoveNode(h)
	h2 := g.CreateNode(core.SeaTerritory())
	assert.Equal(t, "0@2", h2.String())
}

// QuerySuite exercises the read-side APIs against the Turkey region.
type QuerySuite struct {
	suite.Suite
	f *fixture
}

func (s *QuerySuite) SetupTest() {
	s.f = regionFixture(s.T())
}

func (s *QuerySuite) TestStats() {
	st := s.f.g.Stats()
	s.Equal(8, st.NodeCount)
	s.Equal(len(regionBorders), st.EdgeCount)
	s.Equal(2, st.SeaCount)
	s.Equal(6, st.LandCount)
	s.Equal(4, st.SupplyCenterCount)
	s.Equal(0, st.NeutralCount)
	s.Equal(map[string]int{PowerTurkey: 3, PowerRussia: 1}, st.CoresByOwner)
	s.False(st.AllowsLoops)
	s.False(st.AllowsMulti)
}

func (s *QuerySuite) TestLookup() {
	h, ok := s.f.g.Lookup(Smyrna)
	s.Require().True(ok)
	s.Equal(s.f.h(s.T(), Smyrna), h)

	_, ok = s.f.g.Lookup("Moscow")
	s.False(ok)

	s.f.g.RemoveNode(h)
	_, ok = s.f.g.Lookup(Smyrna)
	s.False(ok, "removed nodes are not found by name")
}

func (s *QuerySuite) TestMatch() {
	hs, err := s.f.g.Match("S*")
	s.Require().NoError(err)
	s.ElementsMatch([]string{Smyrna, Sevastopol, Syria}, s.names(hs))

	hs, err = s.f.g.Match("{Black,Eastern}*")
	s.Require().NoError(err)
	s.ElementsMatch([]string{BlackSea, EasternMed}, s.names(hs))

	_, err = s.f.g.Match("[")
	s.ErrorIs(err, core.ErrBadPattern)
	var wrapped interface{ Unwrap() []error }
	s.Require().True(errors.As(err, &wrapped))
	s.Len(wrapped.Unwrap(), 2, "sentinel and compile error are both wrapped")
}

func (s *QuerySuite) TestFilter() {
	seas := s.f.g.Filter(func(n core.Node) bool { return n.Class.IsSea() })
	s.ElementsMatch([]string{BlackSea, EasternMed}, s.names(seas))

	turkish := s.f.g.Filter(func(n core.Node) bool {
		owner, ok := n.Class.Owner()
		return ok && owner == PowerTurkey
	})
	s.ElementsMatch([]string{Constantinople, Ankara, Smyrna}, s.names(turkish))
}

func (s *QuerySuite) TestCloneKeepsHandles() {
	g := s.f.g
	clone := g.Clone()
	bla := s.f.h(s.T(), BlackSea)

	s.Equal(g.NodeCount(), clone.NodeCount())
	s.Equal(g.EdgeCount(), clone.EdgeCount())
	s.Equal(neighborNames(s.T(), g, bla), neighborNames(s.T(), clone, bla))

	// Mutations on the clone stay on the clone.
	s.True(clone.RemoveNode(bla))
	s.True(g.HasNode(bla))
	s.Equal(len(regionBorders), g.EdgeCount())
	requireSymmetric(s.T(), clone)
}

func (s *QuerySuite) TestCloneEmpty() {
	empty := s.f.g.CloneEmpty()
	s.Equal(8, empty.NodeCount())
	s.Zero(empty.EdgeCount())
	name, err := empty.Name(s.f.h(s.T(), Syria))
	s.Require().NoError(err)
	s.Equal(Syria, name)
}

func (s *QuerySuite) TestClear() {
	g := s.f.g
	old := g.Nodes()
	g.Clear()

	s.Zero(g.NodeCount())
	s.Zero(g.EdgeCount())
	for _, h := range old {
		s.False(g.HasNode(h), "%v must be stale after Clear", h)
	}

	h := g.CreateNode(core.SeaTerritory())
	s.NotContains(old, h, "handles issued after Clear never collide with older ones")
}

func (s *QuerySuite) TestViews() {
	land := core.LandView(s.f.g)
	s.Equal(6, land.NodeCount())
	s.Equal(8, s.f.g.NodeCount(), "views must not mutate the source")
	// Land-only borders: 14 minus the 6 touching a sea.
	s.Equal(len(regionBorders)-6, land.EdgeCount())
	s.Equal([]string{Ankara, Sevastopol, Smyrna, Syria}, neighborNames(s.T(), land, s.f.h(s.T(), Armenia)))
	requireSymmetric(s.T(), land)

	sea := core.SeaView(s.f.g)
	s.Equal(2, sea.NodeCount())
	s.Zero(sea.EdgeCount())
	s.False(sea.HasNode(s.f.h(s.T(), Ankara)))
}

func (s *QuerySuite) names(hs []core.Handle) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		name, err := s.f.g.Name(h)
		s.Require().NoError(err)
		out = append(out, name)
	}

	return out
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}

package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/evopath/creature"
	"github.com/katalvlaran/evopath/lookup"
)

// LookupSuite exercises index construction and relation resolution over a
// small multilingual roster.
type LookupSuite struct {
	suite.Suite
	roster []creature.Record
	idx    lookup.Index
}

func (s *LookupSuite) SetupTest() {
	s.roster = []creature.Record{
		{Slug: "agumon", Name: "亚古兽", NameJA: "アグモン", NameEN: "Agumon"},
		{Slug: "greymon", Name: "暴龙兽", NameJA: "グレイモン", NameEN: "Greymon", Aliases: []string{"Grey mon"}},
		{Slug: "metal-greymon", Name: "机械暴龙兽", NameJA: "メタルグレイモン（ワクチン）", NameEN: "MetalGreymon"},
	}
	s.idx = lookup.Build(s.roster)
}

// TestBuild_AllVariantsBound checks every name variant resolves to its owner.
func (s *LookupSuite) TestBuild_AllVariantsBound() {
	for _, name := range []string{"agumon", "亚古兽", "アグモン", "AGUMON", "  Agumon "} {
		rec, ok := s.idx.Lookup(name)
		require.True(s.T(), ok, "name %q", name)
		require.Equal(s.T(), "agumon", rec.Slug)
	}
	rec, ok := s.idx.Lookup("メタルグレイモン(ワクチン)")
	require.True(s.T(), ok)
	require.Equal(s.T(), "metal-greymon", rec.Slug)

	rec, ok = s.idx.Lookup("grey　mon")
	require.True(s.T(), ok, "alias with ideographic space")
	require.Equal(s.T(), "greymon", rec.Slug)
}

// TestBuild_FirstWriterWins verifies the collision policy across records.
func (s *LookupSuite) TestBuild_FirstWriterWins() {
	roster := []creature.Record{
		{Slug: "first", NameEN: "Shared"},
		{Slug: "second", NameEN: "shared"},
		{Slug: "third", Name: "Shared "},
	}
	idx := lookup.Build(roster)
	rec, ok := idx.Lookup("SHARED")
	require.True(s.T(), ok)
	require.Equal(s.T(), "first", rec.Slug)

	// Later records keep their unshared keys.
	rec, ok = idx.Lookup("second")
	require.True(s.T(), ok)
	require.Equal(s.T(), "second", rec.Slug)
}

// TestBuild_SkipsEmptyCandidates ensures empty names never become keys.
func (s *LookupSuite) TestBuild_SkipsEmptyCandidates() {
	idx := lookup.Build([]creature.Record{{Slug: "solo", Aliases: []string{"", "  "}}})
	require.Len(s.T(), idx, 1)
	_, ok := idx.Lookup("")
	require.False(s.T(), ok)
}

// TestBuild_Deterministic rebuilds the index and compares owners key by key.
func (s *LookupSuite) TestBuild_Deterministic() {
	again := lookup.Build(s.roster)
	require.Equal(s.T(), s.idx.Keys(), again.Keys())
	for _, k := range s.idx.Keys() {
		require.Equal(s.T(), s.idx[k].Slug, again[k].Slug, "key %q", k)
	}
}

func (s *LookupSuite) TestResolveRelations_Empty() {
	require.Empty(s.T(), lookup.ResolveRelations(nil, s.idx))
	require.Empty(s.T(), lookup.ResolveRelations([]string{}, s.idx))
	require.NotNil(s.T(), lookup.ResolveRelations(nil, s.idx))
}

// TestResolveRelations_Mixed resolves known names and keeps unknown raw strings.
func (s *LookupSuite) TestResolveRelations_Mixed() {
	rels := lookup.ResolveRelations([]string{"Greymon", "Unknownmon", "メタルグレイモン（ワクチン）"}, s.idx)
	require.Len(s.T(), rels, 3)

	require.Equal(s.T(), "Greymon", rels[0].Raw)
	require.NotNil(s.T(), rels[0].Match)
	require.Equal(s.T(), "greymon", rels[0].Match.Slug)

	require.Equal(s.T(), "Unknownmon", rels[1].Raw)
	require.Nil(s.T(), rels[1].Match)

	require.Equal(s.T(), "metal-greymon", rels[2].Match.Slug)
	require.Equal(s.T(), []string{"Unknownmon"}, lookup.Unresolved(rels))
}

// TestSuggest covers exact hits, near misses and short inputs.
func (s *LookupSuite) TestSuggest() {
	exact := lookup.Suggest("Agumon", s.idx, 3)
	require.Len(s.T(), exact, 1)
	require.Equal(s.T(), 0, exact[0].Distance)

	near := lookup.Suggest("Greymom", s.idx, 3)
	require.NotEmpty(s.T(), near)
	require.Equal(s.T(), "greymon", near[0].Key)
	require.Equal(s.T(), 1, near[0].Distance)
	for i := 1; i < len(near); i++ {
		require.LessOrEqual(s.T(), near[i-1].Distance, near[i].Distance)
	}

	require.Nil(s.T(), lookup.Suggest("zz", s.idx, 3))
	require.Nil(s.T(), lookup.Suggest("Greymom", s.idx, 0))
	require.Empty(s.T(), lookup.Suggest("completely different", s.idx, 3))
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupSuite))
}

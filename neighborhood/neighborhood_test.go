package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evopath/core"
	"github.com/katalvlaran/evopath/neighborhood"
)

func TestSyntheticID(t *testing.T) {
	cases := [][2]string{
		{"Greymon", "greymon"},
		{"Metal Greymon (Virus)", "metal-greymon-virus"},
		{"  --War__Greymon!! ", "war-greymon"},
		{"メタルグレイモン（ワクチン）", "メタルグレイモン-ワクチン"},
		{"ガルルモン ブラック", "ガルルモン-ブラック"},
		{"ガルルモン・ブラック", "ガルルモン・ブラック"},
		{"暴龙兽", "暴龙兽"},
		{"Étoilemon", "toilemon"},
		{"!!!", ""},
		{"", ""},
		{"a1 b2", "a1-b2"},
		{"ぱたもん", "ぱたもん"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc[1], neighborhood.SyntheticID(tc[0]), "SyntheticID(%q)", tc[0])
	}
}

func TestShouldShowGraph(t *testing.T) {
	assert.False(t, neighborhood.ShouldShowGraph(nil, nil))
	assert.False(t, neighborhood.ShouldShowGraph([]string{}, []string{}))
	assert.True(t, neighborhood.ShouldShowGraph([]string{"X"}, nil))
	assert.True(t, neighborhood.ShouldShowGraph(nil, []string{"Y"}))
}

// TestBuild_Shape checks node order, roles and edge orientation.
func TestBuild_Shape(t *testing.T) {
	center := neighborhood.Center{Slug: "greymon", Name: "Greymon", Stage: "champion", Attribute: "vaccine"}
	g := neighborhood.Build(center, []string{"Agumon"}, []string{"Metal Greymon", "SkullGreymon"})

	require.Equal(t, "greymon", g.CenterSlug)
	require.Len(t, g.Nodes, 4)
	assert.Equal(t, neighborhood.Node{ID: "greymon", Label: "Greymon", Role: neighborhood.RoleCenter, Stage: "champion", Attribute: "vaccine"}, g.Nodes[0])
	assert.Equal(t, neighborhood.Node{ID: "agumon", Label: "Agumon", Role: neighborhood.RolePredecessor}, g.Nodes[1])
	assert.Equal(t, "metal-greymon", g.Nodes[2].ID)
	assert.Equal(t, neighborhood.RoleSuccessor, g.Nodes[3].Role)

	require.Len(t, g.Edges, 3)
	assert.Equal(t, [2]string{"agumon", "greymon"}, [2]string{g.Edges[0].From, g.Edges[0].To})
	assert.Equal(t, [2]string{"greymon", "metal-greymon"}, [2]string{g.Edges[1].From, g.Edges[1].To})
	assert.Equal(t, [2]string{"greymon", "skullgreymon"}, [2]string{g.Edges[2].From, g.Edges[2].To})
	for _, e := range g.Edges {
		assert.Equal(t, core.MethodEvolution, e.Method)
		assert.True(t, e.Conditions.IsEmpty())
		assert.Equal(t, 1.0, e.Confidence)
	}
}

func TestBuild_Empty(t *testing.T) {
	g := neighborhood.Build(neighborhood.Center{Slug: "botamon", Name: "Botamon"}, nil, nil)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "botamon", g.Nodes[0].ID)
	assert.Empty(t, g.Edges)
}

// TestBuild_NoDeduplication keeps colliding synthetic ids as separate nodes.
func TestBuild_NoDeduplication(t *testing.T) {
	g := neighborhood.Build(neighborhood.Center{Slug: "c"}, nil, []string{"Metal Greymon", "metal-greymon"})
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, g.Nodes[1].ID, g.Nodes[2].ID)
	assert.NotEqual(t, g.Nodes[1].Label, g.Nodes[2].Label)
}

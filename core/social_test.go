package core

import (
	"math/rand/v2"
	"testing"

	"github.com/encodeous/kaleido/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func socialGraph(t *testing.T, seed uint64) *TrustGraph {
	t.Helper()
	g := NewTrustGraph()
	_, err := AddPath(g, state.SocialSeedPathLength)
	require.NoError(t, err)
	_, err = GrowSocialNetwork(g, state.SocialGrowNodes, rand.New(rand.NewPCG(seed, seed)))
	require.NoError(t, err)
	return g
}

func connectedFrom(g *TrustGraph, start state.NodeId) map[state.NodeId]struct{} {
	seen := map[state.NodeId]struct{}{start: {}}
	queue := []state.NodeId{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, neigh := range g.NeighboursOf(cur) {
			if _, ok := seen[neigh]; !ok {
				seen[neigh] = struct{}{}
				queue = append(queue, neigh)
			}
		}
	}
	return seen
}

func TestAddPath(t *testing.T) {
	g := NewTrustGraph()
	path, err := AddPath(g, 4)
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, 4, g.Len())
	assert.Len(t, g.Routes(), 3)
	for i := 1; i < len(path); i++ {
		assert.True(t, g.HasRoute(path[i-1].Id(), path[i].Id()))
	}
	assert.False(t, g.HasRoute(path[0].Id(), path[3].Id()))

	empty, err := AddPath(g, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 4, g.Len())
}

func TestGrowSocialNetwork(t *testing.T) {
	g := socialGraph(t, 7)
	assert.Equal(t, state.SocialSeedPathLength+state.SocialGrowNodes, g.Len())
	assert.Len(t, connectedFrom(g, g.AllNodes()[0].Id()), g.Len())

	// path routes, plus between 1 and 2 initial and up to 2 secondary contacts per grown node
	routes := len(g.Routes())
	assert.GreaterOrEqual(t, routes, state.SocialSeedPathLength-1+state.SocialGrowNodes)
	assert.LessOrEqual(t, routes, state.SocialSeedPathLength-1+state.SocialGrowNodes*(2+state.SocialMaxSecondaryContacts))

	for _, n := range g.AllNodes() {
		assert.Equal(t, state.Censored, n.Type())
	}
}

func TestGrowSocialNetwork_Deterministic(t *testing.T) {
	assert.Equal(t, socialGraph(t, 42).Routes(), socialGraph(t, 42).Routes())
}

func TestGrowSocialNetwork_EmptyGraph(t *testing.T) {
	g := NewTrustGraph()
	added, err := GrowSocialNetwork(g, 3, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	assert.Len(t, added, 3)
	// the first node has no one to contact, the rest attach to it
	assert.Len(t, connectedFrom(g, added[0].Id()), 3)
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	pool := []int{1, 2, 3, 4, 5}
	got := pick(pool, 3, rng)
	assert.Len(t, got, 3)
	assert.Subset(t, pool, got)
	assert.ElementsMatch(t, pool, pick(pool, 10, rng))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pool, "pool is not reordered")
}

package core

import (
	"math/rand/v2"
	"slices"

	"github.com/encodeous/kaleido/state"
)

// AddPath appends length fresh nodes to g, each connected to the previous one.
func AddPath(g *TrustGraph, length int) ([]*Node, error) {
	path := make([]*Node, 0, length)
	for i := range length {
		cur := g.AddNode()
		if i > 0 {
			if err := g.AddRoute(path[i-1].id, cur.id); err != nil {
				return nil, err
			}
		}
		path = append(path, cur)
	}
	return path, nil
}

/*
GrowSocialNetwork adds count nodes to g using the growth model of Toivonen et al. (2006),
which produces the clustered, high-degree-assortative structure of social networks.

Every new node:
  - connects to one initial contact (with probability state.SocialSingleContactProb) or two,
    chosen uniformly from the existing nodes,
  - then connects to between 0 and state.SocialMaxSecondaryContacts secondary contacts,
    chosen uniformly from the neighbours of its initial contacts.
*/
func GrowSocialNetwork(g *TrustGraph, count int, rng *rand.Rand) ([]*Node, error) {
	added := make([]*Node, 0, count)
	for range count {
		existing := g.AllNodes()
		n := g.AddNode()
		added = append(added, n)
		if len(existing) == 0 {
			continue
		}

		numInitial := 1
		if rng.Float64() >= state.SocialSingleContactProb {
			numInitial = 2
		}
		initial := pick(existing, numInitial, rng)

		candidates := make([]*Node, 0)
		for _, c := range initial {
			for _, id := range g.NeighboursOf(c.id) {
				cand := g.nodes[id]
				if slices.Contains(initial, cand) || slices.Contains(candidates, cand) {
					continue
				}
				candidates = append(candidates, cand)
			}
		}
		secondary := pick(candidates, rng.IntN(state.SocialMaxSecondaryContacts+1), rng)

		for _, c := range append(initial, secondary...) {
			if err := g.AddRoute(n.id, c.id); err != nil {
				return nil, err
			}
		}
	}
	return added, nil
}

// pick chooses up to k distinct elements of pool uniformly at random.
func pick[T any](pool []T, k int, rng *rand.Rand) []T {
	k = min(k, len(pool))
	shuffled := slices.Clone(pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}

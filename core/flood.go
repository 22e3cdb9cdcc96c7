package core

import (
	"fmt"

	"github.com/encodeous/kaleido/state"
	"github.com/jellydator/ttlcache/v3"
)

type delivery struct {
	To state.NodeId
	Ad state.Advertisement
}

type floodStats struct {
	Deliveries int
	Relays     int
	Suppressed int
	HopCapped  int
	Blocked    int
}

// flood processes first and every relay it causes. Deliveries are taken from a stack with
// neighbours pushed in reverse order, which visits them in exactly the order a recursive
// depth-first relay would, without growing the call stack.
func (g *TrustGraph) flood(first delivery) error {
	stack := []delivery{first}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		relays, err := g.deliver(d)
		if err != nil {
			return err
		}
		for i := len(relays) - 1; i >= 0; i-- {
			stack = append(stack, relays[i])
		}
	}
	return nil
}

// deliver applies the advertisement rule at a single node and returns the relays it produces.
func (g *TrustGraph) deliver(d delivery) ([]delivery, error) {
	at, err := g.GetNode(d.To)
	if err != nil {
		g.observer.Log(CorruptTopology, "advertisement delivered to a missing node", "to", d.To, "ad", d.Ad)
		return nil, fmt.Errorf("deliver %s: %w", d.Ad, err)
	}

	// 1. every receipt is recorded, duplicates included
	at.received = append(at.received, d.Ad)
	g.stats.Deliveries++

	// 2. resolve the node being advertised
	discovered, err := g.GetNode(d.Ad.Payload)
	if err != nil {
		g.observer.Log(CorruptTopology, "advertisement payload cannot be resolved", "at", at.id, "ad", d.Ad)
		return nil, fmt.Errorf("resolve payload of %s at %s: %w", d.Ad, at.id, err)
	}
	g.observer.Log(AdDelivered, "advertisement delivered", "at", at.id, "ad", d.Ad)

	// 3. reach statistics accumulate at the advertised node
	discovered.reached = append(discovered.reached, at.id)

	// 4. adversaries suppress what they discover
	if at.typ == state.Adversary && !discovered.blocked {
		discovered.blocked = true
		g.stats.Blocked++
		g.observer.Log(NodeBlocked, "node blocked by adversary", "node", discovered.id, "adversary", at.id)
	}

	// 5. relay to every neighbour, once per payload per run, or again on a shorter path when hops are capped
	key := relayKey{At: at.id, Payload: d.Ad.Payload}
	if g.alreadyRelayed(key, d.Ad.Hops) {
		g.stats.Suppressed++
		g.observer.Log(RelaySuppressed, "payload already relayed", "at", at.id, "payload", d.Ad.Payload)
		return nil, nil
	}
	g.relayed.Set(key, d.Ad.Hops, ttlcache.DefaultTTL)

	next := d.Ad.Relay()
	if g.maxHops != 0 && next.Hops > g.maxHops {
		g.stats.HopCapped++
		g.observer.Log(HopLimitReached, "hop limit reached", "at", at.id, "ad", d.Ad, "max", g.maxHops)
		return nil, nil
	}

	neighbours := g.NeighboursOf(at.id)
	relays := make([]delivery, 0, len(neighbours))
	for _, neigh := range neighbours {
		relays = append(relays, delivery{To: neigh, Ad: next})
		g.stats.Relays++
		g.observer.Log(AdRelayed, "advertisement relayed", "from", at.id, "to", neigh, "ad", next)
	}
	return relays, nil
}

// alreadyRelayed reports whether key was relayed before. With a hop cap, an arrival with fewer hops than every
// earlier relay is not a duplicate: it can reach nodes the earlier, longer path was capped before.
func (g *TrustGraph) alreadyRelayed(key relayKey, hops uint32) bool {
	item := g.relayed.Get(key)
	if item == nil {
		return false
	}
	if g.maxHops == 0 {
		return true
	}
	return item.Value() <= hops
}

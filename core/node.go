package core

import (
	"maps"
	"slices"

	"github.com/encodeous/kaleido/state"
)

// Node is the state kept at a single graph position. Nodes are owned by a TrustGraph and
// refer to other nodes only by identity.
type Node struct {
	id       state.NodeId
	typ      state.NodeType
	blocked  bool
	received []state.Advertisement // every advertisement delivered this run, duplicates included
	reached  []state.NodeId        // every node that received an advertisement about this node, duplicates included
}

func (n *Node) Id() state.NodeId {
	return n.id
}

func (n *Node) Type() state.NodeType {
	return n.typ
}

// Blocked reports whether an adversary discovered this node during the last run.
func (n *Node) Blocked() bool {
	return n.blocked
}

func (n *Node) Received() []state.Advertisement {
	return slices.Clone(n.received)
}

func (n *Node) ReachedNodesWithDupes() []state.NodeId {
	return slices.Clone(n.reached)
}

// ReachedNodes returns the distinct nodes that learned about this node, in ascending order.
func (n *Node) ReachedNodes() []state.NodeId {
	out := slices.Clone(n.reached)
	slices.Sort(out)
	return slices.Compact(out)
}

// DiscoveredIds returns the distinct payloads this node has received, in ascending order.
func (n *Node) DiscoveredIds() []state.NodeId {
	set := make(map[state.NodeId]struct{}, len(n.received))
	for _, ad := range n.received {
		set[ad.Payload] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// DiscoveredNodes resolves DiscoveredIds through g. Identities that are no longer part of g are skipped.
func (n *Node) DiscoveredNodes(g *TrustGraph) []*Node {
	ids := n.DiscoveredIds()
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if d, ok := g.nodes[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// HasUncensoredRoute reports whether this node knows of an uncensored node that is not blocked.
func (n *Node) HasUncensoredRoute(g *TrustGraph) bool {
	return slices.ContainsFunc(n.DiscoveredNodes(g), func(d *Node) bool {
		return d.typ == state.Uncensored && !d.blocked
	})
}

// HasAdversarialRoute reports whether this node knows of an adversary.
func (n *Node) HasAdversarialRoute(g *TrustGraph) bool {
	return slices.ContainsFunc(n.DiscoveredNodes(g), func(d *Node) bool {
		return d.typ == state.Adversary
	})
}

// Receive delivers ad to this node and floods it through g until every relay has completed.
func (n *Node) Receive(g *TrustGraph, ad state.Advertisement) error {
	return g.flood(delivery{To: n.id, Ad: ad})
}

// AdvertiseSelf starts a flood announcing this node.
func (n *Node) AdvertiseSelf(g *TrustGraph) error {
	return n.Receive(g, state.SelfAdvertisement(n.id))
}

func (n *Node) clear() {
	n.blocked = false
	n.received = nil
	n.reached = nil
}

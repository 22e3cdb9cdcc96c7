package core

import (
	"fmt"
	"strconv"

	"github.com/encodeous/kaleido/state"
)

// Classify derives the display state of n from the last simulation run. It does not modify n.
func Classify(g *TrustGraph, n *Node) state.DisplayState {
	switch n.typ {
	case state.Adversary:
		return state.AdversaryState
	case state.Uncensored:
		if n.blocked {
			return state.Blocked
		}
		return state.Open
	case state.Censored:
		if n.HasAdversarialRoute(g) {
			return state.Exposed
		}
		if n.HasUncensoredRoute(g) {
			return state.Connected
		}
		return state.Isolated
	}
	panic(fmt.Sprintf("classify %s: unexpected node type %s", n.id, n.typ))
}

// Label is the short annotation shown next to a node: unique/total reach for uncensored nodes,
// otherwise the number of discovered nodes, or nothing if none were discovered.
func Label(n *Node) string {
	if n.typ == state.Uncensored {
		return fmt.Sprintf("%d/%d", len(n.ReachedNodes()), len(n.reached))
	}
	if sz := len(n.DiscoveredIds()); sz > 0 {
		return strconv.Itoa(sz)
	}
	return ""
}

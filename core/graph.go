package core

import (
	"fmt"
	"maps"
	"slices"

	"github.com/encodeous/kaleido/state"
	"github.com/jellydator/ttlcache/v3"
)

// relayKey identifies a (receiver, payload) combination relayed in the current run. The cached value is the
// fewest hops the payload had when the receiver relayed it.
type relayKey struct {
	At      state.NodeId
	Payload state.NodeId
}

// TrustGraph owns every Node and the undirected routes between them.
// Access must be done only on a single Goroutine; a simulation run assumes no interleaving writer.
type TrustGraph struct {
	nodes    map[state.NodeId]*Node
	routes   map[state.NodeId]map[state.NodeId]struct{}
	nextId   int
	relayed  *ttlcache.Cache[relayKey, uint32]
	stats    floodStats
	maxHops  uint32
	observer Observer
}

type GraphOption func(g *TrustGraph)

// WithMaxHops drops relays that would carry an advertisement further than hops. 0 disables the cap.
func WithMaxHops(hops uint32) GraphOption {
	return func(g *TrustGraph) {
		g.maxHops = hops
	}
}

func WithObserver(o Observer) GraphOption {
	return func(g *TrustGraph) {
		if o == nil {
			o = nopObserver{}
		}
		g.observer = o
	}
}

func NewTrustGraph(opts ...GraphOption) *TrustGraph {
	g := &TrustGraph{
		nodes:  make(map[state.NodeId]*Node),
		routes: make(map[state.NodeId]map[state.NodeId]struct{}),
		relayed: ttlcache.New[relayKey, uint32](
			ttlcache.WithTTL[relayKey, uint32](ttlcache.NoTTL),
			ttlcache.WithDisableTouchOnHit[relayKey, uint32](),
		),
		maxHops:  state.DefaultMaxHops,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *TrustGraph) MaxHops() uint32 {
	return g.maxHops
}

// AddNode creates a censored node with a fresh identity.
func (g *TrustGraph) AddNode() *Node {
	for {
		id := state.NodeId(fmt.Sprintf("%s%d", state.NodeIdPrefix, g.nextId))
		g.nextId++
		if _, taken := g.nodes[id]; !taken {
			return g.insert(id)
		}
	}
}

// AddNodeWithId creates a censored node with a caller supplied identity.
func (g *TrustGraph) AddNodeWithId(id state.NodeId) (*Node, error) {
	if err := state.NameValidator(string(id)); err != nil {
		return nil, err
	}
	if _, ok := g.nodes[id]; ok {
		return nil, fmt.Errorf("add node %s: %w", id, state.ErrDuplicateNode)
	}
	return g.insert(id), nil
}

func (g *TrustGraph) insert(id state.NodeId) *Node {
	n := &Node{id: id, typ: state.Censored}
	g.nodes[id] = n
	return n
}

// AddRoute connects a and b. Adding a route that already exists does nothing.
func (g *TrustGraph) AddRoute(a, b state.NodeId) error {
	if _, ok := g.nodes[a]; !ok {
		return &state.UnknownNodeError{Op: "AddRoute", Id: a}
	}
	if _, ok := g.nodes[b]; !ok {
		return &state.UnknownNodeError{Op: "AddRoute", Id: b}
	}
	if a == b {
		return fmt.Errorf("add route %s: %w", a, state.ErrSelfRoute)
	}
	g.link(a, b)
	g.link(b, a)
	return nil
}

func (g *TrustGraph) link(from, to state.NodeId) {
	adj, ok := g.routes[from]
	if !ok {
		adj = make(map[state.NodeId]struct{})
		g.routes[from] = adj
	}
	adj[to] = struct{}{}
}

func (g *TrustGraph) GetNode(id state.NodeId) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, &state.UnknownNodeError{Op: "GetNode", Id: id}
	}
	return n, nil
}

// NeighboursOf returns the identities sharing a route with id in ascending order.
func (g *TrustGraph) NeighboursOf(id state.NodeId) []state.NodeId {
	return slices.Sorted(maps.Keys(g.routes[id]))
}

func (g *TrustGraph) HasRoute(a, b state.NodeId) bool {
	_, ok := g.routes[a][b]
	return ok
}

// AllNodes returns every node ordered by identity.
func (g *TrustGraph) AllNodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		out = append(out, g.nodes[id])
	}
	return out
}

func (g *TrustGraph) Len() int {
	return len(g.nodes)
}

// Routes returns each undirected route once, as a sorted pair.
func (g *TrustGraph) Routes() []state.Pair[state.NodeId, state.NodeId] {
	out := make([]state.Pair[state.NodeId, state.NodeId], 0)
	for from, adj := range g.routes {
		for to := range adj {
			if from < to {
				out = append(out, state.Pair[state.NodeId, state.NodeId]{V1: from, V2: to})
			}
		}
	}
	state.SortPairs(out)
	return out
}

func (g *TrustGraph) SetType(id state.NodeId, t state.NodeType) error {
	n, err := g.GetNode(id)
	if err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("set type of %s: invalid type %s", id, t)
	}
	n.typ = t
	return nil
}

// ToggleType advances the node to the next type in the censored -> uncensored -> adversary cycle.
func (g *TrustGraph) ToggleType(id state.NodeId) (state.NodeType, error) {
	n, err := g.GetNode(id)
	if err != nil {
		return state.Censored, err
	}
	n.typ = n.typ.Next()
	return n.typ, nil
}

// ClearNodeInfo resets the per-run state of every node. Types, nodes and routes are kept.
func (g *TrustGraph) ClearNodeInfo() {
	for _, n := range g.nodes {
		n.clear()
	}
	g.relayed.DeleteAll()
	g.stats = floodStats{}
}

// Clear removes all nodes and routes.
func (g *TrustGraph) Clear() {
	g.nodes = make(map[state.NodeId]*Node)
	g.routes = make(map[state.NodeId]map[state.NodeId]struct{})
	g.nextId = 0
	g.relayed.DeleteAll()
	g.stats = floodStats{}
}

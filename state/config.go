package state

import (
	"slices"
)

type NodeCfg struct {
	Id   NodeId
	Type NodeType `yaml:",omitempty"`
}

// TopologyCfg describes a trust graph: the participating nodes, their types, and the routes between them.
type TopologyCfg struct {
	Name    string    `yaml:",omitempty"`
	MaxHops uint32    `yaml:"max_hops,omitempty"` // 0 means the hop count is not capped
	Nodes   []NodeCfg
	Graph   []string
}

func (c *TopologyCfg) GetNodeIds() []NodeId {
	ids := make([]NodeId, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		ids = append(ids, n.Id)
	}
	return ids
}

func (c *TopologyCfg) TryGetNode(id NodeId) *NodeCfg {
	idx := slices.IndexFunc(c.Nodes, func(cfg NodeCfg) bool {
		return cfg.Id == id
	})
	if idx == -1 {
		return nil
	}
	return &c.Nodes[idx]
}

func (c *TopologyCfg) GetRoutes() ([]Pair[NodeId, NodeId], error) {
	return ParseGraph(c.Graph, c.GetNodeIds())
}

// GetPeers returns the nodes that share a route with id, in sorted order.
func (c *TopologyCfg) GetPeers(id NodeId) ([]NodeId, error) {
	routes, err := c.GetRoutes()
	if err != nil {
		return nil, err
	}
	peers := make([]NodeId, 0)
	for _, r := range routes {
		switch id {
		case r.V1:
			peers = append(peers, r.V2)
		case r.V2:
			peers = append(peers, r.V1)
		}
	}
	slices.Sort(peers)
	return peers, nil
}

package core

import (
	"fmt"
	"os"

	"github.com/encodeous/kaleido/state"
	"github.com/goccy/go-yaml"
)

func ReadTopologyConfig(path string) (*state.TopologyCfg, error) {
	var cfg state.TopologyCfg
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func WriteTopologyConfig(path string, cfg *state.TopologyCfg) error {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0600)
}

// LoadTopology builds a trust graph from a validated topology configuration.
func LoadTopology(cfg *state.TopologyCfg, opts ...GraphOption) (*TrustGraph, error) {
	err := state.TopologyConfigValidator(cfg)
	if err != nil {
		return nil, err
	}
	routes := make([]state.Pair[state.NodeId, state.NodeId], 0)
	if len(cfg.Graph) != 0 {
		routes, err = cfg.GetRoutes()
		if err != nil {
			return nil, err
		}
	}

	g := NewTrustGraph(append([]GraphOption{WithMaxHops(cfg.MaxHops)}, opts...)...)
	for _, ncfg := range cfg.Nodes {
		n, err := g.AddNodeWithId(ncfg.Id)
		if err != nil {
			return nil, err
		}
		n.typ = ncfg.Type
	}
	for _, r := range routes {
		if err := g.AddRoute(r.V1, r.V2); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ExportTopology describes g as a topology configuration, one graph line per route.
func ExportTopology(name string, g *TrustGraph) *state.TopologyCfg {
	cfg := &state.TopologyCfg{
		Name:    name,
		MaxHops: g.maxHops,
		Nodes:   make([]state.NodeCfg, 0, g.Len()),
		Graph:   make([]string, 0),
	}
	for _, n := range g.AllNodes() {
		cfg.Nodes = append(cfg.Nodes, state.NodeCfg{Id: n.id, Type: n.typ})
	}
	for _, r := range g.Routes() {
		cfg.Graph = append(cfg.Graph, fmt.Sprintf("%s, %s", r.V1, r.V2))
	}
	return cfg
}

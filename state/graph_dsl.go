package state

import (
	"fmt"
	"slices"
	"strings"
)

func parseSymbolList(s string, validSymbols []string) ([]string, error) {
	line := make([]string, 0)
	for _, sym := range strings.Split(strings.TrimSpace(s), ",") {
		x := strings.TrimSpace(sym)
		if x == "" {
			continue
		}
		if !slices.Contains(validSymbols, x) {
			return nil, fmt.Errorf(`%s is not a valid node/group`, x)
		}
		line = append(line, x)
	}
	if len(line) == 0 {
		return nil, fmt.Errorf(`node/group list must not be empty`)
	}
	slices.Sort(line)
	return line, nil
}

/*
ParseGraph evaluates the topology DSL into a sorted set of undirected routes.

	trusted = a, b, c      // group definition, members may be nodes or other groups
	relays = d, e
	trusted, relays, f     // every listed symbol is connected to every other listed symbol
	trusted, trusted       // a group paired with itself is a clique
	g, h                   // plain route

Routes never connect a node to itself, and each pair appears once.
*/
func ParseGraph(graph []string, nodes []NodeId) ([]Pair[NodeId, NodeId], error) {
	isNode := make(map[string]bool, len(nodes))
	symbols := make([]string, 0, len(nodes))
	for _, n := range nodes {
		isNode[string(n)] = true
		symbols = append(symbols, string(n))
	}

	// pass 0, collect group names so that groups may be referenced before they are defined
	for _, line := range graph {
		line = strings.ToLower(strings.TrimSpace(line))
		if !strings.Contains(line, "=") {
			continue
		}
		spl := strings.Split(line, "=")
		if len(spl) != 2 {
			return nil, fmt.Errorf("invalid graph: %s. group definition must contain one '='", line)
		}
		grp := strings.TrimSpace(spl[0])
		if isNode[grp] {
			return nil, fmt.Errorf("group name must not be a node name: %s", grp)
		}
		symbols = append(symbols, grp)
	}
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)

	members := make(map[string][]string)
	pairings := make([]Pair[string, string], 0)

	// pass 1, parse group definitions and pairings
	for _, line := range graph {
		line = strings.ToLower(strings.TrimSpace(line))
		if grp, def, ok := strings.Cut(line, "="); ok {
			grp = strings.TrimSpace(grp)
			if _, dup := members[grp]; dup {
				return nil, fmt.Errorf("duplicate group name: %s", grp)
			}
			lst, err := parseSymbolList(def, symbols)
			if err != nil {
				return nil, err
			}
			members[grp] = lst
			continue
		}
		names, err := parseSymbolList(line, symbols)
		if err != nil {
			return nil, err
		}
		if len(names) < 2 {
			return nil, fmt.Errorf("invalid pairing, %v", names)
		}
		for i := range names {
			for j := i + 1; j < len(names); j++ {
				pairings = append(pairings, MakeSortedPair(names[i], names[j]))
			}
		}
	}

	expansion, err := expandGroups(members, isNode)
	if err != nil {
		return nil, err
	}

	resolve := func(sym string) []string {
		if isNode[sym] {
			return []string{sym}
		}
		return expansion[sym]
	}

	// pass 2, rewrite pairings in terms of nodes
	routes := make([]Pair[NodeId, NodeId], 0)
	for _, p := range pairings {
		for _, x := range resolve(p.V1) {
			for _, y := range resolve(p.V2) {
				if x != y {
					routes = append(routes, MakeSortedPair(NodeId(x), NodeId(y)))
				}
			}
		}
	}
	SortPairs(routes)
	return slices.Compact(routes), nil
}

// expandGroups resolves every group to the sorted set of nodes it contains, peeling off
// groups whose dependencies are already resolved until none remain.
func expandGroups(members map[string][]string, isNode map[string]bool) (map[string][]string, error) {
	expansion := make(map[string][]string, len(members))
	pending := make(map[string][]string, len(members))
	for grp, lst := range members {
		for _, m := range lst {
			if isNode[m] {
				expansion[grp] = append(expansion[grp], m)
			} else {
				pending[grp] = append(pending[grp], m)
			}
		}
	}

	for len(pending) > 0 {
		progressed := false
		for grp, deps := range pending {
			unresolved := slices.ContainsFunc(deps, func(dep string) bool {
				_, waiting := pending[dep]
				return waiting
			})
			if unresolved {
				continue
			}
			for _, dep := range deps {
				expansion[grp] = append(expansion[grp], expansion[dep]...)
			}
			delete(pending, grp)
			progressed = true
		}
		if !progressed {
			cycle := make([]string, 0, len(pending))
			for grp := range pending {
				cycle = append(cycle, grp)
			}
			slices.Sort(cycle)
			return nil, fmt.Errorf("cycle detected in graph: %v", cycle)
		}
	}

	for grp, lst := range expansion {
		slices.Sort(lst)
		expansion[grp] = slices.Compact(lst)
	}
	return expansion, nil
}

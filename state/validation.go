package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
)

var namePattern = regexp.MustCompile("^[0-9a-z._-]+$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func TopologyConfigValidator(cfg *TopologyCfg) error {
	seen := make(map[NodeId]struct{}, len(cfg.Nodes))
	for _, node := range cfg.Nodes {
		if err := NameValidator(string(node.Id)); err != nil {
			return err
		}
		if !node.Type.Valid() {
			return fmt.Errorf("node %s has invalid type %s", node.Id, node.Type)
		}
		if _, ok := seen[node.Id]; ok {
			return fmt.Errorf("node %s: %w", node.Id, ErrDuplicateNode)
		}
		seen[node.Id] = struct{}{}
	}
	if len(cfg.Graph) == 0 {
		return nil
	}
	if _, err := cfg.GetRoutes(); err != nil {
		return fmt.Errorf("invalid graph: %w", err)
	}
	return nil
}

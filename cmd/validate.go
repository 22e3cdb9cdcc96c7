package cmd

import (
	"fmt"

	"github.com/encodeous/kaleido/core"
	"github.com/encodeous/kaleido/state"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks that the topology config is well formed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := core.ReadTopologyConfig(topologyPath)
		if err != nil {
			return err
		}
		if err := state.TopologyConfigValidator(cfg); err != nil {
			return err
		}
		routes := 0
		if len(cfg.Graph) != 0 {
			r, err := cfg.GetRoutes()
			if err != nil {
				return err
			}
			routes = len(r)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "topology %q is valid: %d nodes, %d routes\n", cfg.Name, len(cfg.Nodes), routes)
		return nil
	},
	GroupID: "topo",
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/encodeous/kaleido/core"
	"github.com/encodeous/kaleido/state"
	"github.com/spf13/cobra"
)

var (
	genSeedPath int
	genGrow     int
	genSeed     uint64
	genName     string
	genMaxHops  uint32
	genOut      string
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generates a social-network-like topology",
	Long: `Builds a path of --path nodes and grows it by --grow nodes using the Toivonen social network model.
All nodes start censored. The result is written as a topology config that sim can load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := core.NewTrustGraph(core.WithMaxHops(genMaxHops))
		rng := rand.New(rand.NewPCG(genSeed, genSeed))

		_, err := core.AddPath(g, genSeedPath)
		if err != nil {
			return err
		}
		_, err = core.GrowSocialNetwork(g, genGrow, rng)
		if err != nil {
			return err
		}

		cfg := core.ExportTopology(genName, g)
		if err := state.TopologyConfigValidator(cfg); err != nil {
			return err
		}
		out := genOut
		if out == "" {
			out = topologyPath
		}
		if err := state.PathValidator(out); err != nil {
			return err
		}
		if err := core.WriteTopologyConfig(out, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d nodes and %d routes to %s\n", g.Len(), len(g.Routes()), out)
		return nil
	},
	GroupID: "topo",
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().IntVar(&genSeedPath, "path", state.SocialSeedPathLength, "length of the initial node path")
	genCmd.Flags().IntVar(&genGrow, "grow", state.SocialGrowNodes, "number of nodes added by social network growth")
	genCmd.Flags().Uint64Var(&genSeed, "seed", 1, "random seed")
	genCmd.Flags().StringVar(&genName, "name", "social", "topology name")
	genCmd.Flags().Uint32Var(&genMaxHops, "max-hops", state.DefaultMaxHops, "hop cap written to the topology, 0 for none")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "output path, defaults to --topology")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/encodeous/kaleido/core"
	"github.com/encodeous/kaleido/perf"
	"github.com/encodeous/kaleido/state"
	"github.com/spf13/cobra"
)

var (
	setTypes  []string
	toggles   []string
	showStats bool
)

// simCmd represents the sim command
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate advertisement propagation over a topology",
	Long: `Floods a self advertisement from every uncensored node of the topology and prints the resulting classification of each node.
Node types can be changed for this run with --set id=type or cycled with --toggle id.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		overrides, err := parseOverrides(setTypes, toggles)
		if err != nil {
			return err
		}
		log, closeLog, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLogger(closeLog, &err)

		g, rep, err := core.Run(topologyPath, overrides, log)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		writeReport(out, g)
		fmt.Fprintf(out, "\n%d origins, %d deliveries, %d relays, %d suppressed, %d hop capped, %d blocked\n",
			len(rep.Origins), rep.Deliveries, rep.Relays, rep.Suppressed, rep.HopCapped, rep.Blocked)
		if showStats {
			for _, line := range perf.Snapshot() {
				fmt.Fprintln(out, line)
			}
		}
		return nil
	},
	GroupID: "sim",
}

func parseOverrides(sets, toggles []string) ([]core.Override, error) {
	overrides := make([]core.Override, 0, len(sets)+len(toggles))
	for _, s := range sets {
		id, typ, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, expected id=type", s)
		}
		t, err := state.ParseNodeType(typ)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, core.Override{Id: state.NodeId(strings.TrimSpace(id)), Type: t})
	}
	for _, id := range toggles {
		overrides = append(overrides, core.Override{Id: state.NodeId(id), Toggle: true})
	}
	return overrides, nil
}

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().StringSliceVarP(&setTypes, "set", "s", nil, "set node types for this run, e.g. a=uncensored")
	simCmd.Flags().StringSliceVar(&toggles, "toggle", nil, "advance node types along censored -> uncensored -> adversary")
	simCmd.Flags().BoolVar(&showStats, "stats", false, "print run metrics")
}

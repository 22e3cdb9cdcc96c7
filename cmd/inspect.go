package cmd

import (
	"fmt"
	"strings"

	"github.com/encodeous/kaleido/core"
	"github.com/encodeous/kaleido/state"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect <node>...",
	Aliases: []string{"i"},
	Short:   "Simulates the topology and shows what each given node discovered and who reached it",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		log, closeLog, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLogger(closeLog, &err)

		g, _, err := core.Run(topologyPath, nil, log)
		if err != nil {
			return err
		}
		sb := strings.Builder{}
		for _, arg := range args {
			n, err := g.GetNode(state.NodeId(arg))
			if err != nil {
				return err
			}
			sb.WriteString(fmt.Sprintf("%s (%s)\n", n.Id(), n.Type()))
			sb.WriteString(fmt.Sprintf("   State: %s\n", core.Classify(g, n)))
			sb.WriteString(fmt.Sprintf("   Blocked: %t\n", n.Blocked()))
			sb.WriteString(fmt.Sprintf("   Neighbours: %s\n", joinIds(g.NeighboursOf(n.Id()))))
			sb.WriteString(fmt.Sprintf("   Discovered: %s\n", joinIds(n.DiscoveredIds())))
			sb.WriteString(fmt.Sprintf("   Reached: %s\n", joinIds(n.ReachedNodes())))
			sb.WriteString(fmt.Sprintf("   Received: %d advertisements\n", len(n.Received())))
		}
		fmt.Fprint(cmd.OutOrStdout(), sb.String())
		return nil
	},
	GroupID: "sim",
}

func joinIds(ids []state.NodeId) string {
	if len(ids) == 0 {
		return "-"
	}
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, string(id))
	}
	return strings.Join(s, ", ")
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

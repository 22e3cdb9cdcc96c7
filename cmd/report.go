package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/encodeous/kaleido/core"
	"github.com/encodeous/kaleido/state"
)

var stateStyles = map[state.DisplayState]lipgloss.Style{
	state.AdversaryState: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	state.Blocked:        lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	state.Open:           lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	state.Exposed:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	state.Connected:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	state.Isolated:       lipgloss.NewStyle().Faint(true),
}

func writeReport(w io.Writer, g *core.TrustGraph) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NODE", "TYPE", "STATE", "BLOCKED", "LABEL", "REACHED", "DUPES", "DISCOVERED")
	for _, n := range g.AllNodes() {
		ds := core.Classify(g, n)
		t.Row(
			string(n.Id()),
			n.Type().String(),
			stateStyles[ds].Render(ds.String()),
			strconv.FormatBool(n.Blocked()),
			core.Label(n),
			strconv.Itoa(len(n.ReachedNodes())),
			strconv.Itoa(len(n.ReachedNodesWithDupes())),
			strconv.Itoa(len(n.DiscoveredIds())),
		)
	}
	fmt.Fprintln(w, t.String())
}

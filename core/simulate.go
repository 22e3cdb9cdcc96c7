package core

import (
	"fmt"
	"time"

	"github.com/encodeous/kaleido/perf"
	"github.com/encodeous/kaleido/state"
)

// Report summarises a simulation run.
type Report struct {
	Origins    []state.NodeId
	Deliveries int
	Relays     int
	Suppressed int
	HopCapped  int
	Blocked    int
	Elapsed    time.Duration
}

// Simulate clears the per-run state of g and floods a self advertisement from every uncensored node,
// in identity order. It returns once the flood has completed.
// An UnknownNodeError means the topology is corrupt and aborts the run.
func Simulate(g *TrustGraph) (Report, error) {
	start := time.Now()
	g.ClearNodeInfo()

	rep := Report{Origins: make([]state.NodeId, 0)}
	for _, n := range g.AllNodes() {
		if n.typ != state.Uncensored {
			continue
		}
		rep.Origins = append(rep.Origins, n.id)
		if err := n.AdvertiseSelf(g); err != nil {
			return rep, fmt.Errorf("simulate: advertise %s: %w", n.id, err)
		}
	}

	rep.Deliveries = g.stats.Deliveries
	rep.Relays = g.stats.Relays
	rep.Suppressed = g.stats.Suppressed
	rep.HopCapped = g.stats.HopCapped
	rep.Blocked = g.stats.Blocked
	rep.Elapsed = time.Since(start)

	perf.SimulationLatency.Add(float64(rep.Elapsed.Microseconds()))
	perf.DeliveriesPerRun.Add(float64(rep.Deliveries))
	perf.SuppressedPerRun.Add(float64(rep.Suppressed))
	perf.Runs.Add(1)
	return rep, nil
}

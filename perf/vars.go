package perf

import (
	"expvar"
	"maps"
	"slices"

	"github.com/encodeous/metric"
)

var (
	SimulationLatency = metric.NewHistogram("1m1s")
	DeliveriesPerRun  = metric.NewHistogram("1m1s")
	SuppressedPerRun  = metric.NewHistogram("1m1s")
	Runs              = metric.NewCounter("1m1s")
)

func init() {
	expvar.Publish("kaleido:SimulationLatency (µs)", SimulationLatency)
	expvar.Publish("kaleido:DeliveriesPerRun", DeliveriesPerRun)
	expvar.Publish("kaleido:SuppressedPerRun", SuppressedPerRun)
	expvar.Publish("kaleido:Runs", Runs)
}

// Snapshot renders every exposed metric, keyed by name in sorted order.
func Snapshot() []string {
	exposed := metric.Exposed()
	out := make([]string, 0, len(exposed))
	for _, name := range slices.Sorted(maps.Keys(exposed)) {
		out = append(out, name+" "+exposed[name].String())
	}
	return out
}

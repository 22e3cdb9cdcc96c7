package core

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/encodeous/kaleido/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

type LogOptions struct {
	Level   slog.Level
	Prefix  string    // shown before every console line
	LogPath string    // if not empty, logs are also appended to this file
	Console io.Writer // defaults to stderr
}

// NewLogger builds the console logger, fanned out to a log file when one is configured.
// The returned closer releases the log file.
func NewLogger(opts LogOptions) (*slog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(console, &tint.Options{
			Level:        opts.Level,
			AddSource:    false,
			CustomPrefix: opts.Prefix,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	closer := func() error { return nil }
	if opts.LogPath != "" {
		err := os.MkdirAll(filepath.Dir(opts.LogPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(opts.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Override changes the type of a node before a run.
type Override struct {
	Id     state.NodeId
	Type   state.NodeType
	Toggle bool // advance along the type cycle instead of setting Type
}

// Run loads the topology at cfgPath, applies the overrides in order, and simulates it.
func Run(cfgPath string, overrides []Override, log *slog.Logger) (*TrustGraph, Report, error) {
	cfg, err := ReadTopologyConfig(cfgPath)
	if err != nil {
		return nil, Report{}, err
	}
	g, err := LoadTopology(cfg, WithObserver(NewSlogObserver(log)))
	if err != nil {
		return nil, Report{}, err
	}
	log.Info("loaded topology", "name", cfg.Name, "nodes", g.Len(), "routes", len(g.Routes()), "max_hops", g.MaxHops())

	for _, o := range overrides {
		if o.Toggle {
			t, err := g.ToggleType(o.Id)
			if err != nil {
				return nil, Report{}, err
			}
			log.Debug("toggled node type", "node", o.Id, "type", t)
			continue
		}
		if err := g.SetType(o.Id, o.Type); err != nil {
			return nil, Report{}, err
		}
		log.Debug("set node type", "node", o.Id, "type", o.Type)
	}

	rep, err := Simulate(g)
	if err != nil {
		log.Error("simulation aborted", "error", err)
		return nil, rep, err
	}
	log.Info("simulation complete",
		"origins", len(rep.Origins),
		"deliveries", rep.Deliveries,
		"relays", rep.Relays,
		"suppressed", rep.Suppressed,
		"hop_capped", rep.HopCapped,
		"blocked", rep.Blocked,
		"elapsed", rep.Elapsed)
	return g, rep, nil
}

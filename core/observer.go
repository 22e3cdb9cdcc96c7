package core

import (
	"context"
	"log/slog"
)

type FloodEvent int

// trace events

const (
	AdDelivered FloodEvent = iota
	AdRelayed
	NodeBlocked
	RelaySuppressed
	HopLimitReached
)

// warn events

const (
	CorruptTopology FloodEvent = iota + 1000
)

func (e FloodEvent) String() string {
	switch e {
	case AdDelivered:
		return "AD_DELIVERED"
	case AdRelayed:
		return "AD_RELAYED"
	case NodeBlocked:
		return "NODE_BLOCKED"
	case RelaySuppressed:
		return "RELAY_SUPPRESSED"
	case HopLimitReached:
		return "HOP_LIMIT_REACHED"
	case CorruptTopology:
		return "CORRUPT_TOPOLOGY"
	}
	return "UNKNOWN"
}

// Observer receives the events a flood produces. It must not mutate the graph.
type Observer interface {
	Log(event FloodEvent, desc string, args ...any)
}

type nopObserver struct{}

func (nopObserver) Log(FloodEvent, string, ...any) {}

// SlogObserver writes trace events at debug level and warn events at warn level.
type SlogObserver struct {
	Logger *slog.Logger
}

func NewSlogObserver(log *slog.Logger) *SlogObserver {
	return &SlogObserver{Logger: log}
}

func (o *SlogObserver) Log(event FloodEvent, desc string, args ...any) {
	level := slog.LevelDebug
	if event >= CorruptTopology {
		level = slog.LevelWarn
	}
	if !o.Logger.Enabled(context.Background(), level) {
		return
	}
	o.Logger.Log(context.Background(), level, desc, append([]any{"event", event.String()}, args...)...)
}

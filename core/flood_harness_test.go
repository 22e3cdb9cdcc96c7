package core

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/encodeous/kaleido/state"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type HarnessEvent struct {
	Message string
	Args    []any
}

func MakeEvent(msg string, args ...any) HarnessEvent {
	return HarnessEvent{
		Message: msg,
		Args:    args,
	}
}

// FloodHarness is an Observer that records every event of a flood
type FloodHarness struct {
	events []HarnessEvent
}

func (h *FloodHarness) Log(event FloodEvent, desc string, args ...any) {
	h.events = append(h.events, MakeEvent(event.String(), args...))
}

type HarnessEvents []HarnessEvent

func (h HarnessEvents) String() string {
	out := make([]string, 0)
	for _, action := range h {
		cur := action.Message
		for _, arg := range action.Args {
			cur += " " + fmt.Sprint(arg)
		}
		out = append(out, cur)
	}
	slices.Sort(out)
	return strings.Join(out, "\n")
}

// GetEvents returns the recorded events whose kind is one of kinds (all events if none are given) and resets the harness
func (h *FloodHarness) GetEvents(kinds ...FloodEvent) HarnessEvents {
	x := make([]HarnessEvent, 0)
	for _, e := range h.events {
		if len(kinds) == 0 || slices.ContainsFunc(kinds, func(k FloodEvent) bool { return k.String() == e.Message }) {
			x = append(x, e)
		}
	}
	h.events = make([]HarnessEvent, 0)
	return x
}

func (e HarnessEvents) contains(msg string, args ...any) bool {
	for _, event := range e {
		if event.Message != msg || len(event.Args) < len(args) {
			continue
		}
		match := true
		for i, arg := range args {
			if !cmp.Equal(event.Args[i], arg) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (e HarnessEvents) AssertContains(t *testing.T, msg string, args ...any) {
	t.Helper()
	if e.contains(msg, args...) {
		return
	}
	t.Fatal("Expected event not found: ", msg, " with args: ", args, " in ", e)
}

func (e HarnessEvents) AssertNotContains(t *testing.T, msg string, args ...any) {
	t.Helper()
	if e.contains(msg, args...) {
		t.Fatal("Unexpected event found: ", msg, " with args: ", args, " in ", e)
	}
}

// MakeGraph builds a graph from "a-b" route strings; every endpoint becomes a censored node
func MakeGraph(t *testing.T, h *FloodHarness, routes ...string) *TrustGraph {
	t.Helper()
	if h == nil {
		h = &FloodHarness{}
	}
	g := NewTrustGraph(WithObserver(h))
	for _, r := range routes {
		a, b, ok := strings.Cut(r, "-")
		require.True(t, ok, "bad route %q", r)
		for _, id := range []string{a, b} {
			if _, err := g.GetNode(state.NodeId(id)); err != nil {
				_, err = g.AddNodeWithId(state.NodeId(id))
				require.NoError(t, err)
			}
		}
		require.NoError(t, g.AddRoute(state.NodeId(a), state.NodeId(b)))
	}
	return g
}

func SetTypes(t *testing.T, g *TrustGraph, types map[state.NodeId]state.NodeType) {
	t.Helper()
	for id, typ := range types {
		require.NoError(t, g.SetType(id, typ))
	}
}

func Ids(s ...string) []state.NodeId {
	out := make([]state.NodeId, 0, len(s))
	for _, x := range s {
		out = append(out, state.NodeId(x))
	}
	return out
}

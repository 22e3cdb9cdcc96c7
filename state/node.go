package state

import (
	"fmt"
	"strings"
)

// NodeId identifies a position in the trust graph.
type NodeId string

type NodeType int

const (
	// Censored nodes cannot reach the outside network on their own. This is the zero value.
	Censored NodeType = iota
	Uncensored
	Adversary
)

var nodeTypeNames = [...]string{
	Censored:   "censored",
	Uncensored: "uncensored",
	Adversary:  "adversary",
}

func (t NodeType) Valid() bool {
	return t >= Censored && t <= Adversary
}

func (t NodeType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

// Next returns the type that follows t in the toggle cycle censored -> uncensored -> adversary -> censored.
func (t NodeType) Next() NodeType {
	switch t {
	case Censored:
		return Uncensored
	case Uncensored:
		return Adversary
	default:
		return Censored
	}
}

func ParseNodeType(s string) (NodeType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Censored, nil
	}
	for t, n := range nodeTypeNames {
		if n == name {
			return NodeType(t), nil
		}
	}
	return Censored, fmt.Errorf("%q is not a valid node type, expected one of %v", s, nodeTypeNames)
}

func (t NodeType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", t)
	}
	return []byte(t.String()), nil
}

func (t *NodeType) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DisplayState is the externally visible classification of a node after a simulation run.
type DisplayState int

const (
	Isolated DisplayState = iota
	Connected
	Exposed
	Open
	Blocked
	AdversaryState
)

func (d DisplayState) String() string {
	switch d {
	case Isolated:
		return "isolated"
	case Connected:
		return "connected"
	case Exposed:
		return "exposed"
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case AdversaryState:
		return "adversary"
	}
	return fmt.Sprintf("DisplayState(%d)", int(d))
}

// Advertisement announces Payload to the network. Origin is the node that started the flood.
type Advertisement struct {
	Origin  NodeId
	Payload NodeId
	Hops    uint32
}

func SelfAdvertisement(id NodeId) Advertisement {
	return Advertisement{
		Origin:  id,
		Payload: id,
	}
}

// Relay returns the advertisement as forwarded one hop further.
func (a Advertisement) Relay() Advertisement {
	a.Hops++
	return a
}

func (a Advertisement) String() string {
	return fmt.Sprintf("(origin: %s, payload: %s, hops: %d)", a.Origin, a.Payload, a.Hops)
}

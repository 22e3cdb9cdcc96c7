package state

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrSelfRoute     = errors.New("route endpoints must differ")
)

// UnknownNodeError is returned when an operation references an identity that is not in the trust graph.
// It indicates a corrupt topology and is never retried.
type UnknownNodeError struct {
	Op string
	Id NodeId
}

func (e *UnknownNodeError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("unknown node %q", e.Id)
	}
	return fmt.Sprintf("%s: unknown node %q", e.Op, e.Id)
}

func (e *UnknownNodeError) Is(target error) bool {
	return target == ErrUnknownNode
}

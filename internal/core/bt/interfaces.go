// Package bt implements a minimal behavior tree engine: a Status
// vocabulary, a node abstraction, Sequence/Selector composites, a small
// decorator set, and the driver loop that ticks a tree until its root
// succeeds.
package bt

import (
	"context"
	"time"
)

// Status represents the execution result of a behavior node tick.
// Success and Failure are terminal for the tick; Running means the same
// node must be ticked again to make further progress.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	case StatusRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// TickContext is the context passed into nodes during Tick.
// Clock is injectable so timing nodes stay testable without real sleeps.
// Delta is the simulated duration covered by this tick.
type TickContext struct {
	Ctx   context.Context
	Clock func() time.Time
	Delta time.Duration
}

// Now returns the current tick time, falling back to the wall clock.
func (t TickContext) Now() time.Time {
	if t.Clock != nil {
		return t.Clock()
	}
	return time.Now()
}

// BehaviorNode is the fundamental interface for behavior tree nodes.
// Tick executes one step of the node and returns a Status. A node that
// returns StatusRunning must keep whatever state it needs to resume on
// the next call; nodes are constructed once and never rebuilt between
// ticks. The error return is diagnostic only: composites fold an
// erroring child into Failure and nothing aborts the driver loop.
type BehaviorNode interface {
	Tick(t TickContext) (Status, error)
	// Name returns a human-readable name for logging and debugging.
	Name() string
}

// Action performs side effects on external state it was configured with
// at construction time and advances one tick's worth of work per call.
type Action interface {
	BehaviorNode
}

// Condition evaluates a side-effect-free predicate over observed state.
// Conditions return Success or Failure only, never Running.
type Condition interface {
	BehaviorNode
}

// Decorator wraps a single child node and changes its behavior.
type Decorator interface {
	BehaviorNode
	SetChild(child BehaviorNode)
}

// Composite manages an ordered set of children. Insertion order is
// evaluation order: it encodes priority for Selector and required order
// for Sequence.
type Composite interface {
	BehaviorNode
	SetChildren(children ...BehaviorNode)
}

// DecisionTree is a wrapper that holds a root node and exposes Tick.
type DecisionTree interface {
	Root() BehaviorNode
	Tick(t TickContext) (Status, error)
}

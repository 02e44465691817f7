// Package agent wires the engine's leaves to a concrete piece of mutable
// world state: a single agent seeking a target position.
package agent

import (
	"github.com/google/uuid"

	"github.com/treemind/treemind/internal/core/bt"
	"github.com/treemind/treemind/internal/core/geo"
)

// Agent owns the external state the tree's leaves read and mutate. The
// position is a shared cell referenced by both the goal condition and
// the movement action; it is never copied into a leaf. All mutation
// happens on the single ticking goroutine, so no locking is needed.
type Agent struct {
	id       uuid.UUID
	name     string
	pos      *geo.Vec2
	scenario Scenario
}

// New validates the scenario and builds an agent at its start position.
func New(name string, s Scenario) (*Agent, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	pos := s.Start
	return &Agent{id: uuid.New(), name: name, pos: &pos, scenario: s}, nil
}

func (a *Agent) ID() uuid.UUID { return a.id }

func (a *Agent) Name() string { return a.name }

// Position returns the current position value.
func (a *Agent) Position() geo.Vec2 { return *a.pos }

// DistanceToTarget returns the remaining distance to the scenario target.
func (a *Agent) DistanceToTarget() float64 {
	return geo.Distance(*a.pos, a.scenario.Target)
}

// SeekTree assembles the fixed tree driving the agent:
//
//	Sequence "seek"
//	├── Selector "reach-target"
//	│   ├── WithinRange  (already close enough?)
//	│   └── MoveToward   (otherwise one step toward the target)
//	└── Wait             (settle once arrived)
//
// Per tick the selector tries the condition first; while it fails, the
// movement action runs and reports Running, which holds the sequence at
// the selector. Only once the selector succeeds does the wait step run,
// and only once the wait elapses does the root report Success.
func (a *Agent) SeekTree() bt.Tree {
	reach := bt.NewSelector("reach-target",
		NewWithinRange("at-target", a.pos, a.scenario.Target, a.scenario.Tolerance),
		NewMoveToward("move", a.pos, a.scenario.Target, a.scenario.Speed),
	)
	root := bt.NewSequence("seek",
		reach,
		NewWait("settle", a.scenario.WaitDuration()),
	)
	return bt.NewTree(root)
}

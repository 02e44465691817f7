package agent

import (
	"errors"
	"time"

	"github.com/treemind/treemind/internal/core/bt"
	"github.com/treemind/treemind/internal/core/geo"
)

// ArriveThreshold is the radius at which MoveToward considers the target
// reached.
const ArriveThreshold = 0.1

var (
	_ bt.Condition = (*WithinRange)(nil)
	_ bt.Action    = (*MoveToward)(nil)
	_ bt.Action    = (*Wait)(nil)
)

// WithinRange is the goal condition: Success when the observed position
// is within tolerance of the target, Failure otherwise, never Running.
// It shares the position cell with MoveToward by reference so both
// leaves observe the same value.

type WithinRange struct {
	name      string
	pos       *geo.Vec2
	target    geo.Vec2
	tolerance float64
}

func NewWithinRange(name string, pos *geo.Vec2, target geo.Vec2, tolerance float64) *WithinRange {
	return &WithinRange{name: name, pos: pos, target: target, tolerance: tolerance}
}

func (c *WithinRange) Name() string { return c.name }

func (c *WithinRange) Tick(_ bt.TickContext) (bt.Status, error) {
	if c.pos == nil {
		return bt.StatusFailure, errors.New("within-range: position cell is nil")
	}
	if geo.Distance(*c.pos, c.target) <= c.tolerance {
		return bt.StatusSuccess, nil
	}
	return bt.StatusFailure, nil
}

// MoveToward advances the shared position by speed*delta toward the
// target each tick: Running while still out of reach, Success on the
// tick it lands within ArriveThreshold. A full step that would overshoot
// snaps to the target instead, so the remaining distance strictly
// decreases and never oscillates.

type MoveToward struct {
	name   string
	pos    *geo.Vec2
	target geo.Vec2
	speed  float64
}

func NewMoveToward(name string, pos *geo.Vec2, target geo.Vec2, speed float64) *MoveToward {
	return &MoveToward{name: name, pos: pos, target: target, speed: speed}
}

func (m *MoveToward) Name() string { return m.name }

func (m *MoveToward) Tick(t bt.TickContext) (bt.Status, error) {
	if m.pos == nil {
		return bt.StatusFailure, errors.New("move-toward: position cell is nil")
	}
	dist := geo.Distance(*m.pos, m.target)
	if dist <= ArriveThreshold {
		return bt.StatusSuccess, nil
	}
	step := m.speed * t.Delta.Seconds()
	if step <= 0 {
		return bt.StatusFailure, errors.New("move-toward: non-positive step, check speed and tick delta")
	}
	if step >= dist {
		*m.pos = m.target
		return bt.StatusSuccess, nil
	}
	*m.pos = geo.Lerp(*m.pos, m.target, step/dist)
	return bt.StatusRunning, nil
}

// Wait succeeds once its duration has elapsed on the tick clock and
// returns Running meanwhile. It never blocks; real-time pacing belongs
// to the driver loop, not to nodes.

type Wait struct {
	name     string
	duration time.Duration
	started  bool
	start    time.Time
}

func NewWait(name string, d time.Duration) *Wait {
	return &Wait{name: name, duration: d}
}

func (w *Wait) Name() string { return w.name }

func (w *Wait) Tick(t bt.TickContext) (bt.Status, error) {
	now := t.Now()
	if !w.started {
		w.start = now
		w.started = true
	}
	if now.Sub(w.start) >= w.duration {
		// re-arm in case an ancestor loops back into the wait
		w.started = false
		return bt.StatusSuccess, nil
	}
	return bt.StatusRunning, nil
}

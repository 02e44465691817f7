package bt

import (
	"errors"
	"time"
)

// Decorator nodes: Inverter, Succeeder, Repeat, Delay

// Inverter flips Success <-> Failure; Running passes through.

type Inverter struct {
	baseNode
	child BehaviorNode
}

func NewInverter(name string, child BehaviorNode) *Inverter {
	return &Inverter{baseNode: baseNode{name: name}, child: child}
}

func (d *Inverter) SetChild(child BehaviorNode) { d.child = child }

func (d *Inverter) Child() BehaviorNode { return d.child }

func (d *Inverter) Tick(t TickContext) (Status, error) {
	if d.child == nil {
		return StatusFailure, errors.New("inverter: child is nil")
	}
	st, err := d.child.Tick(t)
	switch st {
	case StatusSuccess:
		return StatusFailure, err
	case StatusFailure:
		return StatusSuccess, err
	default:
		return st, err
	}
}

// Succeeder always returns Success unless Running; Running passes through.

type Succeeder struct {
	baseNode
	child BehaviorNode
}

func NewSucceeder(name string, child BehaviorNode) *Succeeder {
	return &Succeeder{baseNode: baseNode{name: name}, child: child}
}

func (d *Succeeder) SetChild(child BehaviorNode) { d.child = child }

func (d *Succeeder) Child() BehaviorNode { return d.child }

func (d *Succeeder) Tick(t TickContext) (Status, error) {
	if d.child == nil {
		return StatusSuccess, nil
	}
	st, err := d.child.Tick(t)
	if st == StatusRunning {
		return StatusRunning, err
	}
	return StatusSuccess, err
}

// Repeat re-ticks its child up to Times completed runs within one tick.
// A Running child suspends the loop until the next tick.

type Repeat struct {
	baseNode
	child BehaviorNode
	Times int
	// StopOnFailure stops repeating on failure when true.
	StopOnFailure bool
}

func NewRepeat(name string, times int, stopOnFailure bool, child BehaviorNode) *Repeat {
	return &Repeat{baseNode: baseNode{name: name}, Times: times, StopOnFailure: stopOnFailure, child: child}
}

func (r *Repeat) SetChild(child BehaviorNode) { r.child = child }

func (r *Repeat) Child() BehaviorNode { return r.child }

func (r *Repeat) Tick(t TickContext) (Status, error) {
	if r.child == nil {
		return StatusFailure, errors.New("repeat: child is nil")
	}
	for i := 0; i < r.Times; i++ {
		st, err := r.child.Tick(t)
		if err != nil {
			return StatusFailure, err
		}
		if st == StatusRunning {
			return StatusRunning, nil
		}
		if st == StatusFailure && r.StopOnFailure {
			return StatusFailure, nil
		}
	}
	return StatusSuccess, nil
}

// Delay holds its child back until Duration has elapsed on the tick
// clock, returning Running meanwhile. The start time lives in the node,
// so a Delay instance belongs to exactly one tree.

type Delay struct {
	baseNode
	child    BehaviorNode
	Duration time.Duration
	start    time.Time
	armed    bool
}

func NewDelay(name string, d time.Duration, child BehaviorNode) *Delay {
	return &Delay{baseNode: baseNode{name: name}, Duration: d, child: child}
}

func (d *Delay) SetChild(child BehaviorNode) { d.child = child }

func (d *Delay) Child() BehaviorNode { return d.child }

func (d *Delay) Tick(t TickContext) (Status, error) {
	if d.child == nil {
		return StatusFailure, errors.New("delay: child is nil")
	}
	now := t.Now()
	if !d.armed {
		d.start = now
		d.armed = true
		return StatusRunning, nil
	}
	if now.Sub(d.start) < d.Duration {
		return StatusRunning, nil
	}
	st, err := d.child.Tick(t)
	if st != StatusRunning {
		// re-arm for the next cycle
		d.armed = false
	}
	return st, err
}

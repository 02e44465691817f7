package bt

// Composite nodes: Sequence and Selector.
//
// Both composites are memoryless: every tick re-evaluates strictly from
// the first child, so a child that reported Running last tick is simply
// reached again by the same fold.

// Sequence ticks children in order and returns the first non-Success
// status. Success only if every child succeeds. A Sequence with zero
// children returns Success, the identity of its fold.

type Sequence struct {
	baseNode
	children []BehaviorNode
}

func NewSequence(name string, children ...BehaviorNode) *Sequence {
	return &Sequence{baseNode: baseNode{name: name}, children: children}
}

func (s *Sequence) SetChildren(children ...BehaviorNode) { s.children = children }

func (s *Sequence) Children() []BehaviorNode { return s.children }

func (s *Sequence) Tick(t TickContext) (Status, error) {
	for _, ch := range s.children {
		st, err := ch.Tick(t)
		if err != nil {
			return StatusFailure, err
		}
		if st != StatusSuccess {
			return st, nil
		}
	}
	return StatusSuccess, nil
}

// Selector ticks children in order and returns the first non-Failure
// status. Children are ordered most-preferred first; a Running child is
// retried on every tick before lower-priority siblings are ever given a
// chance. A Selector with zero children returns Failure, the identity
// of its fold.

type Selector struct {
	baseNode
	children []BehaviorNode
}

func NewSelector(name string, children ...BehaviorNode) *Selector {
	return &Selector{baseNode: baseNode{name: name}, children: children}
}

func (s *Selector) SetChildren(children ...BehaviorNode) { s.children = children }

func (s *Selector) Children() []BehaviorNode { return s.children }

func (s *Selector) Tick(t TickContext) (Status, error) {
	var lastErr error
	for _, ch := range s.children {
		st, err := ch.Tick(t)
		if err != nil {
			// an erroring child counts as a failed alternative
			lastErr = err
			continue
		}
		if st != StatusFailure {
			return st, nil
		}
	}
	return StatusFailure, lastErr
}

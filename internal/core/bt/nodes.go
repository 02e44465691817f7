package bt

// Base node and functional wrappers

// baseNode implements common Name storage for nodes

type baseNode struct{ name string }

func (b baseNode) Name() string { return b.name }

// ActionFunc wraps a function as an Action node.

type ActionFunc struct {
	baseNode
	Fn func(t TickContext) (Status, error)
}

// NewAction wraps fn as an Action node.
func NewAction(name string, fn func(t TickContext) (Status, error)) ActionFunc {
	return ActionFunc{baseNode: baseNode{name: name}, Fn: fn}
}

func (a ActionFunc) Tick(t TickContext) (Status, error) { return a.Fn(t) }

// ConditionFunc wraps a predicate as a Condition node. The bool result
// maps onto Success/Failure, so a condition structurally can never
// report Running.

type ConditionFunc struct {
	baseNode
	Fn func(t TickContext) (bool, error)
}

// NewCondition wraps fn as a Condition node.
func NewCondition(name string, fn func(t TickContext) (bool, error)) ConditionFunc {
	return ConditionFunc{baseNode: baseNode{name: name}, Fn: fn}
}

func (c ConditionFunc) Tick(t TickContext) (Status, error) {
	ok, err := c.Fn(t)
	if err != nil {
		return StatusFailure, err
	}
	if ok {
		return StatusSuccess, nil
	}
	return StatusFailure, nil
}

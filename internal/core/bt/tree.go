package bt

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRoot reports a tree constructed without a root node.
	ErrNilRoot = errors.New("bt: tree has nil root")
	// ErrNilChild reports a composite or decorator holding a nil child.
	ErrNilChild = errors.New("bt: nil child node")
)

// Tree is a DecisionTree with a fixed root. A tree is constructed once,
// bottom-up, and then ticked an unbounded number of times; no node is
// restructured during execution.

type Tree struct{ root BehaviorNode }

func NewTree(root BehaviorNode) Tree { return Tree{root: root} }

func (t Tree) Root() BehaviorNode { return t.root }

func (t Tree) Tick(tc TickContext) (Status, error) {
	if t.root == nil {
		return StatusSuccess, nil
	}
	return t.root.Tick(tc)
}

// Validate walks the tree and reports construction mistakes (nil root,
// nil children) up front, instead of deferring them to tick time.
func (t Tree) Validate() error {
	if t.root == nil {
		return ErrNilRoot
	}
	return validateNode(t.root)
}

func validateNode(n BehaviorNode) error {
	switch v := n.(type) {
	case interface{ Children() []BehaviorNode }:
		for i, ch := range v.Children() {
			if ch == nil {
				return fmt.Errorf("%w: child %d of %q", ErrNilChild, i, n.Name())
			}
			if err := validateNode(ch); err != nil {
				return err
			}
		}
	case interface{ Child() BehaviorNode }:
		ch := v.Child()
		if ch == nil {
			return fmt.Errorf("%w: child of %q", ErrNilChild, n.Name())
		}
		return validateNode(ch)
	}
	return nil
}

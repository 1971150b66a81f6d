package tree

import "errors"

// SkipChildren may be returned by an Action to prevent descending into the
// children of the current node. It is not reported as an error.
var SkipChildren = errors.New("skip children")

// Action is a function type to operate on tree nodes during a walk.
// depth is 0 for the start node.
type Action[T comparable] func(n *Node[T], depth int) error

// Walk traverses a (sub-)tree depth first, parents before children, in
// child order. Walking stops at the first error returned by action,
// which is then returned to the caller (SkipChildren excepted).
//
// Walk is synchronous. Nodes are visited on the caller's goroutine and
// children are read once per node, so an action may safely modify the
// children of the node it is called for.
func Walk[T comparable](start *Node[T], action Action[T]) error {
	if start == nil {
		return ErrEmptyTree
	}
	return walk(start, 0, action)
}

func walk[T comparable](n *Node[T], depth int, action Action[T]) error {
	if err := action(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, ch := range n.Children() {
		if err := walk(ch, depth+1, action); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first node in depth-first order, starting at and
// including start, for which predicate holds. It returns nil if no node
// matches.
func Find[T comparable](start *Node[T], predicate func(*Node[T]) bool) *Node[T] {
	var found *Node[T]
	errFound := errors.New("found")
	_ = Walk(start, func(n *Node[T], _ int) error {
		if predicate(n) {
			found = n
			return errFound
		}
		return nil
	})
	return found
}

// ErrEmptyTree is returned if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

package bst

import "cmp"

// Order selects a traversal order for Walk.
type Order int

const (
	InOrder   Order = iota // left, root, right
	PreOrder               // root, left, right
	PostOrder              // left, right, root
	LevelOrder             // breadth-first, top to bottom, left to right
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// Walk calls fn for every value in the given order until fn returns false.
func (t *Tree[T]) Walk(order Order, fn func(v T) bool) {
	switch order {
	case PreOrder:
		preOrder(t.root, fn)
	case PostOrder:
		postOrder(t.root, fn)
	case LevelOrder:
		levelOrder(t.root, fn)
	default:
		inOrder(t.root, fn)
	}
}

// InOrder returns the values in ascending order.
func (t *Tree[T]) InOrder() []T { return t.collect(InOrder) }

// PreOrder returns the values root first; feeding them to FromSlice rebuilds
// the same shape.
func (t *Tree[T]) PreOrder() []T { return t.collect(PreOrder) }

// PostOrder returns the values children first.
func (t *Tree[T]) PostOrder() []T { return t.collect(PostOrder) }

// LevelOrder returns the values level by level.
func (t *Tree[T]) LevelOrder() []T { return t.collect(LevelOrder) }

func (t *Tree[T]) collect(order Order) []T {
	out := make([]T, 0, t.size)
	t.Walk(order, func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// The recursive walkers return false once fn asked to stop.

func inOrder[T cmp.Ordered](n *Node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.Left, fn) && fn(n.Value) && inOrder(n.Right, fn)
}

func preOrder[T cmp.Ordered](n *Node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}

	return fn(n.Value) && preOrder(n.Left, fn) && preOrder(n.Right, fn)
}

func postOrder[T cmp.Ordered](n *Node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}

	return postOrder(n.Left, fn) && postOrder(n.Right, fn) && fn(n.Value)
}

func levelOrder[T cmp.Ordered](root *Node[T], fn func(T) bool) {
	if root == nil {
		return
	}
	queue := []*Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !fn(n.Value) {
			return
		}
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}
}

package bst

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/algonotes/complexity"
)

var (
	// ErrEmptyValues is returned by FromSlice for an empty input.
	ErrEmptyValues = errors.New("bst: list of values must not be empty")

	// ErrEmptyTree is returned by Min and Max on a tree without nodes.
	ErrEmptyTree = errors.New("bst: tree is empty")
)

// Node is a single tree node. Nodes returned by Search and Root belong to the
// tree; treat them as read-only.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// Tree is a binary search tree. The zero value is an empty tree.
type Tree[T cmp.Ordered] struct {
	root    *Node[T]
	size    int
	counter *complexity.Counter
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] { return &Tree[T]{} }

// FromSlice builds a tree by inserting values in order, so values[0] becomes
// the root. Duplicates are skipped.
func FromSlice[T cmp.Ordered](values []T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}

	return t, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Size returns the number of stored values.
func (t *Tree[T]) Size() int { return t.size }

// SetCounter makes Insert and Search count one operation per node compared.
// A nil counter turns counting off.
func (t *Tree[T]) SetCounter(c *complexity.Counter) { t.counter = c }

// Clear removes every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds v and reports whether it was new.
func (t *Tree[T]) Insert(v T) bool {
	link := &t.root
	for *link != nil {
		t.counter.Inc()
		switch c := cmp.Compare(v, (*link).Value); {
		case c < 0:
			link = &(*link).Left
		case c > 0:
			link = &(*link).Right
		default:
			return false
		}
	}
	*link = &Node[T]{Value: v}
	t.size++

	return true
}

// Search returns the node holding v, or nil.
func (t *Tree[T]) Search(v T) *Node[T] {
	n := t.root
	for n != nil {
		t.counter.Inc()
		switch c := cmp.Compare(v, n.Value); {
		case c < 0:
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return n
		}
	}

	return nil
}

// Contains reports whether v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool { return t.Search(v) != nil }

// Delete removes v and reports whether it was present.
func (t *Tree[T]) Delete(v T) bool {
	var removed bool
	t.root, removed = deleteNode(t.root, v)
	if removed {
		t.size--
	}

	return removed
}

// deleteNode removes v from the subtree rooted at n and returns the new subtree root.
func deleteNode[T cmp.Ordered](n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := cmp.Compare(v, n.Value); {
	case c < 0:
		n.Left, removed = deleteNode(n.Left, v)
		return n, removed
	case c > 0:
		n.Right, removed = deleteNode(n.Right, v)
		return n, removed
	}

	switch {
	case n.Left == nil:
		return n.Right, true
	case n.Right == nil:
		return n.Left, true
	}

	succ := n.Right
	for succ.Left != nil {
		succ = succ.Left
	}
	n.Value = succ.Value
	n.Right, _ = deleteNode(n.Right, succ.Value)

	return n, true
}

// Min returns the smallest value (the leftmost node).
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.Left != nil {
		n = n.Left
	}

	return n.Value, nil
}

// Max returns the largest value (the rightmost node).
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, nil
}

// Height returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree, 1 for a single node.
func (t *Tree[T]) Height() int { return height(t.root) }

func height[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.Left), height(n.Right))
}

// IsBalanced reports whether the heights of the two subtrees of every node
// differ by at most one.
func (t *Tree[T]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)

	return ok
}

// balancedHeight returns the subtree height and whether it is balanced, in one pass.
func balancedHeight[T cmp.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balancedHeight(n.Left)
	if !lok {
		return 0, false
	}
	rh, rok := balancedHeight(n.Right)
	if !rok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}

	return 1 + max(lh, rh), true
}

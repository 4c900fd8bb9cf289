package rbtree

import (
	"cmp"
	"errors"
	"fmt"
)

// Invariant violations reported by Validate.
var (
	ErrRedRoot     = errors.New("rbtree: root is red")
	ErrRedRed      = errors.New("rbtree: red node has a red child")
	ErrBlackHeight = errors.New("rbtree: unequal black height")
	ErrOrder       = errors.New("rbtree: search-tree order violated")
	ErrParentLink  = errors.New("rbtree: broken parent link")
	ErrSize        = errors.New("rbtree: node count does not match Len")
)

// View is a read-only handle on a node, for inspecting the tree's shape.
// The zero View (and any View of a NIL leaf) reports IsNil.
type View[T cmp.Ordered] struct {
	n *node[T]
	t *Tree[T]
}

// Root returns a view of the root node.
func (t *Tree[T]) Root() View[T] {
	if t.sentinel == nil {
		return View[T]{}
	}

	return View[T]{n: t.root, t: t}
}

// IsNil reports whether the view points at a NIL leaf.
func (v View[T]) IsNil() bool { return v.t == nil || v.n == v.t.sentinel }

// Value returns the node value; the zero value for NIL.
func (v View[T]) Value() T {
	if v.IsNil() {
		var zero T
		return zero
	}

	return v.n.value
}

// Color returns the node colour; NIL leaves are black.
func (v View[T]) Color() Color {
	if v.IsNil() {
		return Black
	}

	return v.n.color
}

// Left returns the left child view.
func (v View[T]) Left() View[T] {
	if v.IsNil() {
		return v
	}

	return View[T]{n: v.n.left, t: v.t}
}

// Right returns the right child view.
func (v View[T]) Right() View[T] {
	if v.IsNil() {
		return v
	}

	return View[T]{n: v.n.right, t: v.t}
}

// String renders "value(COLOR)" or "NIL".
func (v View[T]) String() string {
	if v.IsNil() {
		return "NIL"
	}

	return fmt.Sprintf("%v(%s)", v.n.value, v.n.color)
}

// InOrder returns the values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	if t.sentinel == nil {
		return out
	}
	// Iterative walk: the height bound keeps the stack at O(log n).
	stack := make([]*node[T], 0, 2*bitLen(t.size))
	n := t.root
	for n != t.sentinel || len(stack) > 0 {
		for n != t.sentinel {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.value)
		n = n.right
	}

	return out
}

// LevelOrder returns the node views breadth-first, which is handy for
// printing the colour layout level by level.
func (t *Tree[T]) LevelOrder() []View[T] {
	out := make([]View[T], 0, t.size)
	if t.size == 0 {
		return out
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, View[T]{n: n, t: t})
		if n.left != t.sentinel {
			queue = append(queue, n.left)
		}
		if n.right != t.sentinel {
			queue = append(queue, n.right)
		}
	}

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t.sentinel == nil {
		return 0
	}

	return t.height(t.root)
}

func (t *Tree[T]) height(n *node[T]) int {
	if n == t.sentinel {
		return 0
	}

	return 1 + max(t.height(n.left), t.height(n.right))
}

// BlackHeight returns the number of black nodes on every path from the root
// down to a NIL leaf, counting the root and not counting the leaf.
// It assumes a valid tree; use Validate to check.
func (t *Tree[T]) BlackHeight() int {
	if t.sentinel == nil {
		return 0
	}
	bh := 0
	for n := t.root; n != t.sentinel; n = n.left {
		if n.color == Black {
			bh++
		}
	}

	return bh
}

// Validate checks every red-black invariant, the search-tree order, parent
// links and the size counter. It returns the first violation found, wrapped
// with the offending value.
//
// Complexity: O(n).
func (t *Tree[T]) Validate() error {
	if t.sentinel == nil {
		return nil
	}
	if t.sentinel.color != Black {
		return fmt.Errorf("%w: NIL leaf is red", ErrRedRed)
	}
	if t.root == t.sentinel {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree, Len %d", ErrSize, t.size)
		}
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: %v", ErrRedRoot, t.root.value)
	}
	if t.root.parent != t.sentinel {
		return fmt.Errorf("%w: root %v has a parent", ErrParentLink, t.root.value)
	}

	count := 0
	if _, err := t.check(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d, Len %d", ErrSize, count, t.size)
	}

	return nil
}

// check validates the subtree at n whose values must lie strictly inside (lo, hi)
// and returns its black height.
func (t *Tree[T]) check(n *node[T], lo, hi *T, count *int) (int, error) {
	if n == t.sentinel {
		return 0, nil
	}
	*count++
	if (lo != nil && !cmp.Less(*lo, n.value)) || (hi != nil && !cmp.Less(n.value, *hi)) {
		return 0, fmt.Errorf("%w: at %v", ErrOrder, n.value)
	}
	for _, child := range []*node[T]{n.left, n.right} {
		if child == t.sentinel {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: child %v of %v", ErrParentLink, child.value, n.value)
		}
		if n.color == Red && child.color == Red {
			return 0, fmt.Errorf("%w: %v → %v", ErrRedRed, n.value, child.value)
		}
	}

	lh, err := t.check(n.left, lo, &n.value, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.right, &n.value, hi, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: at %v (left %d, right %d)", ErrBlackHeight, n.value, lh, rh)
	}
	if n.color == Black {
		lh++
	}

	return lh, nil
}

func bitLen(n int) int {
	l := 1
	for n > 0 {
		l++
		n >>= 1
	}

	return l
}

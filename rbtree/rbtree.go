package rbtree

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/algonotes/complexity"
)

// ErrEmptyTree is returned by Min and Max on a tree without nodes.
var ErrEmptyTree = errors.New("rbtree: tree is empty")

// Color is the colour of a node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "RED"
	}

	return "BLACK"
}

type node[T cmp.Ordered] struct {
	value               T
	color               Color
	parent, left, right *node[T]
}

// Tree is a red-black tree of unique values.
type Tree[T cmp.Ordered] struct {
	sentinel *node[T] // shared black NIL leaf; never holds a value
	root     *node[T]
	size     int
	counter  *complexity.Counter
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	t := &Tree[T]{}
	t.lazyInit()

	return t
}

func (t *Tree[T]) lazyInit() {
	if t.sentinel != nil {
		return
	}
	s := &node[T]{color: Black}
	s.parent, s.left, s.right = s, s, s
	t.sentinel = s
	t.root = s
}

// SetCounter makes Insert, Contains and Delete count one operation per node compared.
// Rotations and recolouring are not counted. A nil counter turns counting off.
func (t *Tree[T]) SetCounter(c *complexity.Counter) { t.counter = c }

// Len returns the number of stored values.
func (t *Tree[T]) Len() int { return t.size }

// Contains reports whether v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool { return t.find(v) != nil }

// find returns the node holding v, or nil (never the sentinel).
func (t *Tree[T]) find(v T) *node[T] {
	if t.sentinel == nil {
		return nil
	}
	n := t.root
	for n != t.sentinel {
		t.counter.Inc()
		switch c := cmp.Compare(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// Insert adds v and reports whether it was new. Duplicates are ignored.
func (t *Tree[T]) Insert(v T) bool {
	t.lazyInit()

	parent := t.sentinel
	cur := t.root
	for cur != t.sentinel {
		parent = cur
		t.counter.Inc()
		switch c := cmp.Compare(v, cur.value); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return false
		}
	}

	z := &node[T]{value: v, color: Red, parent: parent, left: t.sentinel, right: t.sentinel}
	switch {
	case parent == t.sentinel:
		t.root = z
	case cmp.Less(v, parent.value):
		parent.left = z
	default:
		parent.right = z
	}
	t.insertFixup(z)
	t.size++

	return true
}

// insertFixup restores invariants 2 and 4 after z was attached as a red leaf.
func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.color == Red {
		gp := z.parent.parent
		if z.parent == gp.left {
			uncle := gp.right
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateRight(z.parent.parent)
		} else {
			uncle := gp.left
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = Black
}

// Delete removes v and reports whether it was present.
func (t *Tree[T]) Delete(v T) bool {
	z := t.find(v)
	if z == nil {
		return false
	}

	y := z
	removedColor := y.color
	var x *node[T]
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y // x may be the sentinel; fix-up walks up from it
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if removedColor == Black {
		t.deleteFixup(x)
	}
	t.size--
	t.resetSentinel()

	return true
}

// deleteFixup pushes the extra black carried by x up the tree or absorbs it by rotation.
func (t *Tree[T]) deleteFixup(x *node[T]) {
	for x != t.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.right.color == Black {
				w.left.color = Black
				w.color = Red
				t.rotateRight(w)
				w = x.parent.right
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.right.color = Black
			t.rotateLeft(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == Black && w.left.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.left.color == Black {
				w.right.color = Black
				w.color = Red
				t.rotateLeft(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.left.color = Black
			t.rotateRight(x.parent)
			x = t.root
		}
	}
	x.color = Black
}

// resetSentinel undoes the temporary parent link Delete may set on the sentinel.
func (t *Tree[T]) resetSentinel() {
	s := t.sentinel
	s.parent, s.left, s.right = s, s, s
	s.color = Black
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[T]) minimum(n *node[T]) *node[T] {
	for n.left != t.sentinel {
		n = n.left
	}

	return n
}

func (t *Tree[T]) maximum(n *node[T]) *node[T] {
	for n.right != t.sentinel {
		n = n.right
	}

	return n
}

// rotateLeft turns x's right child y into x's parent:
//
//	  x             y
//	 / \           / \
//	a   y    →    x   c
//	   / \       / \
//	  b   c     a   b
func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right
	if y == t.sentinel {
		return
	}
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[T]) rotateRight(x *node[T]) {
	y := x.left
	if y == t.sentinel {
		return
	}
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// Min returns the smallest value.
func (t *Tree[T]) Min() (T, error) {
	if t.size == 0 {
		var zero T
		return zero, ErrEmptyTree
	}

	return t.minimum(t.root).value, nil
}

// Max returns the largest value.
func (t *Tree[T]) Max() (T, error) {
	if t.size == 0 {
		var zero T
		return zero, ErrEmptyTree
	}

	return t.maximum(t.root).value, nil
}

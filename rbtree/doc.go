// Package rbtree implements a red-black tree: a binary search tree that keeps
// itself balanced by colouring nodes and restoring five invariants after every
// insertion and deletion.
//
// Invariants
//
//  1. Every node is either red or black.
//  2. The root is black.
//  3. Every NIL leaf is black.
//  4. A red node has only black children.
//  5. Every path from a node down to its NIL leaves crosses the same number
//     of black nodes.
//
// Together they bound the height by 2·log2(n+1), so Insert, Delete and
// Contains are O(log n) in the worst case, unlike package bst whose height
// can reach n.
//
// Implementation
//
//	Each tree owns one black sentinel node that stands in for every NIL leaf
//	(and for the root's parent during fix-ups). Comparing against the sentinel
//	replaces nil checks inside the rotation and fix-up code. Insert and Delete
//	follow the classic fix-up cases:
//
//	  insert, uncle red:         recolour parent, uncle and grandparent, move up.
//	  insert, uncle black, bent: rotate the parent to straighten the path.
//	  insert, uncle black, line: recolour and rotate the grandparent.
//	  delete, sibling red:       rotate so the sibling becomes black.
//	  delete, sibling's children black: recolour sibling, move the extra black up.
//	  delete, far nephew black:  rotate the sibling to make the far nephew red.
//	  delete, far nephew red:    rotate the parent and recolour; done.
//
// Validate checks all five invariants plus ordering and parent links; the
// tests run it after every mutation.
//
// A Tree is not safe for concurrent mutation. The zero value is an empty tree
// ready to use.
package rbtree

// Package bst implements an unbalanced binary search tree over cmp.Ordered values.
//
// What
//
//   - Core:      Insert, Search, Contains, Delete.
//   - Traversal: InOrder (left → root → right), PreOrder (root → left → right),
//     PostOrder (left → right → root), LevelOrder (breadth-first), Walk.
//   - Helpers:   Min, Max, Height, IsBalanced, Size, FromSlice.
//
// Every node satisfies: all values in Left are smaller than Value, all values
// in Right are larger. Duplicates are ignored on insert, so InOrder always
// yields a strictly increasing sequence.
//
// Delete follows the three textbook cases:
//
//  1. Leaf: the node is unlinked.
//  2. One child: the child takes the node's place.
//  3. Two children: the node takes the value of its in-order successor (the
//     leftmost node of its right subtree), and the successor is removed from
//     the right subtree.
//
// Complexity (h = height, between log2(n+1) and n):
//
//	Insert, Search, Contains, Delete, Min, Max   O(h)
//	traversals, Height, IsBalanced               O(n)
//	Size                                         O(1)
//
// Inserting already-sorted input degenerates the tree into a linked list
// (h = n); see package rbtree for a self-balancing alternative.
//
// A Tree is not safe for concurrent mutation.
package bst

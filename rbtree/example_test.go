package rbtree_test

import (
	"fmt"

	"github.com/katalvlaran/algonotes/rbtree"
)

// ExampleTree_Insert shows the colours after the recolouring case fires on 5.
func ExampleTree_Insert() {
	tr := rbtree.New[int]()
	for _, v := range []int{20, 10, 25, 5, 15, 30} {
		tr.Insert(v)
	}
	root := tr.Root()
	fmt.Println("Root:", root)
	fmt.Println("Root Left:", root.Left())
	fmt.Println("Root Right:", root.Right())
	fmt.Println("Left Child of Root Left:", root.Left().Left())
	// Output:
	// Root: 20(BLACK)
	// Root Left: 10(BLACK)
	// Root Right: 25(BLACK)
	// Left Child of Root Left: 5(RED)
}

// ExampleTree_Delete removes the root and shows the tree stays valid.
func ExampleTree_Delete() {
	tr := rbtree.New[int]()
	for v := 1; v <= 7; v++ {
		tr.Insert(v)
	}
	tr.Delete(tr.Root().Value())
	fmt.Println(tr.InOrder(), tr.Validate() == nil)
	// Output:
	// [1 3 4 5 6 7] true
}

package bst_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/algonotes/bst"
)

func TestTreeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("inorder is the sorted set of inserted values", prop.ForAll(
		func(values []int) bool {
			tr := bst.New[int]()
			for _, v := range values {
				tr.Insert(v)
			}
			want := slices.Compact(slices.Sorted(slices.Values(values)))
			return slices.Equal(tr.InOrder(), want) && tr.Size() == len(want)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.Property("delete removes exactly one value", prop.ForAll(
		func(values []int, victim int) bool {
			tr := bst.New[int]()
			for _, v := range values {
				tr.Insert(v)
			}
			had := tr.Contains(victim)
			before := tr.Size()
			removed := tr.Delete(victim)
			after := tr.InOrder()

			if removed != had || tr.Contains(victim) {
				return false
			}
			if had && tr.Size() != before-1 {
				return false
			}
			return slices.IsSorted(after)
		},
		gen.SliceOf(gen.IntRange(-30, 30)),
		gen.IntRange(-30, 30),
	))

	properties.Property("height is bounded by size", prop.ForAll(
		func(values []int) bool {
			tr := bst.New[int]()
			for _, v := range values {
				tr.Insert(v)
			}
			h := tr.Height()
			return h <= tr.Size() && (tr.Size() == 0) == (h == 0)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.TestingRun(t)
}

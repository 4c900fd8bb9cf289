package sorting_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/sorting"
)

func inputs() map[string][]int {
	rng := rand.New(rand.NewSource(7))
	random := make([]int, 200)
	for i := range random {
		random[i] = rng.Intn(1000) - 500
	}
	ascending := make([]int, 100)
	descending := make([]int, 100)
	for i := range ascending {
		ascending[i] = i
		descending[i] = 100 - i
	}

	return map[string][]int{
		"nil":        nil,
		"single":     {42},
		"pair":       {2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3, 0, 0, 2},
		"ascending":  ascending,
		"descending": descending,
		"random":     random,
		"all-equal":  {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	}
}

func TestSorts(t *testing.T) {
	for _, name := range sorting.Algorithms() {
		fn, err := sorting.ByName(name)
		require.NoError(t, err)
		for label, in := range inputs() {
			got := slices.Clone(in)
			fn(got)

			want := slices.Clone(in)
			slices.Sort(want)
			assert.Equal(t, want, got, "%s on %s", name, label)
			assert.True(t, sorting.IsSorted(got))
		}
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := sorting.ByName("bogo")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.Equal(t, []string{"bubble", "heap", "insertion", "merge", "quick", "selection"}, sorting.Algorithms())
}

func TestGenericElementTypes(t *testing.T) {
	words := []string{"pear", "apple", "fig", "banana"}
	sorting.Merge(words)
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, words)

	type celsius float64
	temps := []celsius{21.5, -3, 0, 12.25}
	sorting.Heap(temps)
	assert.Equal(t, []celsius{-3, 0, 12.25, 21.5}, temps)
}

// TestComparisonCounts pins the exact counts that make the textbook bounds concrete.
func TestComparisonCounts(t *testing.T) {
	const n = 64
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}

	var c complexity.Counter

	// Bubble and insertion sort need a single pass on sorted input: n-1 comparisons.
	sorting.Bubble(slices.Clone(sorted), sorting.WithCounter(&c))
	assert.EqualValues(t, n-1, c.Reset())
	sorting.Insertion(slices.Clone(sorted), sorting.WithCounter(&c))
	assert.EqualValues(t, n-1, c.Reset())

	// Selection sort is input-independent: n(n-1)/2.
	sorting.Selection(slices.Clone(sorted), sorting.WithCounter(&c))
	assert.EqualValues(t, n*(n-1)/2, c.Reset())

	// Reverse input is the worst case for insertion sort: n(n-1)/2.
	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)
	sorting.Insertion(reversed, sorting.WithCounter(&c))
	assert.EqualValues(t, n*(n-1)/2, c.Reset())

	// Merge sort on sorted input only checks each boundary once.
	sorting.Merge(slices.Clone(sorted), sorting.WithCounter(&c))
	assert.EqualValues(t, n-1, c.Reset())
}

// TestStability uses signed zeros: -0.0 and +0.0 compare equal but are
// distinguishable, so a stable sort must keep their input order.
func TestStability(t *testing.T) {
	negZero := math.Copysign(0, -1)
	in := []float64{1, 0, negZero, -1, negZero, 0, 2, 0, negZero}
	wantSigns := []bool{false, true, true, false, false, true} // sign bits of the zeros, in input order

	for _, name := range []string{"merge", "insertion", "bubble"} {
		got := slices.Clone(in)
		switch name {
		case "merge":
			sorting.Merge(got)
		case "insertion":
			sorting.Insertion(got)
		case "bubble":
			sorting.Bubble(got)
		}
		var signs []bool
		for _, v := range got {
			if v == 0 {
				signs = append(signs, math.Signbit(v))
			}
		}
		assert.Equal(t, wantSigns, signs, "%s lost stability", name)
	}
}

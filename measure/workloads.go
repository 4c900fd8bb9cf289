package measure

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/algonotes/bfs"
	"github.com/katalvlaran/algonotes/bst"
	"github.com/katalvlaran/algonotes/builder"
	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/core"
	"github.com/katalvlaran/algonotes/dfs"
	"github.com/katalvlaran/algonotes/mst"
	"github.com/katalvlaran/algonotes/rbtree"
	"github.com/katalvlaran/algonotes/search"
	"github.com/katalvlaran/algonotes/sorting"
	"github.com/katalvlaran/algonotes/tsp"
)

// ErrUnknownWorkload is returned by Lookup for unregistered names.
var ErrUnknownWorkload = errors.New("measure: unknown workload")

// Workload is one algorithm run whose operation count should grow like Expected.
type Workload struct {
	// Name is the registry key, e.g. "sort/merge".
	Name string

	// Catalog names the complexity catalog row the workload exercises.
	Catalog string

	// Expected is the class the counts should fit for this input shape.
	Expected complexity.Class

	// Description is a one-line summary for listings.
	Description string

	// Sizes, when set, replaces the sizes passed to Run. Exponential and
	// factorial workloads pin small inputs here.
	Sizes []int

	// Run executes the algorithm at size n, counting into c.
	Run func(ctx context.Context, n int, c *complexity.Counter) error
}

// binaryLookups is the number of lookups per search/binary run; summing them
// smooths out the ±1 jitter of a single lookup.
const binaryLookups = 64

var sortCatalog = map[string]string{
	"bubble":    "bubble-sort",
	"heap":      "heapsort",
	"insertion": "insertion-sort",
	"merge":     "mergesort",
	"quick":     "quicksort",
	"selection": "selection-sort",
}

var sortExpected = map[string]complexity.Class{
	"bubble":    complexity.Quadratic,
	"heap":      complexity.Linearithmic,
	"insertion": complexity.Quadratic,
	"merge":     complexity.Linearithmic,
	"quick":     complexity.Linearithmic,
	"selection": complexity.Quadratic,
}

var registry = buildRegistry()

func buildRegistry() map[string]Workload {
	r := make(map[string]Workload)
	add := func(w Workload) { r[w.Name] = w }

	for _, name := range sorting.Algorithms() {
		fn, _ := sorting.ByName(name)
		add(Workload{
			Name:        "sort/" + name,
			Catalog:     sortCatalog[name],
			Expected:    sortExpected[name],
			Description: name + " sort on a random permutation",
			Run: func(_ context.Context, n int, c *complexity.Counter) error {
				s := permutation(n)
				fn(s, sorting.WithCounter(c))
				if !sorting.IsSorted(s) {
					return fmt.Errorf("measure: %s sort left the input unsorted", name)
				}
				return nil
			},
		})
	}

	add(Workload{
		Name:        "search/linear",
		Catalog:     "linear-search",
		Expected:    complexity.Linear,
		Description: "linear search for an absent key",
		Run: func(_ context.Context, n int, c *complexity.Counter) error {
			if i := search.Linear(permutation(n), -1, search.WithCounter(c)); i != -1 {
				return fmt.Errorf("measure: linear search found absent key at %d", i)
			}
			return nil
		},
	})
	add(Workload{
		Name:        "search/binary",
		Catalog:     "binary-search",
		Expected:    complexity.Logarithmic,
		Description: "binary search lookups over a sorted slice",
		Run: func(_ context.Context, n int, c *complexity.Counter) error {
			s := make([]int, n)
			for i := range s {
				s[i] = 2 * i
			}
			rng := newRand(n)
			for range binaryLookups {
				x := 2 * rng.IntN(n)
				if i, ok := search.Binary(s, x, search.WithCounter(c)); !ok || s[i] != x {
					return fmt.Errorf("measure: binary search missed %d", x)
				}
			}
			return nil
		},
	})

	add(treeWorkload("bst/insert", "binary-search-tree", complexity.Linearithmic, false, insertBST))
	add(treeWorkload("bst/insert-sorted", "binary-search-tree", complexity.Quadratic, true, insertBST))
	add(treeWorkload("rbtree/insert", "red-black-tree", complexity.Linearithmic, false, insertRB))
	add(treeWorkload("rbtree/insert-sorted", "red-black-tree", complexity.Linearithmic, true, insertRB))

	add(Workload{
		Name:        "bfs/grid",
		Catalog:     "breadth-first-search",
		Expected:    complexity.Linear,
		Description: "breadth-first search over a grid of n vertices",
		Run: func(ctx context.Context, n int, c *complexity.Counter) error {
			g, err := grid(n)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, cell(0), bfs.WithContext(ctx), bfs.WithCounter(c))
			if err != nil {
				return err
			}
			if len(res.Order) != n {
				return fmt.Errorf("measure: bfs reached %d of %d vertices", len(res.Order), n)
			}
			return nil
		},
	})
	add(Workload{
		Name:        "dfs/grid",
		Catalog:     "depth-first-search",
		Expected:    complexity.Linear,
		Description: "depth-first search over a grid of n vertices",
		Run: func(ctx context.Context, n int, c *complexity.Counter) error {
			g, err := grid(n)
			if err != nil {
				return err
			}
			res, err := dfs.DFS(g, cell(0), dfs.WithContext(ctx), dfs.WithCounter(c))
			if err != nil {
				return err
			}
			if len(res.Order) != n {
				return fmt.Errorf("measure: dfs reached %d of %d vertices", len(res.Order), n)
			}
			return nil
		},
	})
	add(Workload{
		Name:        "mst/kruskal",
		Catalog:     "kruskal",
		Expected:    complexity.Linearithmic,
		Description: "Kruskal's spanning tree of a randomly weighted grid of n vertices",
		Run: func(ctx context.Context, n int, c *complexity.Counter) error {
			g, err := weightedGrid(n)
			if err != nil {
				return err
			}
			edges, _, err := mst.Kruskal(g, mst.WithContext(ctx), mst.WithCounter(c))
			if err != nil {
				return err
			}
			if len(edges) != n-1 {
				return fmt.Errorf("measure: spanning tree has %d of %d edges", len(edges), n-1)
			}
			return nil
		},
	})
	add(Workload{
		Name:        "tsp/held-karp",
		Catalog:     "held-karp",
		Expected:    complexity.Exponential,
		Description: "Held-Karp tour of n random points in the plane",
		Sizes:       []int{4, 6, 8, 10, 12},
		Run: func(ctx context.Context, n int, c *complexity.Counter) error {
			res, err := tsp.HeldKarp(plane(n), tsp.WithContext(ctx), tsp.WithCounter(c))
			if err != nil {
				return err
			}
			if len(res.Tour) != n+1 {
				return fmt.Errorf("measure: held-karp tour visits %d of %d cities", len(res.Tour)-1, n)
			}
			return nil
		},
	})
	add(Workload{
		Name:        "tsp/brute-force",
		Catalog:     "brute-force-tsp",
		Expected:    complexity.Factorial,
		Description: "every tour of n random points in the plane",
		Sizes:       []int{4, 5, 6, 7, 8, 9},
		Run: func(ctx context.Context, n int, c *complexity.Counter) error {
			dist := plane(n)
			res, err := tsp.BruteForce(dist, tsp.WithContext(ctx), tsp.WithCounter(c))
			if err != nil {
				return err
			}
			exact, err := tsp.HeldKarp(dist, tsp.WithContext(ctx))
			if err != nil {
				return err
			}
			if math.Abs(res.Cost-exact.Cost) > 1e-9 {
				return fmt.Errorf("measure: brute force cost %v, held-karp %v", res.Cost, exact.Cost)
			}
			return nil
		},
	})

	return r
}

func treeWorkload(name, catalog string, expected complexity.Class, sorted bool,
	insert func(values []int, c *complexity.Counter) int) Workload {
	order := "a random permutation"
	if sorted {
		order = "ascending keys"
	}

	return Workload{
		Name:        name,
		Catalog:     catalog,
		Expected:    expected,
		Description: "insert " + order,
		Run: func(_ context.Context, n int, c *complexity.Counter) error {
			values := permutation(n)
			if sorted {
				slices.Sort(values)
			}
			if size := insert(values, c); size != n {
				return fmt.Errorf("measure: %s holds %d of %d values", name, size, n)
			}
			return nil
		},
	}
}

func insertBST(values []int, c *complexity.Counter) int {
	t := bst.New[int]()
	t.SetCounter(c)
	for _, v := range values {
		t.Insert(v)
	}

	return t.Size()
}

func insertRB(values []int, c *complexity.Counter) int {
	t := rbtree.New[int]()
	t.SetCounter(c)
	for _, v := range values {
		t.Insert(v)
	}

	return t.Len()
}

// Workloads returns all registered workloads ordered by name.
func Workloads() []Workload {
	out := make([]Workload, 0, len(registry))
	for _, w := range registry {
		out = append(out, w)
	}
	slices.SortFunc(out, func(a, b Workload) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// Lookup returns the workload registered under name.
func Lookup(name string) (Workload, error) {
	w, ok := registry[name]
	if !ok {
		return Workload{}, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
	}

	return w, nil
}

func newRand(n int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(n), 0x9e3779b97f4a7c15))
}

// permutation returns a shuffle of 0..n-1 that depends only on n.
func permutation(n int) []int {
	return newRand(n).Perm(n)
}

func cell(i int) string { return "c" + strconv.Itoa(i) }

// grid lays n vertices out row by row in rows of width ⌊√n⌋ and links each
// vertex to its right and lower neighbor. The last row may be short.
func grid(n int) (*core.Graph, error) {
	return builder.BuildGraph(nil, []builder.Option{builder.WithIDScheme(cell)}, lattice(n))
}

// weightedGrid is grid with weights in [1, 100] seeded by n.
func weightedGrid(n int) (*core.Graph, error) {
	return builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.Option{builder.WithIDScheme(cell), builder.WithSeed(uint64(n)), builder.WithWeightRange(1, 100)},
		lattice(n))
}

// plane scatters n points over a 100×100 square, seeded by n, and returns
// their Euclidean distance matrix.
func plane(n int) [][]float64 {
	rng := newRand(n)
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range n {
		xs[i], ys[i] = 100*rng.Float64(), 100*rng.Float64()
	}
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
		}
	}

	return dist
}

func lattice(n int) builder.Constructor {
	return builder.Lattice(n, max(1, int(math.Sqrt(float64(n)))))
}

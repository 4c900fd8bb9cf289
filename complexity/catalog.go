package complexity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEntry indicates a catalog lookup for a name that is not listed.
var ErrUnknownEntry = errors.New("complexity: unknown catalog entry")

// Kind groups catalog entries the way the reference tables do.
type Kind int

const (
	DataStructure Kind = iota
	Sorting
	Searching
	Graph
)

func (k Kind) String() string {
	switch k {
	case DataStructure:
		return "data-structure"
	case Sorting:
		return "sorting"
	case Searching:
		return "searching"
	case Graph:
		return "graph"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{DataStructure, Sorting, Searching, Graph} {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}

	return DataStructure, fmt.Errorf("complexity: unknown kind %q", s)
}

// Operation is the time cost of one operation in the best, average and worst case.
type Operation struct {
	Name    string `yaml:"name"`
	Best    Class  `yaml:"best"`
	Average Class  `yaml:"average"`
	Worst   Class  `yaml:"worst"`
}

// Entry is one row of a reference table.
type Entry struct {
	Name       string      `yaml:"name"`
	Kind       Kind        `yaml:"kind"`
	Package    string      `yaml:"package,omitempty"` // implementing package in this module, if any
	Operations []Operation `yaml:"operations"`
	Space      Class       `yaml:"space"` // worst-case auxiliary space
	Note       string      `yaml:"note,omitempty"`
}

// Op returns the named operation of e.
func (e Entry) Op(name string) (Operation, bool) {
	for _, op := range e.Operations {
		if op.Name == name {
			return op, true
		}
	}

	return Operation{}, false
}

// structure builds a data-structure row from the cheat-sheet layout:
// average access/search/insert/delete, then worst access/search/insert/delete.
func structure(name, pkg string, avg, worst [4]Class, space Class) Entry {
	names := [4]string{"access", "search", "insertion", "deletion"}
	ops := make([]Operation, 0, 4)
	for i, n := range names {
		ops = append(ops, Operation{Name: n, Best: NotApplicable, Average: avg[i], Worst: worst[i]})
	}

	return Entry{Name: name, Kind: DataStructure, Package: pkg, Operations: ops, Space: space}
}

func algorithm(name string, kind Kind, pkg string, best, avg, worst, space Class) Entry {
	op := "sort"
	if kind != Sorting {
		op = "run"
	}

	return Entry{
		Name:       name,
		Kind:       kind,
		Package:    pkg,
		Operations: []Operation{{Name: op, Best: best, Average: avg, Worst: worst}},
		Space:      space,
	}
}

const na = NotApplicable

// catalog mirrors the data-structure and array-sorting cheat sheets referenced by the notes.
var catalog = []Entry{
	structure("array", "", [4]Class{Constant, Linear, Linear, Linear}, [4]Class{Constant, Linear, Linear, Linear}, Linear),
	structure("stack", "", [4]Class{Linear, Linear, Constant, Constant}, [4]Class{Linear, Linear, Constant, Constant}, Linear),
	structure("queue", "", [4]Class{Linear, Linear, Constant, Constant}, [4]Class{Linear, Linear, Constant, Constant}, Linear),
	structure("singly-linked-list", "", [4]Class{Linear, Linear, Constant, Constant}, [4]Class{Linear, Linear, Constant, Constant}, Linear),
	structure("doubly-linked-list", "", [4]Class{Linear, Linear, Constant, Constant}, [4]Class{Linear, Linear, Constant, Constant}, Linear),
	structure("skip-list", "", [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, [4]Class{Linear, Linear, Linear, Linear}, Linearithmic),
	structure("hash-table", "", [4]Class{na, Constant, Constant, Constant}, [4]Class{na, Linear, Linear, Linear}, Linear),
	structure("binary-search-tree", "bst", [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, [4]Class{Linear, Linear, Linear, Linear}, Linear),
	structure("b-tree", "", [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, Linear),
	structure("red-black-tree", "rbtree", [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, Linear),
	structure("splay-tree", "", [4]Class{na, Logarithmic, Logarithmic, Logarithmic}, [4]Class{na, Logarithmic, Logarithmic, Logarithmic}, Linear),
	structure("avl-tree", "", [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, [4]Class{Logarithmic, Logarithmic, Logarithmic, Logarithmic}, Linear),

	algorithm("quicksort", Sorting, "sorting", Linearithmic, Linearithmic, Quadratic, Logarithmic),
	algorithm("mergesort", Sorting, "sorting", Linearithmic, Linearithmic, Linearithmic, Linear),
	algorithm("timsort", Sorting, "", Linear, Linearithmic, Linearithmic, Linear),
	algorithm("heapsort", Sorting, "sorting", Linearithmic, Linearithmic, Linearithmic, Constant),
	algorithm("bubble-sort", Sorting, "sorting", Linear, Quadratic, Quadratic, Constant),
	algorithm("insertion-sort", Sorting, "sorting", Linear, Quadratic, Quadratic, Constant),
	algorithm("selection-sort", Sorting, "sorting", Quadratic, Quadratic, Quadratic, Constant),
	algorithm("tree-sort", Sorting, "", Linearithmic, Linearithmic, Quadratic, Linear),
	algorithm("cubesort", Sorting, "", Linear, Linearithmic, Linearithmic, Linear),

	algorithm("linear-search", Searching, "search", Constant, Linear, Linear, Constant),
	algorithm("binary-search", Searching, "search", Constant, Logarithmic, Logarithmic, Constant),

	withNote(algorithm("breadth-first-search", Graph, "bfs", Linear, Linear, Linear, Linear), "n = V + E"),
	withNote(algorithm("depth-first-search", Graph, "dfs", Linear, Linear, Linear, Linear), "n = V + E"),
	withNote(algorithm("topological-sort", Graph, "dfs", Linear, Linear, Linear, Linear), "n = V + E"),
	withNote(algorithm("dijkstra", Graph, "dijkstra", Linearithmic, Linearithmic, Linearithmic, Linear), "O((V + E) log V) with a binary heap"),
	withNote(algorithm("kruskal", Graph, "mst", Linearithmic, Linearithmic, Linearithmic, Linear), "n = E; the edge sort dominates"),
	withNote(algorithm("prim", Graph, "mst", Linearithmic, Linearithmic, Linearithmic, Linear), "O(E log V) with a binary heap"),
	withNote(algorithm("held-karp", Graph, "tsp", Exponential, Exponential, Exponential, Exponential), "O(n^2 2^n) time, O(n 2^n) space"),
	withNote(algorithm("brute-force-tsp", Graph, "tsp", Factorial, Factorial, Factorial, Linear), "tries all (n-1)! tours"),
}

func withNote(e Entry, note string) Entry {
	e.Note = note

	return e
}

// Entries returns a copy of the catalog ordered by kind, then name.
func Entries() []Entry {
	out := make([]Entry, len(catalog))
	for i, e := range catalog {
		out[i] = e
		out[i].Operations = append([]Operation(nil), e.Operations...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// EntriesOf returns the catalog rows of one kind, ordered by name.
func EntriesOf(k Kind) []Entry {
	all := Entries()
	out := all[:0]
	for _, e := range all {
		if e.Kind == k {
			out = append(out, e)
		}
	}

	return out
}

// Lookup finds a catalog entry by name (case-insensitive).
func Lookup(name string) (Entry, error) {
	for _, e := range Entries() {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
}

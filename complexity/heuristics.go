package complexity

import "fmt"

// Compare orders two classes by growth: -1 if a grows slower than b, 0 if equal, +1 otherwise.
func Compare(a, b Class) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Dominant returns the fastest-growing class among cs, which is what remains
// of a sum of terms once non-dominant terms are dropped. Dominant() is Constant.
//
// Example: O(n^2 + n + 1) → Dominant(Quadratic, Linear, Constant) = O(n^2).
func Dominant(cs ...Class) Class {
	out := Constant
	for _, c := range cs {
		if c > out {
			out = c
		}
	}

	return out
}

// Sequence is the cost of running a then b: the dominant of the two.
func Sequence(a, b Class) Class { return Dominant(a, b) }

// exponents describes a class as n^p · (log n)^q for the polynomial part of the lattice.
type exponents struct{ p, q int }

var polyForm = map[Class]exponents{
	Constant:     {0, 0},
	Logarithmic:  {0, 1},
	Linear:       {1, 0},
	Linearithmic: {1, 1},
	Quadratic:    {2, 0},
	Cubic:        {3, 0},
}

// Nest returns the class of a loop running outer iterations whose body costs inner.
// The product must land back in the class set, otherwise ErrNoClosedForm is returned:
// O(n)·O(log n) = O(n log n) is representable, O(n log n)·O(log n) is not.
func Nest(outer, inner Class) (Class, error) {
	if outer == Constant {
		return inner, nil
	}
	if inner == Constant {
		return outer, nil
	}
	a, okA := polyForm[outer]
	b, okB := polyForm[inner]
	if !okA || !okB {
		return Constant, fmt.Errorf("%w: %s · %s", ErrNoClosedForm, outer, inner)
	}
	want := exponents{a.p + b.p, a.q + b.q}
	for c, e := range polyForm {
		if e == want {
			return c, nil
		}
	}

	return Constant, fmt.Errorf("%w: %s · %s", ErrNoClosedForm, outer, inner)
}

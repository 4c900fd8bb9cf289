package complexity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for class parsing and combination.
var (
	// ErrUnknownClass indicates a notation string that names no Class.
	ErrUnknownClass = errors.New("complexity: unknown class")

	// ErrNoClosedForm indicates that combining two classes leaves the closed set.
	ErrNoClosedForm = errors.New("complexity: product has no closed form in the class set")
)

// Class is an asymptotic growth class, ordered from slowest to fastest growth.
type Class int

// NotApplicable marks a cost the reference tables leave blank, such as indexed
// access on a hash table. It is not part of Classes.
const NotApplicable Class = -1

const (
	Constant     Class = iota // O(1)
	Logarithmic               // O(log n)
	Linear                    // O(n)
	Linearithmic              // O(n log n)
	Quadratic                 // O(n^2)
	Cubic                     // O(n^3)
	Exponential               // O(2^n)
	Factorial                 // O(n!)
)

// Classes lists every Class in ascending growth order.
func Classes() []Class {
	return []Class{Constant, Logarithmic, Linear, Linearithmic, Quadratic, Cubic, Exponential, Factorial}
}

var classNotation = [...]string{
	Constant:     "O(1)",
	Logarithmic:  "O(log n)",
	Linear:       "O(n)",
	Linearithmic: "O(n log n)",
	Quadratic:    "O(n^2)",
	Cubic:        "O(n^3)",
	Exponential:  "O(2^n)",
	Factorial:    "O(n!)",
}

var className = [...]string{
	Constant:     "constant",
	Logarithmic:  "logarithmic",
	Linear:       "linear",
	Linearithmic: "linearithmic",
	Quadratic:    "quadratic",
	Cubic:        "cubic",
	Exponential:  "exponential",
	Factorial:    "factorial",
}

// Valid reports whether c is one of the declared classes.
func (c Class) Valid() bool { return c >= Constant && c <= Factorial }

// String returns the Big O notation of c, e.g. "O(n log n)".
func (c Class) String() string {
	if c == NotApplicable {
		return "N/A"
	}
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}

	return classNotation[c]
}

// Name returns the English name of c, e.g. "linearithmic".
func (c Class) Name() string {
	if c == NotApplicable {
		return "n/a"
	}
	if !c.Valid() {
		return "unknown"
	}

	return className[c]
}

// MarshalText implements encoding.TextMarshaler so classes serialize as notation.
func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() && c != NotApplicable {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClass, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseClass.
func (c *Class) UnmarshalText(b []byte) error {
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseClass accepts Big O notation ("O(n log n)", "o(N^2)", "O(n²)") or a
// class name ("quadratic"). Whitespace and case are ignored. "N/A" parses to
// NotApplicable.
func ParseClass(s string) (Class, error) {
	key := normalizeNotation(s)
	if key == "n/a" || key == "-" {
		return NotApplicable, nil
	}
	for _, c := range Classes() {
		if key == normalizeNotation(classNotation[c]) || key == className[c] {
			return c, nil
		}
	}
	// Accept the bare argument form too: "n log n", "1", "n!".
	for _, c := range Classes() {
		if "o("+key+")" == normalizeNotation(classNotation[c]) {
			return c, nil
		}
	}

	return Constant, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

var notationReplacer = strings.NewReplacer(
	"²", "^2", "³", "^3",
	"**", "^",
	"lgn", "logn", "log2n", "logn", "log(n)", "logn",
)

func normalizeNotation(s string) string {
	return notationReplacer.Replace(strings.ToLower(strings.Join(strings.Fields(s), "")))
}

// Growth evaluates f(n) for the class with logarithms in base 2.
// Inputs below 1 are clamped to 1; very large results saturate at +Inf.
func (c Class) Growth(n int) float64 {
	x := float64(n)
	if x < 1 {
		x = 1
	}
	switch c {
	case Constant:
		return 1
	case Logarithmic:
		return math.Max(1, math.Log2(x))
	case Linear:
		return x
	case Linearithmic:
		return x * math.Max(1, math.Log2(x))
	case Quadratic:
		return x * x
	case Cubic:
		return x * x * x
	case Exponential:
		return math.Exp2(x)
	case Factorial:
		return math.Gamma(x + 1)
	default:
		return math.NaN()
	}
}

// LogGrowth returns ln f(n). Unlike Growth it stays finite for Exponential and
// Factorial at any size, which is what Fit needs.
func (c Class) LogGrowth(n int) float64 {
	x := float64(n)
	if x < 1 {
		x = 1
	}
	log2 := math.Max(1, math.Log2(x))
	switch c {
	case Constant:
		return 0
	case Logarithmic:
		return math.Log(log2)
	case Linear:
		return math.Log(x)
	case Linearithmic:
		return math.Log(x) + math.Log(log2)
	case Quadratic:
		return 2 * math.Log(x)
	case Cubic:
		return 3 * math.Log(x)
	case Exponential:
		return x * math.Ln2
	case Factorial:
		lg, _ := math.Lgamma(x + 1)
		return lg
	default:
		return math.NaN()
	}
}

// Rating is the colour band used by the Big-O cheat sheet.
type Rating int

const (
	Excellent Rating = iota
	Good
	Fair
	Bad
	Horrible
	Unrated
)

func (r Rating) String() string {
	switch r {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	case Bad:
		return "bad"
	case Horrible:
		return "horrible"
	case Unrated:
		return "n/a"
	default:
		return "unknown"
	}
}

// Rating places c on the cheat-sheet scale.
func (c Class) Rating() Rating {
	switch c {
	case NotApplicable:
		return Unrated
	case Constant, Logarithmic:
		return Excellent
	case Linear:
		return Good
	case Linearithmic:
		return Fair
	case Quadratic:
		return Bad
	default:
		return Horrible
	}
}

package complexity

// Answer is a three-valued fact: some properties of NP are open problems.
type Answer int

const (
	No Answer = iota
	Yes
	Unknown
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Answer) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// ProblemClass is a class of decision problems.
type ProblemClass int

const (
	P ProblemClass = iota
	NP
	NPComplete
	NPHard
)

func (p ProblemClass) String() string {
	switch p {
	case P:
		return "P"
	case NP:
		return "NP"
	case NPComplete:
		return "NP-Complete"
	case NPHard:
		return "NP-Hard"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ProblemClass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// ProblemFacts describes one decision-problem class.
type ProblemFacts struct {
	Class ProblemClass `yaml:"class"`

	Description string `yaml:"description"`

	// SolvableInPolyTime is Unknown for NP and NP-Complete: answering it is P vs NP.
	SolvableInPolyTime Answer `yaml:"solvable_in_poly_time"`

	VerifiableInPolyTime Answer `yaml:"verifiable_in_poly_time"`

	// InNP is Unknown for NP-Hard in general: some NP-Hard problems are not decision problems at all.
	InNP Answer `yaml:"in_np"`

	Examples []string `yaml:"examples"`
}

var problemFacts = map[ProblemClass]ProblemFacts{
	P: {
		Class:                P,
		Description:          "decision problems solvable by a deterministic machine in polynomial time",
		SolvableInPolyTime:   Yes,
		VerifiableInPolyTime: Yes,
		InNP:                 Yes,
		Examples:             []string{"sorting", "shortest path", "primality testing", "2-SAT"},
	},
	NP: {
		Class:                NP,
		Description:          "decision problems whose yes-instances can be verified in polynomial time",
		SolvableInPolyTime:   Unknown,
		VerifiableInPolyTime: Yes,
		InNP:                 Yes,
		Examples:             []string{"integer factorization", "graph isomorphism", "SAT"},
	},
	NPComplete: {
		Class:                NPComplete,
		Description:          "problems in NP to which every NP problem reduces in polynomial time",
		SolvableInPolyTime:   Unknown,
		VerifiableInPolyTime: Yes,
		InNP:                 Yes,
		Examples:             []string{"SAT", "3-coloring", "Hamiltonian cycle", "subset sum"},
	},
	NPHard: {
		Class:                NPHard,
		Description:          "problems at least as hard as every NP problem, not necessarily in NP",
		SolvableInPolyTime:   Unknown,
		VerifiableInPolyTime: Unknown,
		InNP:                 Unknown,
		Examples:             []string{"halting problem", "travelling salesman (optimization)", "SAT"},
	},
}

// Facts returns the reference description of a problem class.
func Facts(p ProblemClass) ProblemFacts {
	f := problemFacts[p]
	f.Examples = append([]string(nil), f.Examples...)

	return f
}

// Row is one line of a two-column comparison table.
type Row struct {
	Aspect string `yaml:"aspect"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
}

// Table is a titled two-column comparison.
type Table struct {
	Title string `yaml:"title"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Rows  []Row  `yaml:"rows"`
}

// ProblemTable is the P vs NP comparison from the notes.
func ProblemTable() Table {
	return Table{
		Title: "P vs NP",
		Left:  P.String(),
		Right: NP.String(),
		Rows: []Row{
			{"solved by", "deterministic machine in polynomial time", "non-deterministic machine in polynomial time"},
			{"verified in polynomial time", "yes", "yes"},
			{"solved in polynomial time", "yes", "not known"},
			{"relationship", "P ⊆ NP", "NP ⊇ P; whether NP = P is open"},
			{"examples", "selection sort, binary search, BFS", "SAT, graph coloring, subset sum"},
		},
	}
}

// HardnessTable is the NP-Complete vs NP-Hard comparison from the notes.
func HardnessTable() Table {
	return Table{
		Title: "NP-Complete vs NP-Hard",
		Left:  NPComplete.String(),
		Right: NPHard.String(),
		Rows: []Row{
			{"member of NP", "always", "not necessarily"},
			{"problem type", "decision problems only", "decision, search or optimization problems"},
			{"verifiable in polynomial time", "yes", "not necessarily"},
			{"reduction", "every NP problem reduces to it and it is in NP", "every NP problem reduces to it"},
			{"examples", "SAT, 3-coloring, Hamiltonian cycle", "halting problem, TSP optimization"},
		},
	}
}

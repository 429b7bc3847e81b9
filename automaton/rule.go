package automaton

// implFlags are the bits a rule's precomputed table can set for a given
// descriptor: whether the descriptor is already inconsistent, and, if
// not, which of (successor, self, still-unknown neighbours) are forced
// to a single value by the rule's transition function.
//
// The shape mirrors the teacher's bit-packed constraint results
// (gokando's BitSetDomain operations collapse to single words the same
// way); the flags themselves are the Go rendering of
// original_source/lib/src/rules/life.rs's ImplFlags.
type implFlags uint8

const (
	flagConflict implFlags = 1 << iota
	flagSuccAlive
	flagSuccDead
	flagSelfAlive
	flagSelfDead
	flagNbhdAlive
	flagNbhdDead
)

const (
	flagSucc = flagSuccAlive | flagSuccDead
	flagSelf = flagSelfAlive | flagSelfDead
	flagNbhd = flagNbhdAlive | flagNbhdDead
)

func (f implFlags) has(bit implFlags) bool { return f&bit != 0 }

// descriptor field codes for the 2-bit self/successor slots shared by
// every rule family: 0 means unknown, not Dead, so that the zero value
// of a freshly-allocated descriptor correctly reads as "nothing known
// yet" without any extra initialization step.
const (
	fieldUnknown uint32 = 0b00
	fieldAlive   uint32 = 0b01
	fieldDead    uint32 = 0b10
)

func fieldOf(v cellValue) uint32 {
	if !v.known {
		return fieldUnknown
	}
	if v.state == Alive {
		return fieldAlive
	}
	return fieldDead
}

// Rule is the capability set a rule family (outer-totalistic, isotropic
// non-totalistic, hexagonal, von Neumann, MAP, and their Generations
// wrappers) must provide. World, the propagator, and the backtracker are
// written entirely against this interface; see rule_totalistic.go,
// rule_nontotalistic.go, and rule_generations.go for the implementations.
type Rule interface {
	// NumStates is 2 for non-Generations rules, or the Generations
	// state count k (k >= 3) otherwise.
	NumStates() uint8

	// IsGenerations reports whether this is a Generations rule.
	IsGenerations() bool

	// HasB0 reports whether a cell with no live neighbours is born,
	// which makes the background alternate between Dead and Alive
	// every generation instead of staying fixed at Dead.
	HasB0() bool

	// ActiveNeighbourMask is the subset of the 8 Moore neighbourhood
	// slots this rule's neighbourhood actually uses: all 8 for
	// outer-totalistic/isotropic/MAP rules, 6 for hexagonal, 4 for von
	// Neumann (see neighbourhood.go).
	ActiveNeighbourMask() uint8

	// InitialDescriptor is the descriptor value for a freshly linked
	// cell whose own state, successor, and every active neighbour slot
	// are all still unknown.
	InitialDescriptor() uint32

	// SetNeighbour returns the descriptor that results from neighbour
	// slot `slot` changing from `old` to `new`.
	SetNeighbour(desc uint32, slot int, old, new cellValue) uint32

	// SetSelf returns the descriptor that results from the cell's own
	// state changing from `old` to `new`.
	SetSelf(desc uint32, old, new cellValue) uint32

	// SetSucc returns the descriptor that results from the cell's
	// successor's state changing from `old` to `new`.
	SetSucc(desc uint32, old, new cellValue) uint32

	// Consistify examines cell id's current descriptor and makes sure
	// it can validly produce the cell's successor under the rule. When
	// possible it determines (and sets, via w.setCell) the states of
	// some of the cells involved. It reports false on conflict.
	Consistify(w *World, id cellID) bool

	String() string
}

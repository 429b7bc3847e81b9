package automaton

// ReasonKind classifies why a cell carries a non-unknown value, which
// in turn controls how backtracking treats it: only Decided (and its
// flipped variant) cells are branch points.
type ReasonKind uint8

const (
	// ReasonKnown marks a cell fixed by the initial configuration
	// (known_cells) or by boundary/diagonal-width folding. Such cells
	// are frozen: backtracking never flips or clears them.
	ReasonKnown ReasonKind = iota
	// ReasonDecided marks a cell the backtracker chose freely; this is
	// a branch point that can be flipped on conflict.
	ReasonDecided
	// ReasonDecidedFlipped marks a branch point that has already been
	// flipped once; no further flip is allowed at this level.
	ReasonDecidedFlipped
	// ReasonDeduced marks a cell the propagator derived from another
	// cell's decision.
	ReasonDeduced
)

// Reason records why a cell has its current value and, for deduced
// cells, which cell caused the deduction (used only for diagnostics and
// by the optional backjumping algorithm's implication DAG).
type Reason struct {
	Kind ReasonKind
	// Via is the causing cell's ID, valid only when Kind is
	// ReasonDeduced. Via == 0 (the shared boundary sentinel) means no
	// cause was recorded, or that a self-forcing deduction was made for
	// a cell whose successor lies outside the world (see viaOf).
	Via cellID
}

// Frozen reports whether a cell with this reason can ever be flipped or
// cleared by backtracking.
func (r Reason) Frozen() bool { return r.Kind == ReasonKnown }

// IsBranchPoint reports whether a cell with this reason is a decision
// the backtracker can retreat into and flip.
func (r Reason) IsBranchPoint() bool {
	return r.Kind == ReasonDecided || r.Kind == ReasonDecidedFlipped
}

// trailEntry is one record in the World's trail (the spec's SetStack):
// a chronological log of cells that became non-unknown since the last
// reset, in the order they were set. Popping an entry resets its cell
// to unknown and rolls back the descriptors it touched.
type trailEntry struct {
	cell   cellID
	reason Reason
	// searchIndex is the spine cursor position at the time this entry
	// was pushed; after retreat flips a Decided entry, the cursor
	// resumes at searchIndex+1.
	searchIndex int
	// depth is the decision depth active when this entry was pushed (see
	// World.decisionDepth); used only by the optional backjumping pass.
	depth int
}

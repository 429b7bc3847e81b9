package automaton

// cellID is an index into World.cells. Using integer IDs instead of
// pointers/references keeps the cyclic cell-to-neighbour, cell-to-
// successor-to-predecessor, and cell-to-symmetry-peer graphs trivially
// safe in Go: the arena (World.cells) owns every cell for the whole
// search, and a cellID is just an offset into it.
type cellID int32

// noCell marks a neighbourhood slot that does not apply to the rule's
// neighbourhood shape at all (e.g. the two Moore corners a hexagonal
// rule disables). It is distinct from boundaryCell, which is a real,
// frozen-Dead cell standing in for positions outside the search range.
const noCell cellID = -1

// boundaryCell is the shared out-of-world sentinel: every neighbour
// pointer that would fall outside [0,W)×[0,H) resolves here instead.
// It is always Dead and frozen, and is cell index 0 in every World's
// arena so that the zero value of a cellID field never collides with a
// real, meaningful grid cell.
const boundaryCell cellID = 0

// maxNeighbours is the largest neighbourhood this engine supports: the
// 8-cell Moore neighbourhood. Hexagonal and von Neumann rules use a
// subset of these 8 slots (see neighbourhood.go); the unused slots are
// noCell.
const maxNeighbours = 8

// cell is one point (x, y, t) in the space-time grid. All cells for a
// World live in one contiguous slice (World.cells) allocated once at
// construction; only their state field is mutated during the search.
type cell struct {
	x, y, t int

	state  cellValue
	reason Reason

	// frozen is set only on the boundary sentinel. Diagonal-width
	// padding and known_cells are marked by ReasonKnown instead, which
	// backtracking likewise never clears or flips.
	frozen bool

	nbhd      [maxNeighbours]cellID
	nbhdCount int // number of slots in nbhd that are not noCell

	pred, succ       cellID
	hasPred, hasSucc bool

	sym []cellID // symmetry peers, not including the cell itself

	isFront bool

	// depth is the decision depth active when this cell was last set:
	// the number of still-active Decided/DecidedFlipped trail entries
	// at that moment. Used only by the optional backjumping algorithm
	// to bound how far a conflict could possibly be blamed.
	depth int

	// desc is the packed neighbourhood descriptor used to index the
	// rule's implication table. Its bit layout is rule-family specific
	// (see rule_totalistic.go and rule_nontotalistic.go) but always
	// encodes: the cell's own state slot, its successor's state slot,
	// and a census of its neighbourhood.
	desc uint32
}

func (c *cell) coord() (int, int, int) { return c.x, c.y, c.t }

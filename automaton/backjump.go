package automaton

// This file implements conflict-depth backjumping: when propagation
// finds a cell whose own current neighbourhood descriptor already
// admits no valid rule outcome, the cells that produced that
// descriptor are exactly the cell's own self/succ slots and its
// currently-known neighbours — the descriptor has no other inputs.
// So the deepest decision among those contributing cells is a sound,
// tight bound on how far retreat needs to backtrack: nothing decided
// earlier could possibly have mattered to this particular conflict,
// since the conflicting descriptor is already fully determined by
// cells decided no earlier than that bound.
//
// World.decisionDepth / cell.depth / trailEntry.depth track, for every
// cell, how many branch points were still open when it was set.
// conflictDepth reads those back off the cells a failed Consistify
// call actually looked at; retreat (backtrack.go) then pops any
// Decided entry deeper than the bound without trying to flip it,
// instead of flipping every one chronologically.
//
// Scope: Config.effectiveBackjump disables this pass for Generations
// rules (whose Consistify deliberately skips self/neighbour forcing,
// see rule_generations.go, so a conflict there is not guaranteed to be
// fully explained by the contributing cells alone) and for searches
// with a nonzero MaxCellCount (whose cell-count budget is itself a
// cross-cutting constraint not reflected in any single cell's
// descriptor).

// conflictDepth returns the deepest decision depth among the cells
// that determine id's current descriptor: id itself, its successor,
// and its currently-known active neighbours.
func (w *World) conflictDepth(id cellID) int {
	c := w.cellRef(id)
	depth := 0
	raise := func(v cellValue, d int) {
		if v.known && d > depth {
			depth = d
		}
	}
	raise(c.state, c.depth)
	if c.hasSucc && c.succ != boundaryCell {
		s := w.cellRef(c.succ)
		raise(s.state, s.depth)
	}
	mask := w.rule.ActiveNeighbourMask()
	for slot := 0; slot < maxNeighbours; slot++ {
		if mask&(1<<uint(slot)) == 0 {
			continue
		}
		nb := c.nbhd[slot]
		if nb == noCell || nb == boundaryCell {
			continue
		}
		n := w.cellRef(nb)
		raise(n.state, n.depth)
	}
	return depth
}

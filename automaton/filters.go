package automaton

// passesFilters decides whether a fully-decided grid is an acceptable
// solution: besides the live-cell-count cap already enforced during
// search, a completed pattern can still be rejected for being a
// trivially smaller-period or more-symmetric solution already
// discoverable by a cheaper search, or for not reaching the declared
// front edge of the world.
func (w *World) passesFilters() bool {
	if w.maxCellCount != 0 && w.minCellCount() > w.maxCellCount {
		return false
	}
	// front_nonempty is never a caller-set option: it is imposed
	// automatically whenever it cannot lose a solution, which is exactly
	// when no KnownCells pinned a front cell Dead ahead of time.
	if len(w.cfg.KnownCells) == 0 && !w.frontNonempty() {
		return false
	}
	if w.cfg.SkipSubperiod && w.hasProperSubperiod() {
		return false
	}
	if w.cfg.SkipSubsymmetry && w.hasExtraSymmetry() {
		return false
	}
	return w.passesSkipLevel()
}

func (w *World) passesSkipLevel() bool {
	level := w.cfg.SkipLevel
	if level >= SkipStable && w.minCellCount() == 0 {
		return false
	}
	if level >= SkipSubperiodOscillator {
		pureOscillator := w.cfg.Dx == 0 && w.cfg.Dy == 0
		if (pureOscillator || level >= SkipSubperiodSpaceship) && w.hasProperSubperiod() {
			return false
		}
	}
	if level >= SkipSymmetric && w.hasExtraSymmetry() {
		return false
	}
	return true
}

func sameValue(a, b cellValue) bool {
	if a.known != b.known {
		return false
	}
	return !a.known || a.state == b.state
}

// hasProperSubperiod reports whether the just-completed solution
// already repeats, under a proportionally scaled translation, at some
// proper divisor of Period — meaning it is really a solution of a
// shorter search that this search would redundantly rediscover.
//
// Scope: only handles Transform == Identity; a subperiod that only
// appears once a non-identity Transform is composed with itself is not
// detected (documented simplification, see DESIGN.md).
func (w *World) hasProperSubperiod() bool {
	if w.cfg.Transform != Identity {
		return false
	}
	for d := 1; d < w.period; d++ {
		k := w.period / d
		if w.period%d != 0 {
			continue
		}
		if w.cfg.Dx%k != 0 || w.cfg.Dy%k != 0 {
			continue
		}
		sdx, sdy := w.cfg.Dx/k, w.cfg.Dy/k
		if w.matchesShift(d, sdx, sdy) {
			return true
		}
	}
	return false
}

func (w *World) matchesShift(d, sdx, sdy int) bool {
	for t := 0; t < d; t++ {
		for y := 0; y < w.height; y++ {
			for x := 0; x < w.width; x++ {
				v1 := w.cells[w.cellIndex(x, y, t)].state
				nx, ny := x+sdx, y+sdy
				var v2 cellValue
				if nx < 0 || nx >= w.width || ny < 0 || ny >= w.height {
					v2 = knownValue(Dead)
				} else {
					v2 = w.cells[w.cellIndex(nx, ny, t+d)].state
				}
				if !sameValue(v1, v2) {
					return false
				}
			}
		}
	}
	return true
}

var nonIdentityTransforms = []Transform{Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}

// hasExtraSymmetry reports whether generation 0 is invariant under a
// transform beyond what Config.Symmetry already requires — meaning the
// solution actually belongs to a stricter symmetry group than asked
// for, and would be found by that stricter (cheaper) search too.
func (w *World) hasExtraSymmetry() bool {
	current := map[Transform]bool{Identity: true}
	for _, g := range w.cfg.Symmetry.generators() {
		current[g] = true
	}
	for _, t := range nonIdentityTransforms {
		if current[t] {
			continue
		}
		if (t == Rotate90 || t == Rotate270 || t == FlipDiag || t == FlipAntidiag) && w.width != w.height {
			continue
		}
		if w.invariantUnder(t) {
			return true
		}
	}
	return false
}

func (w *World) invariantUnder(t Transform) bool {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			nx, ny := t.apply2(x, y, w.width, w.height)
			if nx < 0 || nx >= w.width || ny < 0 || ny >= w.height {
				return false
			}
			v1 := w.cells[w.cellIndex(x, y, 0)].state
			v2 := w.cells[w.cellIndex(nx, ny, 0)].state
			if !sameValue(v1, v2) {
				return false
			}
		}
	}
	return true
}

// frontNonempty reports whether some front cell is known non-Dead
// (Alive, or Dying for Generations rules): the filter only needs to
// rule out a front that is conclusively all-background, matching
// original_source/lib/src/world.rs's front_cell_count, which tracks
// non-Dead front cells rather than strictly-Alive ones.
func (w *World) frontNonempty() bool {
	for i, sc := range w.spine {
		if !isFrontCell(sc, w.resolvedOrder, w.frontGen0) {
			continue
		}
		v := w.cells[w.spineIDs[i]].state
		if v.known && v.state != Dead {
			return true
		}
	}
	return false
}

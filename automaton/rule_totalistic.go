package automaton

// totalisticRule implements outer-totalistic (classic B/S) two-state
// rules: whether a cell is born or survives depends only on its own
// state and the *count* of live neighbours, not their positions.
//
// The descriptor packs, low bits first: self (2 bits), successor (2
// bits), known-alive neighbour count (4 bits), known-dead neighbour
// count (4 bits) — 12 bits total, wide enough that the whole table is a
// 4096-entry array indexed directly by the descriptor.
type totalisticRule struct {
	name            string
	birth, survival [9]bool
	activeMask      uint8
	table           []implFlags
}

const (
	totalSelfShift  = 0
	totalSuccShift  = 2
	totalAliveShift = 4
	totalDeadShift  = 8
	totalDescBits   = 12
)

// NewTotalisticRule builds an outer-totalistic rule from its birth and
// survival neighbour-count sets (each a subset of 0..8, counts beyond
// the active neighbourhood's size are simply never reached).
func NewTotalisticRule(name string, birth, survival [9]bool) Rule {
	return newTotalisticRuleMask(name, birth, survival, maskMoore)
}

// newTotalisticRuleMask builds an outer-totalistic rule over a reduced
// neighbourhood (hexagonal or von Neumann), counting only the slots in
// activeMask.
func newTotalisticRuleMask(name string, birth, survival [9]bool, activeMask uint8) Rule {
	r := &totalisticRule{name: name, birth: birth, survival: survival, activeMask: activeMask}
	r.table = buildTotalisticTable(r.transition, countActive(activeMask))
	return r
}

func (r *totalisticRule) transition(self State, liveNeighbours int) State {
	if self == Alive {
		if r.survival[liveNeighbours] {
			return Alive
		}
		return Dead
	}
	if r.birth[liveNeighbours] {
		return Alive
	}
	return Dead
}

func (r *totalisticRule) NumStates() uint8          { return 2 }
func (r *totalisticRule) IsGenerations() bool        { return false }
func (r *totalisticRule) HasB0() bool                { return r.birth[0] }
func (r *totalisticRule) ActiveNeighbourMask() uint8 { return r.activeMask }
func (r *totalisticRule) InitialDescriptor() uint32  { return 0 }
func (r *totalisticRule) String() string             { return r.name }

func (r *totalisticRule) SetNeighbour(desc uint32, slot int, old, new cellValue) uint32 {
	oa, od := totalisticDelta(old)
	na, nd := totalisticDelta(new)
	alive := int((desc>>totalAliveShift)&0xF) - oa + na
	dead := int((desc>>totalDeadShift)&0xF) - od + nd
	desc &^= 0xF << totalAliveShift
	desc &^= 0xF << totalDeadShift
	desc |= uint32(alive) << totalAliveShift
	desc |= uint32(dead) << totalDeadShift
	return desc
}

func (r *totalisticRule) SetSelf(desc uint32, old, new cellValue) uint32 {
	desc &^= 0b11 << totalSelfShift
	desc |= fieldOf(new) << totalSelfShift
	return desc
}

func (r *totalisticRule) SetSucc(desc uint32, old, new cellValue) uint32 {
	desc &^= 0b11 << totalSuccShift
	desc |= fieldOf(new) << totalSuccShift
	return desc
}

func totalisticDelta(v cellValue) (aliveDelta, deadDelta int) {
	if !v.known {
		return 0, 0
	}
	if v.state == Alive {
		return 1, 0
	}
	return 0, 1
}

func (r *totalisticRule) Consistify(w *World, id cellID) bool {
	c := w.cellRef(id)
	flags := r.table[c.desc]
	if flags.has(flagConflict) {
		return false
	}
	if flags.has(flagSelfAlive) && !c.state.known {
		if !w.setCell(id, Alive, Reason{Kind: ReasonDeduced, Via: viaOf(c)}) {
			return false
		}
	} else if flags.has(flagSelfDead) && !c.state.known {
		if !w.setCell(id, Dead, Reason{Kind: ReasonDeduced, Via: viaOf(c)}) {
			return false
		}
	}
	if c.hasSucc {
		succ := w.cellRef(c.succ)
		if flags.has(flagSuccAlive) && !succ.state.known {
			if !w.setCell(c.succ, Alive, Reason{Kind: ReasonDeduced, Via: id}) {
				return false
			}
		} else if flags.has(flagSuccDead) && !succ.state.known {
			if !w.setCell(c.succ, Dead, Reason{Kind: ReasonDeduced, Via: id}) {
				return false
			}
		}
	}
	if flags.has(flagNbhd) {
		want := Dead
		if flags.has(flagNbhdAlive) {
			want = Alive
		}
		for _, slot := range activeSlots(r.ActiveNeighbourMask()) {
			n := c.nbhd[slot]
			if n == noCell {
				continue
			}
			nc := w.cellRef(n)
			if nc.state.known {
				continue
			}
			if !w.setCell(n, want, Reason{Kind: ReasonDeduced, Via: id}) {
				return false
			}
		}
	}
	return true
}

// succVerdict implements succLookup for generationsRule.
func (r *totalisticRule) succVerdict(desc uint32) (bool, uint8) {
	f := r.table[desc]
	if f.has(flagConflict) {
		return true, 0
	}
	if f.has(flagSuccAlive) {
		return false, 1
	}
	if f.has(flagSuccDead) {
		return false, 2
	}
	return false, 0
}

func viaOf(c *cell) cellID {
	if c.hasSucc {
		return c.succ
	}
	return boundaryCell
}

// buildTotalisticTable enumerates every reachable descriptor value and
// precomputes its implFlags by direct search over the candidate self
// states and unknown-neighbour live counts, rather than the incremental
// bit-difference construction of the original implementation: for a
// fixed (deadCount, aliveCount, self field, succ field) the surviving
// (selfState, unknownAliveCount, succState) triples are enumerated
// directly, and a field is forced only when every surviving triple
// agrees on it.
func buildTotalisticTable(transition func(State, int) State, maxCount int) []implFlags {
	table := make([]implFlags, 1<<totalDescBits)
	for dead := 0; dead <= maxCount; dead++ {
		for alive := 0; dead+alive <= maxCount; alive++ {
			unknownCount := maxCount - dead - alive
			for selfField := uint32(0); selfField < 3; selfField++ {
				if selfField == 0b11 {
					continue
				}
				for succField := uint32(0); succField < 3; succField++ {
					if succField == 0b11 {
						continue
					}
					desc := uint32(dead)<<totalDeadShift | uint32(alive)<<totalAliveShift |
						succField<<totalSuccShift | selfField<<totalSelfShift
					table[desc] = totalisticFlags(transition, dead, alive, unknownCount, selfField, succField)
				}
			}
		}
	}
	return table
}

func totalisticFlags(transition func(State, int) State, dead, alive, unknownCount int, selfField, succField uint32) implFlags {
	type survivor struct {
		self  State
		succ  State
		extra int
	}
	var selfCandidates []State
	if selfField == fieldAlive {
		selfCandidates = []State{Alive}
	} else if selfField == fieldDead {
		selfCandidates = []State{Dead}
	} else {
		selfCandidates = []State{Dead, Alive}
	}

	var survivors []survivor
	for _, self := range selfCandidates {
		for extra := 0; extra <= unknownCount; extra++ {
			succ := transition(self, alive+extra)
			if succField == fieldAlive && succ != Alive {
				continue
			}
			if succField == fieldDead && succ != Dead {
				continue
			}
			survivors = append(survivors, survivor{self: self, succ: succ, extra: extra})
		}
	}
	if len(survivors) == 0 {
		return flagConflict
	}

	var flags implFlags
	if selfField == fieldUnknown {
		allAlive, allDead := true, true
		for _, s := range survivors {
			if s.self == Alive {
				allDead = false
			} else {
				allAlive = false
			}
		}
		if allAlive {
			flags |= flagSelfAlive
		} else if allDead {
			flags |= flagSelfDead
		}
	}
	if succField == fieldUnknown {
		allAlive, allDead := true, true
		for _, s := range survivors {
			if s.succ == Alive {
				allDead = false
			} else {
				allAlive = false
			}
		}
		if allAlive {
			flags |= flagSuccAlive
		} else if allDead {
			flags |= flagSuccDead
		}
	}
	if unknownCount > 0 {
		allZero, allFull := true, true
		for _, s := range survivors {
			if s.extra != 0 {
				allZero = false
			}
			if s.extra != unknownCount {
				allFull = false
			}
		}
		if allZero {
			flags |= flagNbhdDead
		} else if allFull {
			flags |= flagNbhdAlive
		}
	}
	return flags
}

package automaton

// genericNontotalisticRule is the shared backend for every rule family
// whose transition depends on the *positions* of live neighbours, not
// just their count: isotropic non-totalistic (Hensel notation),
// hexagonal, von Neumann, and MAP rules. They differ only in which of
// the eight Moore slots are active (ActiveNeighbourMask) and in how
// transitionTable is populated; everything else — descriptor packing,
// propagation, table construction — is identical.
//
// transitionTable[selfAlive][neighbourBits] is the successor state for
// a cell in state selfAlive with the given 8-bit pattern of which
// Moore-neighbourhood slots are alive (bits for inactive slots are
// always 0 and never consulted).
type genericNontotalisticRule struct {
	name             string
	activeMask       uint8
	transitionTable  [2][256]State
	table            map[uint32]nontResult
}

const (
	nontSelfShift    = 0
	nontSuccShift    = 2
	nontAliveShift   = 4
	nontUnknownShift = 12
)

// nontResult is the precomputed deduction for one descriptor value. It
// plays the role implFlags plays for totalistic rules, but neighbour
// forcing is per-slot here since position, not just count, matters.
type nontResult struct {
	conflict       bool
	forceSelf      uint8 // 0 none, 1 force alive, 2 force dead
	forceSucc      uint8
	forceAliveBits uint8 // unknown slots forced alive
	forceDeadBits  uint8 // unknown slots forced dead
}

func newGenericNontotalisticRule(name string, activeMask uint8, transitionTable [2][256]State) *genericNontotalisticRule {
	r := &genericNontotalisticRule{name: name, activeMask: activeMask, transitionTable: transitionTable}
	r.table = buildNontotalisticTable(activeMask, transitionTable)
	return r
}

func (r *genericNontotalisticRule) NumStates() uint8 { return 2 }
func (r *genericNontotalisticRule) IsGenerations() bool { return false }
func (r *genericNontotalisticRule) HasB0() bool {
	return r.transitionTable[0][0] == Alive
}
func (r *genericNontotalisticRule) ActiveNeighbourMask() uint8 { return r.activeMask }
func (r *genericNontotalisticRule) String() string             { return r.name }

func (r *genericNontotalisticRule) InitialDescriptor() uint32 {
	return uint32(r.activeMask) << nontUnknownShift
}

func (r *genericNontotalisticRule) SetNeighbour(desc uint32, slot int, old, new cellValue) uint32 {
	aliveByte := uint8(desc >> nontAliveShift)
	unknownByte := uint8(desc >> nontUnknownShift)
	bit := uint8(1) << uint(slot)
	aliveByte &^= bit
	unknownByte &^= bit
	if !new.known {
		unknownByte |= bit
	} else if new.state == Alive {
		aliveByte |= bit
	}
	desc &^= 0xFF << nontAliveShift
	desc &^= 0xFF << nontUnknownShift
	desc |= uint32(aliveByte) << nontAliveShift
	desc |= uint32(unknownByte) << nontUnknownShift
	return desc
}

func (r *genericNontotalisticRule) SetSelf(desc uint32, old, new cellValue) uint32 {
	desc &^= 0b11 << nontSelfShift
	desc |= fieldOf(new) << nontSelfShift
	return desc
}

func (r *genericNontotalisticRule) SetSucc(desc uint32, old, new cellValue) uint32 {
	desc &^= 0b11 << nontSuccShift
	desc |= fieldOf(new) << nontSuccShift
	return desc
}

// succVerdict implements succLookup for generationsRule.
func (r *genericNontotalisticRule) succVerdict(desc uint32) (bool, uint8) {
	res, ok := r.table[desc]
	if !ok || res.conflict {
		return true, 0
	}
	return false, res.forceSucc
}

func (r *genericNontotalisticRule) Consistify(w *World, id cellID) bool {
	c := w.cellRef(id)
	res, ok := r.table[c.desc]
	if !ok || res.conflict {
		return false
	}
	if res.forceSelf != 0 && !c.state.known {
		s := Dead
		if res.forceSelf == 1 {
			s = Alive
		}
		if !w.setCell(id, s, Reason{Kind: ReasonDeduced, Via: viaOf(c)}) {
			return false
		}
	}
	if c.hasSucc && res.forceSucc != 0 {
		succ := w.cellRef(c.succ)
		if !succ.state.known {
			s := Dead
			if res.forceSucc == 1 {
				s = Alive
			}
			if !w.setCell(c.succ, s, Reason{Kind: ReasonDeduced, Via: id}) {
				return false
			}
		}
	}
	for _, slot := range activeSlots(r.activeMask) {
		bit := uint8(1) << uint(slot)
		n := c.nbhd[slot]
		if n == noCell {
			continue
		}
		nc := w.cellRef(n)
		if nc.state.known {
			continue
		}
		if res.forceAliveBits&bit != 0 {
			if !w.setCell(n, Alive, Reason{Kind: ReasonDeduced, Via: id}) {
				return false
			}
		} else if res.forceDeadBits&bit != 0 {
			if !w.setCell(n, Dead, Reason{Kind: ReasonDeduced, Via: id}) {
				return false
			}
		}
	}
	return true
}

// buildNontotalisticTable enumerates every way to partition the active
// neighbour slots into known-dead, known-alive, and unknown, crossed
// with the nine self/successor field combinations, and for each
// partition determines what (if anything) is forced by checking every
// assignment of the unknown slots against transitionTable.
func buildNontotalisticTable(activeMask uint8, transitionTable [2][256]State) map[uint32]nontResult {
	slots := activeSlots(activeMask)
	partitions := enumeratePartitions(slots)
	table := make(map[uint32]nontResult, len(partitions)*9)

	for _, p := range partitions {
		unknownSlots := maskToSlots(p.unknownMask)
		for selfField := uint32(0); selfField < 3; selfField++ {
			if selfField == 0b11 {
				continue
			}
			for succField := uint32(0); succField < 3; succField++ {
				if succField == 0b11 {
					continue
				}
				desc := uint32(p.aliveMask)<<nontAliveShift | uint32(p.unknownMask)<<nontUnknownShift |
					succField<<nontSuccShift | selfField<<nontSelfShift
				table[desc] = nontotalisticResult(transitionTable, p.aliveMask, unknownSlots, selfField, succField)
			}
		}
	}
	return table
}

func nontotalisticResult(transitionTable [2][256]State, aliveMask uint8, unknownSlots []int, selfField, succField uint32) nontResult {
	var selfCandidates []State
	switch selfField {
	case fieldAlive:
		selfCandidates = []State{Alive}
	case fieldDead:
		selfCandidates = []State{Dead}
	default:
		selfCandidates = []State{Dead, Alive}
	}

	type survivor struct {
		self  State
		succ  State
		bits  uint8 // chosen alive bits among unknownSlots
	}
	var survivors []survivor

	n := len(unknownSlots)
	for _, self := range selfCandidates {
		selfIdx := 0
		if self == Alive {
			selfIdx = 1
		}
		for sub := 0; sub < (1 << uint(n)); sub++ {
			bits := aliveMask
			for i, slot := range unknownSlots {
				if sub&(1<<uint(i)) != 0 {
					bits |= 1 << uint(slot)
				}
			}
			succ := transitionTable[selfIdx][bits]
			if succField == fieldAlive && succ != Alive {
				continue
			}
			if succField == fieldDead && succ != Dead {
				continue
			}
			survivors = append(survivors, survivor{self: self, succ: succ, bits: uint8(sub)})
		}
	}
	if len(survivors) == 0 {
		return nontResult{conflict: true}
	}

	var res nontResult
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
			res.forceSelf = 1
		} else if allDead {
			res.forceSelf = 2
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
			res.forceSucc = 1
		} else if allDead {
			res.forceSucc = 2
		}
	}
	for i, slot := range unknownSlots {
		allAlive, allDead := true, true
		for _, s := range survivors {
			if s.bits&(1<<uint(i)) != 0 {
				allDead = false
			} else {
				allAlive = false
			}
		}
		if allAlive {
			res.forceAliveBits |= 1 << uint(slot)
		} else if allDead {
			res.forceDeadBits |= 1 << uint(slot)
		}
	}
	return res
}

type slotPartition struct {
	aliveMask, unknownMask uint8
}

// enumeratePartitions assigns each slot in slots to one of
// {dead, alive, unknown}, returning every combination.
func enumeratePartitions(slots []int) []slotPartition {
	result := []slotPartition{{}}
	for _, slot := range slots {
		next := make([]slotPartition, 0, len(result)*3)
		bit := uint8(1) << uint(slot)
		for _, p := range result {
			next = append(next, p) // dead
			next = append(next, slotPartition{aliveMask: p.aliveMask | bit, unknownMask: p.unknownMask})
			next = append(next, slotPartition{aliveMask: p.aliveMask, unknownMask: p.unknownMask | bit})
		}
		result = next
	}
	return result
}

func maskToSlots(mask uint8) []int {
	var slots []int
	for i := 0; i < maxNeighbours; i++ {
		if mask&(1<<uint(i)) != 0 {
			slots = append(slots, i)
		}
	}
	return slots
}

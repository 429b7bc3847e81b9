package automaton

// generationsRule wraps a two-state backend (totalistic or
// non-totalistic) to add the Generations "dying" states: a cell that is
// Alive but fails its survival condition passes through Dying(2..k-1)
// before returning to Dead, decaying one step per generation regardless
// of its neighbours.
//
// Only Dead and Alive participate in the backend's birth/survival
// table; dying cells decay deterministically. Because an unknown cell
// could secretly be any dying level as well as Dead or Alive, self- and
// neighbour-forcing from the backend's census table are not sound here
// and are deliberately not attempted — only the deterministic dying
// decay and successor forcing (when self is already known Dead/Alive)
// are. This trades some completeness for soundness; see DESIGN.md.
type generationsRule struct {
	name      string
	numStates uint8
	base      Rule
}

// succLookup exposes just the successor verdict of a two-state rule's
// precomputed table, which is the only part of the backend
// generationsRule can safely reuse.
type succLookup interface {
	succVerdict(desc uint32) (conflict bool, forced uint8) // forced: 0 none, 1 alive, 2 not-alive
}

// NewGenerationsRule builds a Generations rule with numStates states
// (numStates >= 3) around a two-state base rule.
func NewGenerationsRule(name string, numStates uint8, base Rule) Rule {
	return &generationsRule{name: name, numStates: numStates, base: base}
}

func (r *generationsRule) NumStates() uint8          { return r.numStates }
func (r *generationsRule) IsGenerations() bool        { return true }
func (r *generationsRule) HasB0() bool                { return r.base.HasB0() }
func (r *generationsRule) ActiveNeighbourMask() uint8 { return r.base.ActiveNeighbourMask() }
func (r *generationsRule) InitialDescriptor() uint32  { return r.base.InitialDescriptor() }
func (r *generationsRule) String() string             { return r.name }

func binarize(v cellValue) cellValue {
	if !v.known || v.state == Alive {
		return v
	}
	return knownValue(Dead)
}

func (r *generationsRule) SetNeighbour(desc uint32, slot int, old, new cellValue) uint32 {
	return r.base.SetNeighbour(desc, slot, binarize(old), binarize(new))
}

func (r *generationsRule) SetSelf(desc uint32, old, new cellValue) uint32 {
	return r.base.SetSelf(desc, binarize(old), binarize(new))
}

func (r *generationsRule) SetSucc(desc uint32, old, new cellValue) uint32 {
	return r.base.SetSucc(desc, binarize(old), binarize(new))
}

func (r *generationsRule) Consistify(w *World, id cellID) bool {
	c := w.cellRef(id)
	if c.state.known {
		if c.state.state.IsDying() {
			return r.consistifyDecay(w, id, c)
		}
		return r.consistifySucc(w, id, c)
	}
	sl, ok := r.base.(succLookup)
	if !ok {
		return true
	}
	conflict, _ := sl.succVerdict(c.desc)
	return !conflict
}

func (r *generationsRule) consistifyDecay(w *World, id cellID, c *cell) bool {
	if !c.hasSucc {
		return true
	}
	want := c.state.state.Next(r.numStates)
	succ := w.cellRef(c.succ)
	if succ.state.known {
		return succ.state.state == want
	}
	return w.setCell(c.succ, want, Reason{Kind: ReasonDeduced, Via: id})
}

func (r *generationsRule) consistifySucc(w *World, id cellID, c *cell) bool {
	sl, ok := r.base.(succLookup)
	if !ok {
		return true
	}
	conflict, forced := sl.succVerdict(c.desc)
	if conflict {
		return false
	}
	if forced == 0 || !c.hasSucc {
		return true
	}
	succ := w.cellRef(c.succ)
	wantAlive := forced == 1
	if succ.state.known {
		return succ.state.state.IsAlive() == wantAlive
	}
	var want State
	switch {
	case wantAlive:
		want = Alive
	case c.state.state == Alive && r.numStates > 2:
		want = 2
	default:
		want = Dead
	}
	return w.setCell(c.succ, want, Reason{Kind: ReasonDeduced, Via: id})
}

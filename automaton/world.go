package automaton

import "fmt"

// Status is the outcome of the most recent Step or Search call.
type Status int

const (
	// StatusInitial means Search/Step has not yet been called.
	StatusInitial Status = iota
	// StatusSearching means the search has not finished: either the
	// caller's step budget ran out, or (for Step) one decision/
	// propagation/backtrack round completed without resolving.
	StatusSearching
	// StatusFound means a solution is available; cell states reflect
	// it until the next Search/Step call moves on.
	StatusFound
	// StatusNone means the search space has been exhausted with no
	// (further) solution.
	StatusNone
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "Initial"
	case StatusSearching:
		return "Searching"
	case StatusFound:
		return "Found"
	case StatusNone:
		return "None"
	default:
		return "Status(?)"
	}
}

// World is a fully linked space-time grid together with the search
// state (trail, spine cursor, live cell count) needed to run Step and
// Search. Build one with NewWorld; World is not safe for concurrent use
// (see SPEC_FULL.md §3 — this engine is deliberately single-threaded).
type World struct {
	cfg  Config
	rule Rule

	width, height, period int

	cells []cell // cells[0] is the frozen boundary sentinel

	spine         []SearchOrderCell
	spineIDs      []cellID
	resolvedOrder SearchOrder
	frontGen0     bool

	trail       []trailEntry
	searchIndex int

	// cellCount holds, per generation, the number of cells currently
	// known to be Alive (Dying states and Unknown cells don't count,
	// matching original_source/lib/src/world.rs's cell_count).
	cellCount    []int
	maxCellCount int

	status Status
	rngSrc *rng

	queue []cellID

	// backjump enables the conflict-depth backjumping pass in retreat
	// (see backjump.go). Resolved once at construction from Config.
	backjump bool
	// decisionDepth counts the Decided/DecidedFlipped entries currently
	// active on the trail; every trail entry snapshots it at push time.
	decisionDepth int
	// lastConflictDepth is the decision depth retreat may safely jump to
	// without trying to flip anything shallower, computed by the most
	// recent conflict. -1 means "no information", i.e. retreat one step
	// at a time as usual.
	lastConflictDepth int
}

// NewWorld validates cfg, resolves its rule, and constructs a fully
// linked World ready for Step/Search.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := cfg.resolveRule()
	if err != nil {
		return nil, err
	}
	if cfg.Transform != Identity && cfg.Transform != FlipRow && cfg.Transform != FlipCol && cfg.Width != cfg.Height {
		return nil, &ConfigError{Field: "Transform", Reason: "rotational or diagonal transforms require a square world"}
	}

	w := &World{
		cfg:          cfg,
		rule:         rule,
		width:        cfg.Width,
		height:       cfg.Height,
		period:       cfg.Period,
		maxCellCount: cfg.MaxCellCount,
		rngSrc:       newRNG(cfg.Seed),
	}
	w.lastConflictDepth = -1
	w.backjump = cfg.effectiveBackjump(rule)
	w.cellCount = make([]int, cfg.Period)

	n := w.width * w.height * w.period
	w.cells = make([]cell, n+1)
	w.cells[boundaryCell] = cell{x: -1, y: -1, t: -1, state: knownValue(Dead), reason: Reason{Kind: ReasonKnown}, frozen: true}

	for t := 0; t < w.period; t++ {
		for y := 0; y < w.height; y++ {
			for x := 0; x < w.width; x++ {
				id := w.cellIndex(x, y, t)
				w.cells[id] = cell{x: x, y: y, t: t, state: unknownValue, desc: rule.InitialDescriptor()}
			}
		}
	}

	w.initNeighbours()
	w.initPredSucc()
	w.initSymmetry()

	w.resolvedOrder = resolvedOrderKind(cfg, w.width, w.height)
	w.frontGen0 = wantsFrontGen0(cfg)
	w.spine = buildSearchOrder(cfg, w.width, w.height, w.period)
	w.spineIDs = make([]cellID, len(w.spine))
	for i, sc := range w.spine {
		w.spineIDs[i] = w.cellIndex(sc.X, sc.Y, sc.T)
	}

	if cfg.DiagonalWidth > 0 {
		if err := w.seedDiagonalWidth(); err != nil {
			return nil, err
		}
	}
	for _, k := range cfg.KnownCells {
		id := w.cellIndex(k.X, k.Y, k.T)
		if !w.setCell(id, k.State, Reason{Kind: ReasonKnown}) {
			return nil, &ConfigError{Field: "KnownCells", Reason: "known cells are mutually inconsistent"}
		}
	}
	if !w.runPropagation() {
		w.status = StatusNone
	}

	return w, nil
}

func (w *World) cellIndex(x, y, t int) cellID {
	return cellID(1 + (t*w.height+y)*w.width + x)
}

// resolve maps a spatial coordinate to its cellID at generation t,
// returning the frozen boundary sentinel when it falls outside the
// world.
func (w *World) resolve(x, y, t int) cellID {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return boundaryCell
	}
	return w.cellIndex(x, y, t)
}

func (w *World) cellRef(id cellID) *cell { return &w.cells[id] }

func (w *World) initNeighbours() {
	mask := w.rule.ActiveNeighbourMask()
	for t := 0; t < w.period; t++ {
		for y := 0; y < w.height; y++ {
			for x := 0; x < w.width; x++ {
				c := &w.cells[w.cellIndex(x, y, t)]
				c.nbhdCount = countActive(mask)
				for slot := 0; slot < maxNeighbours; slot++ {
					if mask&(1<<uint(slot)) == 0 {
						c.nbhd[slot] = noCell
						continue
					}
					off := mooreOffsets[slot]
					c.nbhd[slot] = w.resolve(x+off[0], y+off[1], t)
					if c.nbhd[slot] == boundaryCell {
						c.desc = w.rule.SetNeighbour(c.desc, slot, unknownValue, knownValue(Dead))
					}
				}
			}
		}
	}
}

// transformCoord maps (x, y) through the Config's Transform about the
// world's centre, using doubled coordinates so the centre need not be
// an integer grid point.
func (w *World) transformCoord(x, y int) (int, int) {
	cx, cy := w.width-1, w.height-1
	ddx, ddy := 2*x-cx, 2*y-cy
	ndx, ndy := w.cfg.Transform.apply(ddx, ddy)
	return (ndx + cx) / 2, (ndy + cy) / 2
}

func (w *World) initPredSucc() {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			for t := 0; t < w.period; t++ {
				id := w.cellIndex(x, y, t)
				c := &w.cells[id]
				var succID cellID
				if t+1 < w.period {
					succID = w.cellIndex(x, y, t+1)
				} else {
					nx, ny := w.transformCoord(x, y)
					nx += w.cfg.Dx
					ny += w.cfg.Dy
					succID = w.resolve(nx, ny, 0)
				}
				c.succ = succID
				c.hasSucc = true
				if succID == boundaryCell {
					c.desc = w.rule.SetSucc(c.desc, unknownValue, knownValue(Dead))
				}
				if succID != boundaryCell {
					w.cells[succID].pred = id
					w.cells[succID].hasPred = true
				}
			}
		}
	}
}

func (w *World) initSymmetry() {
	gens := w.cfg.Symmetry.generators()
	if len(gens) == 0 {
		return
	}
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			for t := 0; t < w.period; t++ {
				id := w.cellIndex(x, y, t)
				c := &w.cells[id]
				seen := map[cellID]bool{id: true}
				for _, g := range gens {
					nx, ny := g.apply2(x, y, w.width, w.height)
					peer := w.resolve(nx, ny, t)
					if peer == boundaryCell || seen[peer] {
						continue
					}
					seen[peer] = true
					c.sym = append(c.sym, peer)
				}
			}
		}
	}
}

func (w *World) seedDiagonalWidth() error {
	width := w.cfg.DiagonalWidth
	for t := 0; t < w.period; t++ {
		for y := 0; y < w.height; y++ {
			for x := 0; x < w.width; x++ {
				if absInt(x-y) < width {
					continue
				}
				id := w.cellIndex(x, y, t)
				if !w.setCell(id, Dead, Reason{Kind: ReasonKnown}) {
					return &ConfigError{Field: "DiagonalWidth", Reason: "conflicts with known cells"}
				}
			}
		}
	}
	return nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// setCell assigns id's state, updates every descriptor it touches,
// records a trail entry, cascades to symmetry peers, and enqueues the
// cells whose descriptors changed for the propagator. It reports false
// if id was already set to a different state (a conflict), or if
// setting a symmetry peer conflicts.
func (w *World) setCell(id cellID, s State, reason Reason) bool {
	c := &w.cells[id]
	if c.state.known {
		if c.state.state == s {
			return true
		}
		if w.backjump {
			if c.depth > w.lastConflictDepth {
				w.lastConflictDepth = c.depth
			}
			if w.decisionDepth > w.lastConflictDepth {
				w.lastConflictDepth = w.decisionDepth
			}
		}
		return false
	}
	if reason.Kind == ReasonDecided || reason.Kind == ReasonDecidedFlipped {
		w.decisionDepth++
	}
	old := c.state
	new := knownValue(s)
	c.state = new
	c.reason = reason
	c.depth = w.decisionDepth
	c.desc = w.rule.SetSelf(c.desc, old, new)

	if c.hasPred && c.pred != boundaryCell {
		pred := &w.cells[c.pred]
		pred.desc = w.rule.SetSucc(pred.desc, old, new)
		w.enqueue(c.pred)
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
		nbCell := &w.cells[nb]
		nbCell.desc = w.rule.SetNeighbour(nbCell.desc, reverseSlot[slot], old, new)
		w.enqueue(nb)
	}
	w.enqueue(id)

	w.trail = append(w.trail, trailEntry{cell: id, reason: reason, searchIndex: w.searchIndex, depth: c.depth})
	if s == Alive {
		w.cellCount[c.t]++
	}

	for _, peer := range c.sym {
		if peer == id {
			continue
		}
		if !w.setCell(peer, s, Reason{Kind: ReasonDeduced, Via: id}) {
			return false
		}
	}
	return true
}

func (w *World) enqueue(id cellID) {
	w.queue = append(w.queue, id)
}

// clearCell undoes one trail entry, restoring the cell to unknown and
// rolling back every descriptor setCell touched. It must be called in
// exact reverse order of setCell (the trail is a strict stack).
func (w *World) clearCell(e trailEntry) {
	c := &w.cells[e.cell]
	old := c.state
	new := unknownValue
	if s := old; s == new {
		return
	}
	if e.reason.Kind == ReasonDecided || e.reason.Kind == ReasonDecidedFlipped {
		w.decisionDepth--
	}
	c.state = unknownValue
	c.reason = Reason{}
	c.depth = 0
	c.desc = w.rule.SetSelf(c.desc, old, new)

	if c.hasPred && c.pred != boundaryCell {
		pred := &w.cells[c.pred]
		pred.desc = w.rule.SetSucc(pred.desc, old, new)
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
		nbCell := &w.cells[nb]
		nbCell.desc = w.rule.SetNeighbour(nbCell.desc, reverseSlot[slot], old, new)
	}
	if old.known && old.state == Alive {
		w.cellCount[c.t]--
	}
}

// Cell returns the decided state of (x, y, t) and whether it has been
// decided yet.
func (w *World) Cell(x, y, t int) (State, bool) {
	id := w.resolve(x, y, t)
	v := w.cells[id].state
	return v.state, v.known
}

// LiveCount returns the number of cells known to be Alive in generation
// t.
func (w *World) LiveCount(t int) int { return w.cellCount[t] }

// minCellCount returns the smallest of LiveCount(t) across all
// generations: the quantity MaxCellCount and ReduceMax are defined
// against (spec.md's "minimum-over-generations live count").
func (w *World) minCellCount() int {
	min := w.cellCount[0]
	for _, n := range w.cellCount[1:] {
		if n < min {
			min = n
		}
	}
	return min
}

// Status returns the outcome of the most recent Step/Search call.
func (w *World) Status() Status { return w.status }

// Rule returns the resolved Rule this World was built with.
func (w *World) Rule() Rule { return w.rule }

func (t Transform) apply2(x, y, width, height int) (int, int) {
	cx, cy := width-1, height-1
	ddx, ddy := 2*x-cx, 2*y-cy
	ndx, ndy := t.apply(ddx, ddy)
	return (ndx + cx) / 2, (ndy + cy) / 2
}

func (w *World) String() string {
	return fmt.Sprintf("World(%dx%d, period %d, rule %s)", w.width, w.height, w.period, w.rule)
}

package automaton

// snapshotVersion is bumped whenever the Snapshot JSON schema changes in
// a way that breaks older readers. No backwards compatibility is
// promised across versions.
const snapshotVersion = 1

// snapshotEntry is one replayable trail record. Deduced entries are
// deliberately not stored: propagation re-derives them from the stored
// Known/Decided/DecidedFlipped entries on Load, so the snapshot only
// needs the choices a human (or the search) actually made.
type snapshotEntry struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	T     int        `json:"t"`
	State State      `json:"state"`
	Kind  ReasonKind `json:"kind"`
}

// Snapshot is the serializable form of a World: enough to reconstruct
// an equivalent World and resume searching from exactly where it left
// off. Marshal/unmarshal it with encoding/json.
type Snapshot struct {
	Version     int             `json:"version"`
	Config      Config          `json:"config"`
	Stack       []snapshotEntry `json:"stack"`
	SearchIndex int             `json:"search_index"`
	Status      Status          `json:"status"`
}

// Save captures w's Config and decision stack into a Snapshot. Deduced
// cells are omitted; Load regenerates them by re-running propagation.
func (w *World) Save() Snapshot {
	snap := Snapshot{
		Version:     snapshotVersion,
		Config:      w.cfg,
		SearchIndex: w.searchIndex,
		Status:      w.status,
	}
	for _, e := range w.trail {
		if e.reason.Kind == ReasonDeduced {
			continue
		}
		c := w.cellRef(e.cell)
		snap.Stack = append(snap.Stack, snapshotEntry{
			X: c.x, Y: c.y, T: c.t,
			State: c.state.state,
			Kind:  e.reason.Kind,
		})
	}
	return snap
}

// Load rebuilds a World from a Snapshot, checking it against cfg, then
// replays the Known/Decided/DecidedFlipped stack (propagation runs once
// at the end, not after each entry, matching how the live search only
// ever propagates to a fixed point between decisions).
func Load(snap Snapshot, cfg Config) (*World, error) {
	if snap.Version != snapshotVersion {
		return nil, &SaveError{Kind: SaveErrorMismatch, Reason: "unsupported snapshot version"}
	}
	if cfg.Width != snap.Config.Width || cfg.Height != snap.Config.Height ||
		cfg.Period != snap.Config.Period || cfg.RuleString != snap.Config.RuleString {
		return nil, &SaveError{Kind: SaveErrorMismatch, Reason: "config does not match snapshot"}
	}

	w, err := NewWorld(snap.Config)
	if err != nil {
		return nil, &SaveError{Kind: SaveErrorDecode, Reason: "snapshot config failed to build a World", Err: err}
	}

	spineIndex := make(map[cellID]int, len(w.spineIDs))
	for i, id := range w.spineIDs {
		spineIndex[id] = i
	}

	for _, e := range snap.Stack {
		if e.Kind == ReasonKnown {
			// already re-derived by NewWorld from snap.Config.KnownCells
			// and diagonal-width seeding; replaying it is redundant.
			continue
		}
		id := w.cellIndex(e.X, e.Y, e.T)
		if k, ok := spineIndex[id]; ok {
			w.searchIndex = k
		}
		if !w.setCell(id, e.State, Reason{Kind: e.Kind}) {
			return nil, &SaveError{Kind: SaveErrorMismatch, Reason: "stack replay produced a conflict"}
		}
	}

	if !w.runPropagation() {
		w.status = StatusNone
	} else {
		w.status = snap.Status
	}
	w.searchIndex = snap.SearchIndex
	return w, nil
}

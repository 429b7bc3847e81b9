package automaton

import "testing"

// TestConflictDepthBoundedByContributingCells checks that conflictDepth
// never exceeds the deepest decision among the cells that feed a cell's
// descriptor (itself, its successor, and its known neighbours) — the
// soundness property backjumping relies on.
func TestConflictDepthBoundedByContributingCells(t *testing.T) {
	cfg := NewConfig().SetSize(5, 5).SetPeriod(1).SetBackjump(true)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if !w.backjump {
		t.Fatal("backjump should be enabled for a plain life-like config")
	}

	center := w.cellIndex(2, 2, 0)
	if !w.setCell(w.cellIndex(1, 2, 0), Alive, Reason{Kind: ReasonDecided}) {
		t.Fatal("setCell failed")
	}
	if !w.setCell(w.cellIndex(3, 2, 0), Alive, Reason{Kind: ReasonDecided}) {
		t.Fatal("setCell failed")
	}

	depth := w.conflictDepth(center)
	if depth > w.decisionDepth {
		t.Errorf("conflictDepth() = %d, exceeds current decisionDepth %d", depth, w.decisionDepth)
	}
	if depth < 1 {
		t.Errorf("conflictDepth() = %d, want at least 1 (two neighbours were decided)", depth)
	}
}

func TestEffectiveBackjumpDisablesDepthTracking(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3).SetPeriod(1) // Backjump defaults to false
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.backjump {
		t.Fatal("backjump should be disabled by default")
	}
	if w.lastConflictDepth != -1 {
		t.Errorf("lastConflictDepth = %d, want -1 (no info) when backjump is disabled", w.lastConflictDepth)
	}
}

package automaton

import "testing"

func TestNewWorldStillLifeBlock(t *testing.T) {
	cfg := NewConfig().
		SetSize(4, 4).
		SetPeriod(1).
		SetKnownCells([]KnownCell{
			{X: 1, Y: 1, T: 0, State: Alive},
			{X: 2, Y: 1, T: 0, State: Alive},
			{X: 1, Y: 2, T: 0, State: Alive},
			{X: 2, Y: 2, T: 0, State: Alive},
		})

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.Status() == StatusNone {
		t.Fatal("a 2x2 block is a valid still life, should not be immediately rejected")
	}
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		s, ok := w.Cell(p[0], p[1], 0)
		if !ok || s != Alive {
			t.Errorf("Cell(%d,%d) = (%v,%v), want (Alive,true)", p[0], p[1], s, ok)
		}
	}
}

func TestNewWorldKnownCellConflict(t *testing.T) {
	cfg := NewConfig().
		SetSize(2, 2).
		SetPeriod(1).
		SetDiagonalWidth(1).
		SetKnownCells([]KnownCell{{X: 1, Y: 0, T: 0, State: Alive}})

	if _, err := NewWorld(cfg); err == nil {
		t.Error("expected a ConfigError for a known cell outside the diagonal band")
	}
}

func TestSetCellRejectsConflictingValue(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3).SetPeriod(1)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	id := w.cellIndex(0, 0, 0)
	if !w.setCell(id, Alive, Reason{Kind: ReasonDecided}) {
		t.Fatal("first setCell on an unknown cell should succeed")
	}
	if w.setCell(id, Dead, Reason{Kind: ReasonDecided}) {
		t.Error("setCell with a conflicting value should fail")
	}
	if !w.setCell(id, Alive, Reason{Kind: ReasonDecided}) {
		t.Error("setCell with the same value should be a harmless no-op success")
	}
}

func TestClearCellUndoesSetCell(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3).SetPeriod(1)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	id := w.cellIndex(1, 1, 0)
	before := w.cells[w.cellIndex(0, 1, 0)].desc
	mark := len(w.trail)
	if !w.setCell(id, Alive, Reason{Kind: ReasonDecided}) {
		t.Fatal("setCell failed")
	}
	w.undoTo(mark)
	if s, ok := w.Cell(1, 1, 0); ok {
		t.Errorf("Cell(1,1,0) = (%v,%v) after undo, want unknown", s, ok)
	}
	after := w.cells[w.cellIndex(0, 1, 0)].desc
	if before != after {
		t.Errorf("neighbour descriptor not restored: before=%d after=%d", before, after)
	}
	if n := w.minCellCount(); n != 0 {
		t.Errorf("minCellCount() = %d after undo, want 0", n)
	}
}

func TestSymmetryCascade(t *testing.T) {
	cfg := NewConfig().SetSize(4, 4).SetPeriod(1).SetSymmetry(D2Row)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	id := w.cellIndex(1, 0, 0)
	if !w.setCell(id, Alive, Reason{Kind: ReasonDecided}) {
		t.Fatal("setCell failed")
	}
	peerX, peerY := FlipRow.apply2(1, 0, 4, 4)
	s, ok := w.Cell(peerX, peerY, 0)
	if !ok || s != Alive {
		t.Errorf("symmetry peer (%d,%d) = (%v,%v), want (Alive,true)", peerX, peerY, s, ok)
	}
}

package automaton

import "testing"

func TestHasProperSubperiod(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3).SetPeriod(4)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	// Fill every generation identically: a period-4 search trivially
	// repeats with period 1.
	for t2 := 0; t2 < 4; t2++ {
		if !w.setCell(w.cellIndex(1, 1, t2), Alive, Reason{Kind: ReasonDecided}) {
			t.Fatalf("setCell(1,1,%d) failed", t2)
		}
	}
	if !w.hasProperSubperiod() {
		t.Error("hasProperSubperiod() = false, want true for an all-generations-identical pattern")
	}
}

func TestHasProperSubperiodRespectsNonIdentityTransform(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3).SetPeriod(2).SetTransform(FlipRow)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	// Scope restriction: transform-composed subperiods are never detected.
	if w.hasProperSubperiod() {
		t.Error("hasProperSubperiod() should only ever consider Transform == Identity")
	}
}

func TestInvariantUnderDetectsExtraSymmetry(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3).SetPeriod(1) // C1: no declared symmetry
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	// A single live cell dead-centre is invariant under every transform.
	if !w.setCell(w.cellIndex(1, 1, 0), Alive, Reason{Kind: ReasonDecided}) {
		t.Fatal("setCell failed")
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == 1 && y == 1 {
				continue
			}
			if !w.setCell(w.cellIndex(x, y, 0), Dead, Reason{Kind: ReasonDecided}) {
				t.Fatalf("setCell(%d,%d) failed", x, y)
			}
		}
	}
	if !w.invariantUnder(Rotate90) {
		t.Error("single centre cell should be invariant under Rotate90")
	}
	if !w.hasExtraSymmetry() {
		t.Error("hasExtraSymmetry() = false, want true (C1 search found a fully symmetric pattern)")
	}
}

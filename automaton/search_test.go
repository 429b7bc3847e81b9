package automaton

import "testing"

// TestSearchTriviallyUnsatisfiable mirrors scenario 2: a 3x3 still life
// translating by (1,0) under Conway's Life, capped at one live cell, has
// no solution — a single cell can never satisfy B3/S23 on its own.
func TestSearchTriviallyUnsatisfiable(t *testing.T) {
	cfg := NewConfig().
		SetSize(3, 3).
		SetPeriod(1).
		SetTranslate(1, 0).
		SetSymmetry(C1).
		SetMaxCellCount(1)

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if got := w.Search(); got != StatusNone {
		t.Errorf("Search() = %v, want %v", got, StatusNone)
	}
}

// TestSearchSkipSubperiodRejectsAllDead mirrors scenario 3: on a 3x3
// period-2 board with skip_subperiod set, the only period-2 solution
// the naive search would otherwise accept is the all-dead grid (which
// is really a period-1 solution), so the filtered search reports None.
func TestSearchSkipSubperiodRejectsAllDead(t *testing.T) {
	cfg := NewConfig().
		SetSize(3, 3).
		SetPeriod(2).
		SetSymmetry(C1).
		SetSkipSubperiod(true).
		SetMaxCellCount(0)

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	got := w.Search()
	if got == StatusFound {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if s, ok := w.Cell(x, y, 0); ok && s == Alive {
					t.Fatalf("skip_subperiod let through an all-dead-equivalent oscillator: live cell at (%d,%d)", x, y)
				}
			}
		}
	}
}

// TestSearchSymmetryRestriction mirrors scenario 4: every still life
// found under D8 symmetry must be invariant under horizontal, vertical,
// and 180-degree reflection/rotation.
func TestSearchSymmetryRestriction(t *testing.T) {
	cfg := NewConfig().
		SetSize(7, 7).
		SetPeriod(1).
		SetSymmetry(D8).
		SetMaxStep(200000)

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	status := w.Search()
	if status == StatusSearching {
		t.Skip("search did not converge within the step budget")
	}
	if status != StatusFound {
		t.Fatalf("Search() = %v, want %v", status, StatusFound)
	}
	for _, tr := range []Transform{FlipRow, FlipCol, Rotate180} {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				nx, ny := tr.apply2(x, y, 7, 7)
				v1, _ := w.Cell(x, y, 0)
				v2, _ := w.Cell(nx, ny, 0)
				if v1 != v2 {
					t.Errorf("D8 solution not invariant under %v at (%d,%d): %v vs %v", tr, x, y, v1, v2)
				}
			}
		}
	}
}

// TestSearchDiagonalWidth mirrors scenario 6: with diagonal_width=4,
// every emitted solution is Dead at every cell with |x-y| >= 4.
func TestSearchDiagonalWidth(t *testing.T) {
	cfg := NewConfig().
		SetSize(10, 10).
		SetPeriod(1).
		SetDiagonalWidth(4).
		SetMaxStep(200000)

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	status := w.Search()
	if status == StatusSearching {
		t.Skip("search did not converge within the step budget")
	}
	if status != StatusFound {
		t.Fatalf("Search() = %v, want %v", status, StatusFound)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x-y >= 4 || y-x >= 4 {
				if s, ok := w.Cell(x, y, 0); ok && s != Dead {
					t.Errorf("cell (%d,%d) outside diagonal band is %v, want Dead", x, y, s)
				}
			}
		}
	}
}

// TestSearchGenerations mirrors scenario 5: a 5-state Generations search
// (Dead, Alive, Dying1, Dying2, Dying3) over a small board finds a
// still life and every reported cell stays within that state range.
func TestSearchGenerations(t *testing.T) {
	base := NewTotalisticRule("B3/S23", [9]bool{3: true}, [9]bool{2: true, 3: true})
	rule := NewGenerationsRule("B3/S23/G5", 5, base)

	cfg := NewConfig().
		SetSize(6, 6).
		SetPeriod(1).
		SetRule(rule).
		SetMaxStep(100000)

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	status := w.Search()
	if status == StatusSearching {
		t.Skip("search did not converge within the step budget")
	}
	if status != StatusFound {
		t.Fatalf("Search() = %v, want %v", status, StatusFound)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			s, ok := w.Cell(x, y, 0)
			if !ok {
				t.Fatalf("cell (%d,%d) left undecided in a Found solution", x, y)
			}
			if uint8(s) >= rule.NumStates() {
				t.Errorf("cell (%d,%d) = %v, outside the rule's %d states", x, y, s, rule.NumStates())
			}
		}
	}
}

// TestSearch25P3H1V0 mirrors scenario 1: a known small spaceship of
// Conway's Life, period 3 translating by (0,1) on a 16x5 board.
func TestSearch25P3H1V0(t *testing.T) {
	cfg := NewConfig().
		SetSize(16, 5).
		SetPeriod(3).
		SetTranslate(0, 1).
		SetMaxStep(500000)

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	status := w.Search()
	if status == StatusSearching {
		t.Skip("search did not converge within the step budget")
	}
	if status != StatusFound {
		t.Fatalf("Search() = %v, want %v", status, StatusFound)
	}

	// t=1 is exactly t=0 evolved one tick by B3/S23 (the pred/succ links
	// enforce this within a period); checking it independently verifies
	// the transition table was applied correctly.
	life := func(x, y int) bool {
		s, _ := w.Cell(x, y, 0)
		return s == Alive
	}
	count := func(x, y int) int {
		n := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= 16 || ny < 0 || ny >= 5 {
					continue
				}
				if life(nx, ny) {
					n++
				}
			}
		}
		return n
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 16; x++ {
			n := count(x, y)
			want := (n == 3) || (life(x, y) && n == 2)
			gotState, _ := w.Cell(x, y, 1)
			got := gotState == Alive
			if got != want {
				t.Errorf("tick mismatch at (%d,%d): evolved=%v, reported t=1=%v", x, y, want, got)
			}
		}
	}
}

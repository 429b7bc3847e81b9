package automaton

import "testing"

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := NewConfig().
		SetSize(3, 3).
		SetPeriod(1).
		SetMaxStep(2) // stop mid-search so the trail has real Decided entries

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Search()

	snap := w.Save()
	if snap.Version != snapshotVersion {
		t.Errorf("Save().Version = %d, want %d", snap.Version, snapshotVersion)
	}

	loaded, err := Load(snap, snap.Config)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			wantS, wantOK := w.Cell(x, y, 0)
			gotS, gotOK := loaded.Cell(x, y, 0)
			if wantOK != gotOK || (wantOK && wantS != gotS) {
				t.Errorf("cell (%d,%d): want (%v,%v), got (%v,%v)", x, y, wantS, wantOK, gotS, gotOK)
			}
		}
	}
	if loaded.minCellCount() != w.minCellCount() {
		t.Errorf("minCellCount() = %d, want %d", loaded.minCellCount(), w.minCellCount())
	}
}

func TestLoadRejectsMismatchedConfig(t *testing.T) {
	cfg := NewConfig().SetSize(3, 3)
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	snap := w.Save()

	other := NewConfig().SetSize(4, 4)
	if _, err := Load(snap, other); err == nil {
		t.Error("Load with mismatched size = nil error, want error")
	}
}

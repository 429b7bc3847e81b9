package automaton

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", NewConfig(), false},
		{"zero_width", NewConfig().SetSize(0, 5), true},
		{"zero_period", NewConfig().SetPeriod(0), true},
		{"symmetry_needs_square", NewConfig().SetSize(5, 7).SetSymmetry(D8), true},
		{"symmetry_square_ok", NewConfig().SetSize(7, 7).SetSymmetry(D8), false},
		{"diagonal_needs_square", NewConfig().SetSize(5, 7).SetSearchOrder(Diagonal), true},
		{"negative_diagonal_width", NewConfig().SetDiagonalWidth(-1), true},
		{"known_cell_out_of_range", NewConfig().AddKnownCell(KnownCell{X: 5, Y: 0, T: 0, State: Dead}), true},
		{"known_cell_bad_generation", NewConfig().AddKnownCell(KnownCell{X: 0, Y: 0, T: 1, State: Dead}), true},
		{"negative_max_cell_count", NewConfig().SetMaxCellCount(-1), true},
		{"from_vec_empty", NewConfig().SetSearchOrder(FromVec), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !test.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestEffectiveBackjump(t *testing.T) {
	life, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	gen, err := ParseRule("B3/S23/G3")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}

	tests := []struct {
		name string
		cfg  Config
		rule Rule
		want bool
	}{
		{"disabled_by_default", NewConfig(), life, false},
		{"enabled_life", NewConfig().SetBackjump(true), life, true},
		{"disabled_for_generations", NewConfig().SetBackjump(true), gen, false},
		{"disabled_with_cell_count_cap", NewConfig().SetBackjump(true).SetMaxCellCount(10), life, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.cfg.effectiveBackjump(test.rule); got != test.want {
				t.Errorf("effectiveBackjump() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestConfigBuilderChain(t *testing.T) {
	base := NewConfig()
	derived := base.SetSize(10, 10).SetPeriod(4).SetTranslate(1, 0)
	if base.Width != 1 || base.Period != 1 || base.Dx != 0 {
		t.Errorf("SetXxx mutated the receiver: base = %+v", base)
	}
	if derived.Width != 10 || derived.Period != 4 || derived.Dx != 1 {
		t.Errorf("derived = %+v", derived)
	}
}

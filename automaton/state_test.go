package automaton

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want string
	}{
		{"dead", Dead, "Dead"},
		{"alive", Alive, "Alive"},
		{"dying1", State(2), "Dying1"},
		{"dying2", State(3), "Dying2"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.s.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestStateNext(t *testing.T) {
	tests := []struct {
		name      string
		s         State
		numStates uint8
		want      State
	}{
		{"dead_binary", Dead, 2, Alive},
		{"alive_binary", Alive, 2, Dead},
		{"alive_wraps_to_dying", Alive, 5, State(2)},
		{"last_dying_wraps_to_dead", State(4), 5, Dead},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.s.Next(test.numStates); got != test.want {
				t.Errorf("Next(%d) = %v, want %v", test.numStates, got, test.want)
			}
		})
	}
}

func TestCellValue(t *testing.T) {
	if unknownValue.known {
		t.Error("unknownValue.known = true, want false")
	}
	v := knownValue(Alive)
	if !v.known || v.state != Alive {
		t.Errorf("knownValue(Alive) = %+v", v)
	}
	if got := unknownValue.String(); got != "Unknown" {
		t.Errorf("unknownValue.String() = %q", got)
	}
	if got := v.String(); got != "Alive" {
		t.Errorf("knownValue(Alive).String() = %q", got)
	}
}

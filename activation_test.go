package confetti

import "testing"

func TestActivationStartsIdle(t *testing.T) {
	a := NewActivation(false)
	if a.State() != StateIdle {
		t.Errorf("State = %v, want idle", a.State())
	}
	if a.Transitions() != 0 {
		t.Errorf("Transitions = %d, want 0", a.Transitions())
	}
}

func TestActivationActiveAtConstruction(t *testing.T) {
	a := NewActivation(true)
	if !a.Falling() {
		t.Fatal("expected Falling when constructed active")
	}
	if a.Observe(true) {
		t.Error("repeated true should not transition again")
	}
	if a.Transitions() != 1 {
		t.Errorf("Transitions = %d, want 1", a.Transitions())
	}
}

func TestActivationRisingEdgeOnce(t *testing.T) {
	a := NewActivation(false)

	if a.Observe(false) {
		t.Error("false -> false should not transition")
	}
	if !a.Observe(true) {
		t.Fatal("false -> true should transition")
	}
	if a.Observe(false) {
		t.Error("true -> false should not transition")
	}
	if a.Observe(true) {
		t.Error("second rising edge should not transition")
	}
	if a.State() != StateFalling {
		t.Errorf("State = %v, want falling", a.State())
	}
	if a.Transitions() != 1 {
		t.Errorf("Transitions = %d, want 1", a.Transitions())
	}
}

func TestActivationNeverReturnsToIdle(t *testing.T) {
	inputs := []bool{true, false, false, true, true, false, true, false}
	a := NewActivation(false)
	for i, in := range inputs {
		a.Observe(in)
		if a.State() != StateFalling {
			t.Fatalf("step %d (active=%v): State = %v, want falling", i, in, a.State())
		}
	}
	if a.Transitions() != 1 {
		t.Errorf("Transitions = %d, want 1", a.Transitions())
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateFalling.String() != "falling" {
		t.Errorf("got %q, %q", StateIdle.String(), StateFalling.String())
	}
}

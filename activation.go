package confetti

// Activation is the one-way Idle -> Falling switch driven by the host's
// active flag. It is evaluated once at construction and afterwards reacts
// only to a false -> true edge while Idle. Falling is terminal.
type Activation struct {
	state       State
	last        bool
	transitions int
}

// NewActivation returns a machine that is already Falling when active is true.
func NewActivation(active bool) Activation {
	a := Activation{last: active}
	if active {
		a.fire()
	}
	return a
}

// Observe feeds the host's current active flag. It reports whether this call
// caused the Idle -> Falling transition.
func (a *Activation) Observe(active bool) bool {
	rising := active && !a.last
	a.last = active
	if rising && a.state == StateIdle {
		a.fire()
		return true
	}
	return false
}

func (a *Activation) fire() {
	a.state = StateFalling
	a.transitions++
}

// State returns the current state.
func (a *Activation) State() State { return a.state }

// Falling reports whether the transition has happened.
func (a *Activation) Falling() bool { return a.state == StateFalling }

// Transitions returns how many times the machine has left Idle: 0 or 1.
func (a *Activation) Transitions() int { return a.transitions }

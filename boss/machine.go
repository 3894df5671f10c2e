package boss

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// StateMachine owns the current phase and runs its per-tick behavior.
type StateMachine struct {
	fsm     *fsm.FSM
	states  map[Phase]phaseState
	current Phase
	frozen  bool

	// onChange fires after the new phase's entry actions.
	onChange func(from, to Phase)
}

func newStateMachine(onChange func(from, to Phase)) *StateMachine {
	return &StateMachine{
		fsm: fsm.NewFSM(PhaseFollow.String(), transitions, fsm.Callbacks{}),
		states: map[Phase]phaseState{
			PhaseFollow:     &followState{},
			PhaseAttack:     &attackState{},
			PhaseVulnerable: &vulnerableState{},
		},
		current:  PhaseFollow,
		onChange: onChange,
	}
}

// Current is the active phase. After defeat it stays at the last phase.
func (m *StateMachine) Current() Phase { return m.current }

// Frozen reports whether ticking has been permanently disabled.
func (m *StateMachine) Frozen() bool { return m.frozen }

func (m *StateMachine) start(a *Agent) {
	m.states[m.current].enter(a)
}

func (m *StateMachine) step(a *Agent, dt float64) {
	if m.frozen {
		return
	}
	m.states[m.current].step(a, dt)
}

// freeze stops all further ticking and transitions.
func (m *StateMachine) freeze() {
	m.frozen = true
}

// TransitionTo runs exit(current), switches to next and runs enter(next).
func (m *StateMachine) TransitionTo(a *Agent, next Phase) error {
	if m.frozen {
		return ErrDefeated
	}
	if !next.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPhase, int(next))
	}
	if !m.fsm.Can(next.String()) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.current, next)
	}

	prev := m.current
	m.states[prev].exit(a)
	if err := m.fsm.Event(context.Background(), next.String()); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", ErrIllegalTransition, prev, next, err)
	}
	m.current = next
	m.states[next].enter(a)
	if m.onChange != nil {
		m.onChange(prev, next)
	}
	return nil
}

// mustTransition is used by phase logic, where a refused transition means
// the table and the phases disagree.
func (m *StateMachine) mustTransition(a *Agent, next Phase) {
	if err := m.TransitionTo(a, next); err != nil {
		panic(err)
	}
}

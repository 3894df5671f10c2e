package boss

import (
	"fmt"
	"strings"

	"github.com/looplab/fsm"
)

// Phase is the boss's behavior mode.
type Phase int

const (
	PhaseFollow Phase = iota
	PhaseAttack
	PhaseVulnerable
)

var phaseNames = [...]string{
	PhaseFollow:     "follow",
	PhaseAttack:     "attack",
	PhaseVulnerable: "vulnerable",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Valid reports whether p is one of the declared phases.
func (p Phase) Valid() bool {
	return p >= 0 && int(p) < len(phaseNames)
}

// ParsePhase resolves a phase by name. Names are case-insensitive and an
// optional "State" suffix is accepted ("AttackState").
func ParsePhase(name string) (Phase, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "state")
	for i, n := range phaseNames {
		if n == key {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, name)
}

// transitions is the complete table of legal phase changes. Each event is
// named after its destination.
var transitions = fsm.Events{
	{Name: PhaseAttack.String(), Src: []string{PhaseFollow.String(), PhaseVulnerable.String()}, Dst: PhaseAttack.String()},
	{Name: PhaseVulnerable.String(), Src: []string{PhaseAttack.String()}, Dst: PhaseVulnerable.String()},
}

// CanTransition reports whether the table allows from -> to.
func CanTransition(from, to Phase) bool {
	for _, e := range transitions {
		if e.Dst != to.String() {
			continue
		}
		for _, src := range e.Src {
			if src == from.String() {
				return true
			}
		}
	}
	return false
}

// phaseState is the per-phase behavior run by the StateMachine.
type phaseState interface {
	enter(a *Agent)
	step(a *Agent, dt float64)
	exit(a *Agent)
}

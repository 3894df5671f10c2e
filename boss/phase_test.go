package boss

import (
	"errors"
	"testing"
)

func TestParsePhase(t *testing.T) {
	cases := []struct {
		in      string
		want    Phase
		wantErr bool
	}{
		{"follow", PhaseFollow, false},
		{"AttackState", PhaseAttack, false},
		{" Vulnerable ", PhaseVulnerable, false},
		{"VULNERABLESTATE", PhaseVulnerable, false},
		{"defeated", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParsePhase(c.in)
			if c.wantErr {
				if !errors.Is(err, ErrUnknownPhase) {
					t.Fatalf("expected ErrUnknownPhase, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("ParsePhase(%q) = %v, %v; want %v", c.in, got, err, c.want)
			}
		})
	}
}

func TestTransitionTable(t *testing.T) {
	allowed := map[[2]Phase]bool{
		{PhaseFollow, PhaseAttack}:     true,
		{PhaseAttack, PhaseVulnerable}: true,
		{PhaseVulnerable, PhaseAttack}: true,
	}
	phases := []Phase{PhaseFollow, PhaseAttack, PhaseVulnerable}
	for _, from := range phases {
		for _, to := range phases {
			want := allowed[[2]Phase{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestRequestPhaseErrors(t *testing.T) {
	r := newRig(t, 10, nil)

	if err := r.agent.RequestPhase("sleep"); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase, got %v", err)
	}
	if err := r.agent.RequestPhase("vulnerable"); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if r.agent.Phase() != PhaseFollow {
		t.Fatalf("refused transition changed the phase to %s", r.agent.Phase())
	}
	if err := r.agent.RequestPhase("follow"); err != nil {
		t.Fatalf("requesting the current phase should be a no-op, got %v", err)
	}
	if err := r.agent.Machine().TransitionTo(r.agent, Phase(7)); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase for out of range phase, got %v", err)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseAttack.String() != "attack" || Phase(9).String() != "phase(9)" {
		t.Fatalf("unexpected names %q %q", PhaseAttack, Phase(9))
	}
	if Phase(-1).Valid() || !PhaseVulnerable.Valid() {
		t.Fatalf("Valid disagrees with the declared phases")
	}
}

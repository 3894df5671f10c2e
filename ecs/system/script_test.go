package system

import (
	"testing"

	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

const testEncounterScript = `
on_event := func(name, data, state) {
	if name == "boss.landed" {
		state.landings = is_undefined(state.landings) ? 1 : state.landings + 1
		return {banner: "landed " + string(data.jump), seconds: 1.5}
	}
	if name == "boss.spotted" {
		return {phase: "attack"}
	}
	if name == "boss.damaged" {
		return {phase: "sleeping"}
	}
	return undefined
}
`

func TestEncounterScriptSystem(t *testing.T) {
	tests := []struct {
		name       string
		events     []ecs.Event
		wantBanner string
		wantPhase  boss.Phase
		wantState  int64
	}{
		{
			name:       "landing_banner_and_state",
			events:     []ecs.Event{{Type: ecs.EventBossLanded, Data: 2}, {Type: ecs.EventBossLanded, Data: 3}},
			wantBanner: "landed 3",
			wantPhase:  boss.PhaseFollow,
			wantState:  2,
		},
		{
			name:      "phase_request",
			events:    []ecs.Event{{Type: ecs.EventBossSpotted}},
			wantPhase: boss.PhaseAttack,
		},
		{
			name:      "unknown_phase_is_ignored",
			events:    []ecs.Event{{Type: ecs.EventBossDamaged, Data: 1}},
			wantPhase: boss.PhaseFollow,
		},
		{
			name:      "unhandled_event_types_skip",
			events:    []ecs.Event{{Type: "camera.shake"}},
			wantPhase: boss.PhaseFollow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, agent, err := SpawnBoss(w, BossSpawn{Stats: boss.DefaultStats(), MaxHP: 10})
			if err != nil {
				t.Fatalf("spawn boss: %v", err)
			}
			s, err := NewEncounterScriptSystemFromSource("test", []byte(testEncounterScript))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}

			for _, ev := range tc.events {
				w.Events().Push(ev)
			}
			ecs.NewScheduler(s).Update(w)

			text, shown := CurrentBanner(w)
			if tc.wantBanner == "" && shown {
				t.Fatalf("expected no banner, got %q", text)
			}
			if tc.wantBanner != "" {
				if text != tc.wantBanner {
					t.Fatalf("expected banner %q, got %q", tc.wantBanner, text)
				}
				_, b, _ := ecs.First(w, component.BannerComponent.Kind())
				if b.Remaining != 1.5 {
					t.Fatalf("expected banner duration 1.5, got %v", b.Remaining)
				}
			}
			if agent.Phase() != tc.wantPhase {
				t.Fatalf("expected phase %s, got %s", tc.wantPhase, agent.Phase())
			}
			if tc.wantState != 0 {
				if got, _ := s.State()["landings"].(int64); got != tc.wantState {
					t.Fatalf("expected landings %d, got %v", tc.wantState, s.State()["landings"])
				}
			}
		})
	}
}

func TestEncounterScriptReload(t *testing.T) {
	s, err := NewEncounterScriptSystemFromSource("test", []byte(testEncounterScript))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := s.Reload([]byte("on_event := func(")); err == nil {
		t.Fatalf("expected compile error")
	}

	w := ecs.NewWorld()
	w.Events().Push(ecs.Event{Type: ecs.EventBossLanded, Data: 1})
	s.Update(w)
	if text, ok := CurrentBanner(w); !ok || text != "landed 1" {
		t.Fatalf("expected previous script to stay active, banner=%q", text)
	}

	if _, err := NewEncounterScriptSystemFromSource("bare", []byte("x := 1")); err == nil {
		t.Fatalf("expected error for script without on_event")
	}
}

func TestEmbeddedEncounterScriptCompiles(t *testing.T) {
	s, err := NewEncounterScriptSystem("encounter.tengo")
	if err != nil {
		t.Fatalf("load embedded script: %v", err)
	}

	w := ecs.NewWorld()
	w.Events().Push(ecs.Event{Type: ecs.EventBossPhase, Data: ecs.PhaseChange{From: "attack", To: "vulnerable"}})
	s.Update(w)
	if _, ok := CurrentBanner(w); !ok {
		t.Fatalf("expected a banner when the boss becomes vulnerable")
	}
}

func TestBannerCountsDown(t *testing.T) {
	w := ecs.NewWorld()
	ShowBanner(w, "hello", 0.5)
	ShowBanner(w, "again", 0.5)
	sched := ecs.NewScheduler(NewBannerSystem(0.25))

	sched.Update(w)
	if text, ok := CurrentBanner(w); !ok || text != "again" {
		t.Fatalf("expected replaced banner still showing, got %q ok=%v", text, ok)
	}
	sched.Update(w)
	if _, ok := CurrentBanner(w); ok {
		t.Fatalf("expected banner hidden after its time")
	}
}

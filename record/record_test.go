package record

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("slimeboss_test_%d", time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestStorePersists(t *testing.T) {
	m := openTestManager(t)
	s := NewStore(m)
	if !s.Persistent() {
		t.Fatalf("expected a persistent store")
	}

	outcomes := []Outcome{
		{Result: ResultDefeat, Seconds: 30},
		{Result: ResultVictory, Seconds: 90, Jumps: 9, Stuns: 3},
		{Result: ResultVictory, Seconds: 75},
	}
	for _, o := range outcomes {
		if err := s.Add(o); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	reopened := NewStore(m)
	got := reopened.Summary()
	if got.Attempts != 3 || got.Victories != 2 || got.Defeats != 1 {
		t.Fatalf("unexpected summary %+v", got)
	}
	if got.FastestVictory != 75 {
		t.Fatalf("expected fastest victory 75, got %v", got.FastestVictory)
	}
	if len(got.History) != 3 || got.History[1].Jumps != 9 {
		t.Fatalf("unexpected history %+v", got.History)
	}
}

func TestStoreHistoryLimit(t *testing.T) {
	s := NewStore(nil)
	for i := 0; i < HistoryLimit+5; i++ {
		if err := s.Add(Outcome{Result: ResultDefeat, Seconds: float64(i)}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	h := s.Summary().History
	if len(h) != HistoryLimit {
		t.Fatalf("expected %d outcomes kept, got %d", HistoryLimit, len(h))
	}
	if h[0].Seconds != 5 {
		t.Fatalf("expected oldest outcomes dropped, first=%v", h[0].Seconds)
	}
	if s.Persistent() {
		t.Fatalf("expected in-memory store")
	}
}

func TestTracker(t *testing.T) {
	tests := []struct {
		name   string
		events []ecs.Event
		want   Result
	}{
		{
			name: "victory",
			events: []ecs.Event{
				{Type: ecs.EventBossLanded, Data: 1},
				{Type: ecs.EventBossPhase, Data: ecs.PhaseChange{From: "attack", To: "vulnerable"}},
				{Type: ecs.EventBossDefeated},
			},
			want: ResultVictory,
		},
		{
			name:   "defeat",
			events: []ecs.Event{{Type: ecs.EventPlayerDied}},
			want:   ResultDefeat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := ecs.CreateEntity(w)
			_ = ecs.Add(w, p, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
			_ = ecs.Add(w, p, component.HealthComponent.Kind(), component.NewHealth(5, 0))

			store := NewStore(nil)
			tr := NewTracker(store, 0.5)
			tr.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
			sched := ecs.NewScheduler(tr)

			sched.Update(w)
			for _, ev := range tc.events {
				w.Events().Push(ev)
			}
			sched.Update(w)
			w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated})
			sched.Update(w)

			if !tr.Done() {
				t.Fatalf("expected tracker done")
			}
			sum := store.Summary()
			if sum.Attempts != 1 || len(sum.History) != 1 {
				t.Fatalf("expected exactly one recorded outcome, got %+v", sum)
			}
			o := sum.History[0]
			if o.Result != tc.want || o.Seconds != 1 || o.PlayerHP != 5 || o.BossHP != 0 {
				t.Fatalf("unexpected outcome %+v", o)
			}
			if tc.want == ResultVictory && (o.Jumps != 1 || o.Stuns != 1) {
				t.Fatalf("expected counted jumps and stuns, got %+v", o)
			}
		})
	}
}

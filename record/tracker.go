package record

import (
	"log"
	"time"

	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// Tracker watches encounter events and records the outcome once.
type Tracker struct {
	store   *Store
	dt      float64
	elapsed float64
	jumps   int
	stuns   int
	done    bool
	now     func() time.Time
}

func NewTracker(store *Store, dt float64) *Tracker {
	return &Tracker{store: store, dt: dt, now: time.Now}
}

func (t *Tracker) Update(w *ecs.World) {
	if t == nil || t.done || w == nil {
		return
	}
	t.elapsed += t.dt

	for _, ev := range w.Events().Items() {
		switch ev.Type {
		case ecs.EventBossLanded:
			t.jumps++
		case ecs.EventBossPhase:
			if change, ok := ev.Data.(ecs.PhaseChange); ok && change.To == "vulnerable" {
				t.stuns++
			}
		case ecs.EventBossDefeated:
			t.finish(w, ResultVictory)
		case ecs.EventPlayerDied:
			t.finish(w, ResultDefeat)
		}
		if t.done {
			return
		}
	}
}

func (t *Tracker) finish(w *ecs.World, result Result) {
	t.done = true
	o := Outcome{
		Result:   result,
		Seconds:  t.elapsed,
		BossHP:   healthOf(w, component.BossTagComponent.Kind()),
		PlayerHP: healthOf(w, component.PlayerTagComponent.Kind()),
		Jumps:    t.jumps,
		Stuns:    t.stuns,
		At:       t.now().UTC(),
	}
	if t.store == nil {
		return
	}
	if err := t.store.Add(o); err != nil {
		log.Printf("record: %v", err)
		return
	}
	log.Printf("record: %s after %.1fs (%d jumps, %d stuns)", o.Result, o.Seconds, o.Jumps, o.Stuns)
}

// Done reports whether the outcome has been recorded.
func (t *Tracker) Done() bool { return t != nil && t.done }

func healthOf[T any](w *ecs.World, tag component.ComponentKind[T]) int {
	e, _, ok := ecs.First(w, tag)
	if !ok {
		return 0
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	return h.Current()
}

package ecs

import "testing"

type recordingSystem struct {
	name string
	log  *[]string
	push *Event
	seen *[]int
}

func (s *recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	if s.seen != nil {
		*s.seen = append(*s.seen, len(w.Events().Items()))
	}
	if s.push != nil {
		w.Events().Push(*s.push)
	}
}

func TestSchedulerOrderAndEventLifetime(t *testing.T) {
	w := NewWorld()
	var log []string
	var seen []int

	s := NewScheduler(
		&recordingSystem{name: "a", log: &log, push: &Event{Type: EventBossLanded, Data: 1}},
		nil,
		&recordingSystem{name: "b", log: &log, seen: &seen},
	)
	if got := len(s.Systems()); got != 2 {
		t.Fatalf("expected nil systems to be skipped, got %d systems", got)
	}

	s.Update(w)
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Fatalf("expected registration order, got %v", log)
	}
	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("expected later system to see the pushed event, got %v", seen)
	}
	if items := w.Events().Items(); len(items) != 0 {
		t.Fatalf("expected events flushed after the frame, got %d", len(items))
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventBossPhase, Data: PhaseChange{From: "follow", To: "attack"}})
	q.Push(Event{Type: EventPlayerHit})

	if len(q.Items()) != 2 {
		t.Fatalf("expected two queued events")
	}
	out := q.Drain()
	if len(out) != 2 || out[0].Type != EventBossPhase {
		t.Fatalf("unexpected drain result %+v", out)
	}
	if change, ok := out[0].Data.(PhaseChange); !ok || change.To != "attack" {
		t.Fatalf("unexpected payload %+v", out[0].Data)
	}
	if q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}

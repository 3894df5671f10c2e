package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Event types pushed by the encounter systems.
const (
	EventBossPhase    = "boss.phase"
	EventBossSpotted  = "boss.spotted"
	EventBossEscaped  = "boss.escaped"
	EventBossLanded   = "boss.landed"
	EventBossDamaged  = "boss.damaged"
	EventBossDefeated = "boss.defeated"
	EventPlayerHit    = "player.hit"
	EventPlayerDied   = "player.died"
)

// PhaseChange is the payload of EventBossPhase.
type PhaseChange struct {
	Entity Entity
	From   string
	To     string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the queued events without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventHit       = "hit"
	EventHurt      = "hurt"
	EventDeath     = "death"
	EventSpawned   = "spawned"
	EventDestroyed = "destroyed"
	EventPickup    = "pickup"
	EventAttack    = "attack"
)

// HitEvent is emitted when a swing damaged at least one target.
type HitEvent struct {
	Attacker Entity
	Targets  []Entity
}

// HurtEvent is emitted when a target takes damage and survives.
type HurtEvent struct {
	Entity  Entity
	Amount  int
	Current int
}

// DeathEvent is emitted exactly once when an entity's health reaches zero.
type DeathEvent struct {
	Entity Entity
}

// AttackEvent is emitted whenever an accepted attack swing starts.
type AttackEvent struct {
	Attacker Entity
}

// SpawnedEvent is emitted for every entity the wave spawner places.
type SpawnedEvent struct {
	Entity Entity
	Wave   int
}

// DestroyedEvent is emitted when a scheduled destruction runs.
type DestroyedEvent struct {
	Entity Entity
}

// PickupEvent is emitted when a pickup is consumed.
type PickupEvent struct {
	Collector Entity
	Pickup    Entity
	Kind      string
	Value     int
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// OfType returns the queued events with the given type.
func (q *EventQueue) OfType(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

package ecs

// Event types consumed by the spawn, parenting, and persistence systems.
const (
	EventSpawn        = "spawn"
	EventParentChange = "parent-change"
	EventSave         = "save"
	EventLoad         = "load"
)

// Event is a queued request payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a FIFO queue drained by type. Each event is consumed at most
// once, by the first system that drains its type.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// DrainType removes and returns the payloads of all queued events of the
// given type, preserving order. Other events stay queued.
func (q *EventQueue) DrainType(typ string) []any {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []any
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt.Data)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

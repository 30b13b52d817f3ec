package sim

import "sync"

type EventKind uint8

const (
	EventAimStart EventKind = iota
	EventAimUpdate
	EventMoveUp
)

func (k EventKind) String() string {
	switch k {
	case EventAimStart:
		return "aim_start"
	case EventAimUpdate:
		return "aim_update"
	case EventMoveUp:
		return "move_up"
	default:
		return "unknown"
	}
}

// Event is one queued host request. X is the pointer x in world units for
// aim events.
type Event struct {
	Kind EventKind
	X    float64
}

// inputQueue collects events from any goroutine until the next tick drains
// them.
type inputQueue struct {
	mu     sync.Mutex
	events []Event
}

func (q *inputQueue) push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// drain appends the queued events to dst in arrival order and empties the
// queue.
func (q *inputQueue) drain(dst []Event) []Event {
	q.mu.Lock()
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return dst
}

func (q *inputQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

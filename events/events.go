// Package events queues window input so it can be consumed once per frame
// on the render thread instead of mutating GL state from callbacks.
package events

import "sync"

type Kind int

const (
	KeyPress Kind = iota
	Resize
)

// Key is a platform-independent key code. Only the keys the scenes react
// to are named; everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyF
)

type Event struct {
	Kind   Kind
	Key    Key
	Width  int
	Height int
}

// Queue is a FIFO of pending events.
type Queue struct {
	mu      sync.Mutex
	pending []Event
}

func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
}

// Drain returns the queued events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Action is what the render loop does in response to an event.
type Action int

const (
	None Action = iota
	Close
	Wireframe
	Fill
	Viewport
)

var keyActions = map[Key]Action{
	KeyEscape: Close,
	KeyW:      Wireframe,
	KeyF:      Fill,
}

// ActionFor maps an event to the render-loop action it triggers.
func ActionFor(e Event) Action {
	switch e.Kind {
	case KeyPress:
		return keyActions[e.Key]
	case Resize:
		return Viewport
	}
	return None
}

package game

// EventKind identifies what changed in a session.
type EventKind string

const (
	EventBoard EventKind = "board" // Board holds the new snapshot.
	EventInput EventKind = "input" // Input holds the new buffer.
	EventState EventKind = "state" // State holds the terminal state.
	EventError EventKind = "error" // Err holds the rejection reason.
)

// Event is delivered to listeners synchronously, before the mutating call returns.
type Event struct {
	Kind  EventKind
	Board Board
	State State
	Input string
	Err   error
}

// Listener receives session events.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers fn and returns a func that removes it.
// Listeners are called in subscription order.
func (s *Session) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) publish(e Event) {
	// Copy so a listener may cancel itself mid-delivery.
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(e)
	}
}

func (s *Session) publishBoard() {
	if len(s.subs) == 0 {
		return
	}
	s.publish(Event{Kind: EventBoard, Board: s.Board()})
}

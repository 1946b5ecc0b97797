package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
}

func (r *recorder) listen(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

func TestInputEvents(t *testing.T) {
	s := newTestSession(t)
	rec := &recorder{}
	s.Subscribe(rec.listen)

	s.AppendLetter("a")
	require.Equal(t, []EventKind{EventInput, EventBoard}, rec.kinds())
	assert.Equal(t, "A", rec.events[0].Input)
	assert.Equal(t, pendingRow(5, "A"), rec.events[1].Board[0])

	rec.reset()
	s.SetInput("a")
	assert.Empty(t, rec.events, "unchanged input is not re-published")

	s.RemoveLetter()
	assert.Equal(t, []EventKind{EventInput, EventBoard}, rec.kinds())

	rec.reset()
	s.RemoveLetter()
	s.AppendLetter("")
	assert.Empty(t, rec.events)
}

func TestAcceptEvents(t *testing.T) {
	s := newTestSession(t)
	typeWord(s, "abc")

	rec := &recorder{}
	s.Subscribe(rec.listen)

	assert.ErrorIs(t, s.AcceptCurrentInput(), ErrIncorrectLength)
	require.Equal(t, []EventKind{EventError}, rec.kinds())
	assert.ErrorIs(t, rec.events[0].Err, ErrIncorrectLength)

	rec.reset()
	s.SetInput("apple")
	rec.reset()
	require.NoError(t, s.AcceptCurrentInput())
	require.Equal(t, []EventKind{EventInput, EventBoard, EventState}, rec.kinds())
	assert.True(t, rec.events[1].Board[0].Flipped)
	assert.Equal(t, StateWon, rec.events[2].State)
}

func TestSubscribeCancel(t *testing.T) {
	s := newTestSession(t)
	first, second := &recorder{}, &recorder{}
	cancel := s.Subscribe(first.listen)
	s.Subscribe(second.listen)

	s.AppendLetter("a")
	cancel()
	cancel()
	s.AppendLetter("b")

	assert.Len(t, first.events, 2)
	assert.Len(t, second.events, 4)

	noop := s.Subscribe(nil)
	noop()
}

func TestListenerOrder(t *testing.T) {
	s := newTestSession(t)
	var order []int
	s.Subscribe(func(Event) { order = append(order, 1) })
	s.Subscribe(func(Event) { order = append(order, 2) })

	s.SetInput("x")
	assert.Equal(t, []int{1, 2, 1, 2}, order)
}

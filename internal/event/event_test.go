package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	added := &recorder{}
	removed := &recorder{}
	d.Subscribe(ShapeAdded, added)
	d.Subscribe(ShapeRemoved, removed)

	d.Dispatch(Event{Type: ShapeAdded, Data: 1})
	d.Dispatch(Event{Type: ShapeAdded, Data: 2})

	assert.Len(t, added.got, 2)
	assert.Equal(t, 2, added.got[1].Data)
	assert.Empty(t, removed.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, All...)
	d.Unsubscribe(ShapesMoved, r)

	d.Dispatch(Event{Type: ShapesMoved})
	d.Dispatch(Event{Type: StoreCleared})

	assert.Len(t, r.got, 1)
	assert.Equal(t, StoreCleared, r.got[0].Type)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.Subscribe(ModeChanged, ListenerFunc(func(Event) { count++ }))
	d.Dispatch(Event{Type: ModeChanged})
	assert.Equal(t, 1, count)
}

func TestDispatchWithoutListeners(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDispatcher().Dispatch(Event{Type: SelectionChanged})
	})
}

func TestUnsubscribeSkipsFuncListeners(t *testing.T) {
	d := NewDispatcher()
	count := 0
	f := ListenerFunc(func(Event) { count++ })
	r := &recorder{}
	d.Subscribe(ShapeAdded, f)
	d.Subscribe(ShapeAdded, r)

	assert.NotPanics(t, func() { d.Unsubscribe(ShapeAdded, f) })
	assert.NotPanics(t, func() { d.UnsubscribeAll(r, ShapeAdded, ShapeRemoved) })

	d.Dispatch(Event{Type: ShapeAdded})
	assert.Equal(t, 1, count, "func listeners stay subscribed")
	assert.Empty(t, r.got)
}

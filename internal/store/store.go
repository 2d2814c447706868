// internal/store/store.go

// Package store keeps the shapes of the canvas in insertion order.
// The store is the only owner of its shapes; callers refer to them by ID.
package store

import (
	"errors"
	"fmt"

	"circle-canvas/internal/event"
	"circle-canvas/internal/shape"
)

// ErrIndexOutOfRange is returned by RemoveAt for an index outside [0, Len).
var ErrIndexOutOfRange = errors.New("index out of range")

// ID is a stable handle to a stored shape. IDs are never reused.
type ID uint64

// SelectionChange is the payload of event.SelectionChanged.
type SelectionChange struct {
	ID       ID
	Selected bool
}

// Move is the payload of event.ShapesMoved.
type Move struct {
	IDs    []ID
	DX, DY float64
}

type entry struct {
	id    ID
	shape shape.Shape
}

type Store struct {
	entries    []entry
	nextID     ID
	dispatcher *event.Dispatcher
}

// New creates an empty store. dispatcher may be nil.
func New(dispatcher *event.Dispatcher) *Store {
	return &Store{nextID: 1, dispatcher: dispatcher}
}

func (s *Store) dispatch(t event.EventType, data interface{}) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}

// Add appends sh and takes ownership of it.
func (s *Store) Add(sh shape.Shape) ID {
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, entry{id: id, shape: sh})
	s.dispatch(event.ShapeAdded, id)
	return id
}

func (s *Store) Len() int { return len(s.entries) }

// At returns the shape at index i in store order.
func (s *Store) At(i int) (ID, shape.Shape, bool) {
	if i < 0 || i >= len(s.entries) {
		return 0, nil, false
	}
	e := s.entries[i]
	return e.id, e.shape, true
}

func (s *Store) IndexOf(id ID) int {
	for i, e := range s.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

// Get returns the shape for id. The shape must not be kept after the next mutation.
func (s *Store) Get(id ID) (shape.Shape, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.entries[i].shape, true
	}
	return nil, false
}

// Each calls fn for every shape in store order.
func (s *Store) Each(fn func(id ID, sh shape.Shape)) {
	for _, e := range s.entries {
		fn(e.id, e.shape)
	}
}

// RemoveAt removes the shape at index i.
func (s *Store) RemoveAt(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("remove at %d of %d: %w", i, len(s.entries), ErrIndexOutOfRange)
	}
	id := s.entries[i].id
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.dispatch(event.ShapeRemoved, id)
	return nil
}

func (s *Store) Remove(id ID) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	// индекс только что найден, ошибки быть не может
	_ = s.RemoveAt(i)
	return true
}

// SelectedIDs returns the selected shapes in store order.
func (s *Store) SelectedIDs() []ID {
	var ids []ID
	for _, e := range s.entries {
		if e.shape.Selected() {
			ids = append(ids, e.id)
		}
	}
	return ids
}

// DeleteSelected removes every selected shape and returns their IDs.
func (s *Store) DeleteSelected() []ID {
	selected := s.SelectedIDs()
	for _, id := range selected {
		s.Remove(id)
	}
	return selected
}

// Clear drops all shapes and reports how many there were.
func (s *Store) Clear() int {
	n := len(s.entries)
	s.entries = nil
	s.dispatch(event.StoreCleared, n)
	return n
}

// SetSelected changes the flag of id. It reports whether the flag changed.
func (s *Store) SetSelected(id ID, selected bool) bool {
	sh, ok := s.Get(id)
	if !ok || sh.Selected() == selected {
		return false
	}
	sh.SetSelected(selected)
	s.dispatch(event.SelectionChanged, SelectionChange{ID: id, Selected: selected})
	return true
}

// TranslateSelected shifts every selected shape and returns the moved IDs.
func (s *Store) TranslateSelected(dx, dy float64) []ID {
	ids := s.SelectedIDs()
	for _, id := range ids {
		sh, _ := s.Get(id)
		sh.Translate(dx, dy)
	}
	if len(ids) > 0 {
		s.dispatch(event.ShapesMoved, Move{IDs: ids, DX: dx, DY: dy})
	}
	return ids
}

// ItemsAt returns, front to back, the shapes whose bounding box holds p.
// Later shapes are drawn on top, so the order is reverse insertion order.
func (s *Store) ItemsAt(p shape.Point) []ID {
	var ids []ID
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].shape.Bounds().Contains(p) {
			ids = append(ids, s.entries[i].id)
		}
	}
	return ids
}

package store

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("not found")

// Listener is called after every update with the previous and the new state.
// It must not modify either.
type Listener[S any] func(prev, next S)

// Store is a single-writer container for a state value S. Clone must return
// a copy whose maps and slices can be written without touching the original.
type Store[S interface{ Clone() S }] struct {
	mu        sync.Mutex
	state     S
	initial   func() S
	listeners map[int]Listener[S]
	nextID    int
}

func New[S interface{ Clone() S }](initial func() S) *Store[S] {
	return &Store[S]{
		state:     initial(),
		initial:   initial,
		listeners: make(map[int]Listener[S]),
	}
}

// Get returns the current state. Callers must treat it as read-only.
func (s *Store[S]) Get() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies fn to a clone of the current state and publishes the result.
func (s *Store[S]) Update(fn func(state *S)) {
	s.mu.Lock()
	prev := s.state
	next := prev.Clone()
	fn(&next)
	s.state = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l(prev, next)
	}
}

// Reset restores the initial state.
func (s *Store[S]) Reset() {
	s.Update(func(state *S) {
		*state = s.initial()
	})
}

// Subscribe registers l and returns a function that removes it.
func (s *Store[S]) Subscribe(l Listener[S]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}

func (s *Store[S]) snapshotListeners() []Listener[S] {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Listener[S], 0, len(ids))
	for _, id := range ids {
		out = append(out, s.listeners[id])
	}
	return out
}

//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package session

// Store holds the values of one kind created in a session. The most
// recently added value is the current one.
type Store[T any] struct {
	items   []T
	current int
}

// Extend adds the value v to the store and makes it current.
func (s *Store[T]) Extend(v T) {
	s.items = append(s.items, v)
	s.current = len(s.items) - 1
}

// Len returns the number of values in the store.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Current returns the current value.
func (s *Store[T]) Current() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[s.current], true
}

// CurrentIndex returns the index of the current value.
func (s *Store[T]) CurrentIndex() int {
	return s.current
}

// Select makes the value at index current.
func (s *Store[T]) Select(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.current = index
	return true
}

// Items returns the store values.
func (s *Store[T]) Items() []T {
	return s.items
}

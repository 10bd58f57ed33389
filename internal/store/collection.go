// Package store holds the authoritative in-memory records behind the
// services. Callers outside the services never touch it directly.
package store

import (
	"sync"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// Collection is an ordered, process-local set of records of one entity
// type. Every value going in or out is cloned so callers never share
// memory with the stored records. Each method is atomic on its own;
// nothing orders calls made by concurrent callers.
type Collection[T any] struct {
	mu     sync.RWMutex
	entity string
	items  []T
	idOf   func(T) string
	clone  func(T) T
}

// NewCollection copies seed into a new collection.
func NewCollection[T any](entity string, seed []T, idOf func(T) string, clone func(T) T) *Collection[T] {
	items := make([]T, 0, len(seed))
	for _, item := range seed {
		items = append(items, clone(item))
	}
	return &Collection[T]{entity: entity, items: items, idOf: idOf, clone: clone}
}

// Entity returns the human readable entity name used in errors.
func (c *Collection[T]) Entity() string { return c.entity }

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns copies of every record in insertion order.
func (c *Collection[T]) All() []T {
	return c.Filter(nil)
}

// Filter returns copies of the records matching keep, in insertion order.
// A nil keep matches everything. The result is never nil.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep == nil || keep(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

// Get returns a copy of the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, models.NewNotFound(c.entity, id)
	}
	return c.clone(c.items[idx]), nil
}

// Append stores a copy of item at the end of the collection.
func (c *Collection[T]) Append(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, c.clone(item))
	return c.clone(item)
}

// Replace swaps the record with the given id for mutate's result.
func (c *Collection[T]) Replace(id string, mutate func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, models.NewNotFound(c.entity, id)
	}

	updated := c.clone(mutate(c.clone(c.items[idx])))
	c.items[idx] = updated
	return c.clone(updated), nil
}

// Remove deletes the record with the given id, keeping the order of the rest.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return models.NewNotFound(c.entity, id)
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

// Singleton holds exactly one record, such as the gardener's profile.
type Singleton[T any] struct {
	mu    sync.RWMutex
	value T
	clone func(T) T
}

// NewSingleton stores a copy of seed.
func NewSingleton[T any](seed T, clone func(T) T) *Singleton[T] {
	return &Singleton[T]{value: clone(seed), clone: clone}
}

// Get returns a copy of the stored value.
func (s *Singleton[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.value)
}

// Update replaces the value with mutate's result and returns a copy.
func (s *Singleton[T]) Update(mutate func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = s.clone(mutate(s.clone(s.value)))
	return s.clone(s.value)
}

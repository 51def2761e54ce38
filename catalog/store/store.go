package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ErrConcurrencyConflict is returned when the state changed between snapshot and apply.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// ErrNilEvent is returned when Apply is called without an event.
var ErrNilEvent = errors.New("event must not be nil")

// ErrFailureEventNotApplicable is returned when Apply is called with a failure event.
var ErrFailureEventNotApplicable = errors.New("failure events do not change the catalog")

// Version counts the success events applied to a Store.
type Version = uint64

// Store guards the catalog State with a read-write mutex and a version counter.
type Store struct {
	mu      sync.RWMutex
	state   core.State
	version Version
}

// New returns a Store holding an empty catalog.
func New() *Store {
	return &Store{state: core.NewState()}
}

// NewSeeded returns a Store holding the demonstration catalog relative to now.
func NewSeeded(now time.Time) *Store {
	s := New()

	for _, event := range core.SeedEvents(now) {
		s.state.Apply(event)
		s.version++
	}

	return s
}

// Snapshot returns a deep copy of the current state and the version it belongs to.
func (s *Store) Snapshot() (core.State, Version) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone(), s.version
}

// Version returns the current version.
func (s *Store) Version() Version {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Committed is called with the new version while Apply still holds the write lock.
// Hooks run in the order events were applied and must not call back into the Store.
type Committed func(version Version)

// Apply evolves the state by a success event if nothing changed since expectedVersion.
// It returns the new version.
func (s *Store) Apply(
	ctx context.Context,
	expectedVersion Version,
	event core.DomainEvent,
	committed ...Committed,
) (Version, error) {

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if event == nil {
		return 0, ErrNilEvent
	}

	if event.IsErrorEvent() {
		return 0, ErrFailureEventNotApplicable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version != expectedVersion {
		return s.version, ErrConcurrencyConflict
	}

	s.state.Apply(event)
	s.version++

	for _, hook := range committed {
		hook(s.version)
	}

	return s.version, nil
}

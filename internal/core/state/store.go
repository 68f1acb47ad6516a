package state

import (
	"log/slog"
	"sync"

	"github.com/lefergusion/storefront/internal/core/domain"
)

// Store is the sole owner and sole mutator of the session state.
// Dispatch serializes transitions: each one runs to completion inside
// the lock, so a transition is a critical section and every subscriber
// observes the same FIFO sequence of versions. Consumers receive the
// Store through constructor wiring, never through a package global.
type Store struct {
	mu          sync.Mutex
	current     domain.State
	subscribers []func(domain.State)
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current state value. The returned value and its
// slices must be treated as read-only.
func (s *Store) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Dispatch applies a to the current state and publishes the next
// version to all subscribers before returning. The returned state is
// the version produced by this call. An unrecognized action leaves the
// state untouched and propagates the error to the caller.
func (s *Store) Dispatch(a domain.Action) (domain.State, error) {
	const op = "Store.Dispatch"

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.current, a)
	if err != nil {
		return s.current, err
	}
	next.Version = s.current.Version + 1
	s.current = next

	slog.Debug("state transition",
		"op", op,
		"action", domain.ActionTag(a),
		"version", next.Version,
	)

	for _, notify := range s.subscribers {
		if notify != nil {
			notify(next)
		}
	}
	return next, nil
}

// Subscribe registers fn for every subsequent state version and returns
// the unsubscribe function. Notifications run synchronously on the
// dispatching goroutine; fn must not dispatch or it will deadlock.
func (s *Store) Subscribe(fn func(domain.State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
	i := len(s.subscribers) - 1

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subscribers[i] = nil
		})
	}
}

// Package session holds the current authenticated identity for embedded
// consumers (the filtered-data provider, dashboards) and notifies them on
// every change. Actual credential checking lives in the user service and the
// API layer; this store only tracks who is logged in right now.
package session

import (
	"sync"

	"github.com/elimuhq/elimu/core/user"
)

// Listener is called with the current user after every identity change.
// A nil user means the session ended (logout or expiry).
type Listener func(usr *user.User)

type Store struct {
	mu        sync.RWMutex
	usr       *user.User
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Current returns a copy of the logged-in user, or nil when unauthenticated.
func (s *Store) Current() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usr == nil {
		return nil
	}
	usr := *s.usr
	return &usr
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usr != nil
}

// Login replaces the current identity. An identity swap without an
// intervening Logout is allowed and notifies listeners once.
func (s *Store) Login(usr user.User) {
	s.mu.Lock()
	s.usr = &usr
	s.mu.Unlock()
	s.notify()
}

func (s *Store) Logout() {
	s.clear()
}

// Expire handles the app-wide session-expired event; state is cleared the
// same way as an explicit logout.
func (s *Store) Expire() {
	s.clear()
}

func (s *Store) clear() {
	s.mu.Lock()
	s.usr = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers fn and returns an unsubscribe func.
// Listeners run synchronously on the goroutine that changed the identity.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	usr := s.usr
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		if usr != nil {
			cp := *usr
			fn(&cp)
		} else {
			fn(nil)
		}
	}
}

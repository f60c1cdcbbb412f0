// Package session exposes the auth provider to the engines as a plain
// capability: who is signed in now, and a way to hear about changes.
package session

import "sync"

// Identity is the signed-in principal. A nil *Identity means guest.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// Session supplies the current identity and change notifications.
// Subscribe returns an unsubscribe func.
type Session interface {
	Current() *Identity
	Subscribe(fn func(*Identity)) (unsubscribe func())
}

// State is an in-process Session. Set swaps the identity and notifies
// every subscriber synchronously.
type State struct {
	mu      sync.Mutex
	current *Identity
	subs    map[int]func(*Identity)
	nextID  int
}

func NewState(initial *Identity) *State {
	return &State{current: initial, subs: make(map[int]func(*Identity))}
}

func (s *State) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *State) Subscribe(fn func(*Identity)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Set replaces the current identity and notifies subscribers.
func (s *State) Set(identity *Identity) {
	s.mu.Lock()
	s.current = identity
	fns := make([]func(*Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

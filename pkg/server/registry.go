// Package server hosts maze sessions over HTTP and WebSocket.
package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"mazelott/pkg/game/gameplay"
	"mazelott/pkg/game/state"
)

// ErrSessionNotFound is returned for an id with no live session
var ErrSessionNotFound = errors.New("session not found")

// Session is one hosted maze. Every operation on its game holds mu for the
// whole call, so concurrent clients never interleave inside a move.
type Session struct {
	ID uuid.UUID

	mu   sync.Mutex
	game *state.Game
}

// Do runs fn with exclusive access to the session's game
func (s *Session) Do(fn func(g *state.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Registry holds the live sessions
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// Create builds a game from opts and registers it under a fresh id. A maze
// too small to furnish is not registered; a maze whose route search failed
// is kept with its degraded layout.
func (r *Registry) Create(opts gameplay.Options) (*Session, error) {
	g := gameplay.BuildGame(opts)
	if gameplay.IsConfigurationError(g.PlaceErr) {
		return nil, g.PlaceErr
	}
	s := &Session{ID: uuid.New(), game: g}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s, nil
}

// Get returns the session for id
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes the session for id
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

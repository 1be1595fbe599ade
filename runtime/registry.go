// Package runtime holds the membership-and-broadcast core: the connection
// registry, room management, routing and the coordinator that ties them
// together. It contains no transport or UI logic.
package runtime

import (
	"fmt"
	"sync"

	"duochat/contract"
	"duochat/domain"
	"duochat/errors"
)

type session struct {
	conn domain.Connection
	sink contract.EventSink
}

// Registry is the authoritative table of live connections. It owns the
// Connection entities exclusively; other components only ever hold
// connection ids and go through the operations below.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnectionID]*session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.ConnectionID]*session)}
}

// Register creates an entry with no name and no room. A duplicate id is a
// programmer error in the transport layer, signaled rather than absorbed.
func (r *Registry) Register(id domain.ConnectionID, sink contract.EventSink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		return fmt.Errorf("%w: %s", errors.ErrAlreadyRegistered, id)
	}
	r.sessions[id] = &session{conn: domain.Connection{ID: id}, sink: sink}
	return nil
}

// SetSession overwrites the session metadata. Idempotent.
func (r *Registry) SetSession(id domain.ConnectionID, displayName string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.conn.DisplayName = displayName
		s.conn.RoomID = roomID
	}
}

// ClearRoom detaches the connection from its room. No-op when already detached.
func (r *Registry) ClearRoom(id domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.conn.RoomID = ""
	}
}

// Get returns a copy of the connection state. A missing id means the
// connection already disconnected; callers treat that as benign.
func (r *Registry) Get(id domain.ConnectionID) (domain.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return domain.Connection{}, false
	}
	return s.conn, true
}

// Remove deletes the entry. Safe to call on an unknown id.
func (r *Registry) Remove(id domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Sink resolves the delivery channel registered for a connection.
func (r *Registry) Sink(id domain.ConnectionID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return s.sink, true
}

// AllSinks returns the sinks of every registered connection, minus the
// given exclusions. Used for the global fan-out of fixed-room mode.
func (r *Registry) AllSinks(except ...domain.ConnectionID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	excluded := make(map[domain.ConnectionID]struct{}, len(except))
	for _, id := range except {
		excluded[id] = struct{}{}
	}

	var sinks []contract.EventSink
	for id, s := range r.sessions {
		if _, skip := excluded[id]; skip {
			continue
		}
		sinks = append(sinks, s.sink)
	}
	return sinks
}

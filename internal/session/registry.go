// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"sync"

	"planbridge/server/internal/artifact"
	"planbridge/server/internal/engine"
	"planbridge/server/internal/errors"
)

type key struct {
	userID    string
	sessionID string
}

// Registry maps (user id, session id) to an execution context, creating on
// first use and reusing thereafter. Creation runs under the registry lock so
// concurrent callers for the same pair observe a single, fully initialized
// context; a factory failure registers nothing.
//
// Eviction policy lives outside the registry; Remove and CloseAll are the
// hooks it drives.
type Registry struct {
	mu       sync.Mutex
	sessions map[key]*Session

	factory      engine.Factory
	artifactRoot string
	ledger       *artifact.Ledger
}

func NewRegistry(factory engine.Factory, artifactRoot string, ledger *artifact.Ledger) *Registry {
	return &Registry{
		sessions:     make(map[key]*Session),
		factory:      factory,
		artifactRoot: artifactRoot,
		ledger:       ledger,
	}
}

// Resolve returns the execution context for the pair, creating it if absent.
func (r *Registry) Resolve(ctx context.Context, userID, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, errors.New(errors.InvalidRequest, "missing session_id")
	}
	if userID == "" {
		return nil, errors.New(errors.InvalidRequest, "missing user_context.user_id")
	}

	k := key{userID: userID, sessionID: sessionID}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[k]; ok {
		return s, nil
	}
	eng, err := r.factory.New(ctx, userID, sessionID)
	if err != nil {
		// Nothing registered: the next caller retries creation.
		return nil, err
	}
	s := newSession(userID, sessionID, eng, r.artifactRoot, r.ledger)
	r.sessions[k] = s
	return s, nil
}

// Remove evicts and closes a session. Removing an absent pair is a no-op.
func (r *Registry) Remove(userID, sessionID string) error {
	k := key{userID: userID, sessionID: sessionID}
	r.mu.Lock()
	s, ok := r.sessions[k]
	delete(r.sessions, k)
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Close()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// CloseAll closes every session; used at process shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[key]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		_ = s.Close()
	}
}

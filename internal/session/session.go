// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session binds a (user id, session id) pair to one isolated
// execution context: an engine instance, a config store, and an artifact
// area. The registry guarantees at most one context per pair while the
// session is alive.
package session

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"planbridge/server/internal/artifact"
	"planbridge/server/internal/engine"
)

// Session is one execution context. Fields are set once at creation; the
// config store and artifact store carry their own locking.
type Session struct {
	UserID    string
	SessionID string
	// ServerID is a server-generated identity for the context, distinct
	// from the client-chosen session id.
	ServerID  string
	CreatedAt time.Time

	Engine    engine.Engine
	Config    *ConfStore
	Artifacts *artifact.Store
}

func newSession(userID, sessionID string, eng engine.Engine, artifactRoot string, ledger *artifact.Ledger) *Session {
	serverID := uuid.NewString()
	return &Session{
		UserID:    userID,
		SessionID: sessionID,
		ServerID:  serverID,
		CreatedAt: time.Now(),
		Engine:    eng,
		Config:    NewConfStore(),
		Artifacts: artifact.NewStore(filepath.Join(artifactRoot, serverID), sessionID, ledger),
	}
}

// Close releases the session's engine.
func (s *Session) Close() error {
	if s.Engine == nil {
		return nil
	}
	return s.Engine.Close()
}

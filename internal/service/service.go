// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package service implements the PlanService gRPC surface: analyze, execute,
// config, and artifact ingestion. Every request is first resolved through the
// session registry; the resolved context is handed to the matching
// dispatcher and results are marshalled back into the wire envelopes.
package service

import (
	"context"

	"github.com/rs/zerolog"

	"planbridge/server/internal/session"
	"planbridge/server/internal/wire"
)

// Service is the PlanService implementation. It owns no state of its own;
// all per-session state lives behind the registry.
type Service struct {
	registry *session.Registry
	log      zerolog.Logger
}

func New(registry *session.Registry, log zerolog.Logger) *Service {
	return &Service{registry: registry, log: log}
}

var _ wire.PlanServiceServer = (*Service)(nil)

// resolve looks up or creates the execution context for a request. The
// client_type field deliberately plays no part here; it is logged and
// nothing else.
func (s *Service) resolve(ctx context.Context, sessionID string, user *wire.UserContext) (*session.Session, error) {
	sess, err := s.registry.Resolve(ctx, user.GetUserId(), sessionID)
	if err != nil {
		return nil, toStatus(err)
	}
	return sess, nil
}

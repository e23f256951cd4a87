// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"context"

	"planbridge/server/internal/errors"
	"planbridge/server/internal/wire"
)

// Config routes the seven-way config operation union to the session's store.
// Warnings (deprecated keys) ride in the response; they never fail a request.
func (s *Service) Config(ctx context.Context, req *wire.ConfigRequest) (*wire.ConfigResponse, error) {
	sess, err := s.resolve(ctx, req.GetSessionId(), req.UserContext)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("session_id", sess.SessionID).
		Str("client_type", req.ClientType).
		Msg("config")

	if req.Operation == nil {
		return nil, toStatus(errors.New(errors.InvalidRequest, "config request carries no operation"))
	}

	var (
		pairs    []*wire.KeyValue
		warnings []string
	)
	switch op := req.Operation.GetOpType().(type) {
	case *wire.ConfigOperation_Set:
		warnings, err = sess.Config.Set(op.Set.Pairs)
	case *wire.ConfigOperation_Get:
		pairs, warnings, err = sess.Config.Get(op.Get.Keys)
	case *wire.ConfigOperation_GetWithDefault:
		pairs, warnings, err = sess.Config.GetWithDefault(op.GetWithDefault.Pairs)
	case *wire.ConfigOperation_GetOption:
		pairs, warnings, err = sess.Config.GetOption(op.GetOption.Keys)
	case *wire.ConfigOperation_GetAll:
		pairs, warnings, err = sess.Config.GetAll(op.GetAll.Prefix)
	case *wire.ConfigOperation_Unset:
		warnings, err = sess.Config.Unset(op.Unset.Keys)
	case *wire.ConfigOperation_IsModifiable:
		pairs, warnings, err = sess.Config.IsModifiable(op.IsModifiable.Keys)
	default:
		return nil, toStatus(errors.Newf(errors.InvalidRequest, "unknown config operation %T", op))
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &wire.ConfigResponse{
		SessionId: sess.SessionID,
		Pairs:     pairs,
		Warnings:  warnings,
	}, nil
}

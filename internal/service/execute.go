// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	stderrors "errors"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/errors"
	"planbridge/server/internal/session"
	"planbridge/server/internal/sqltypes"
	"planbridge/server/internal/wire"
)

// ExecutePlan runs a plan and streams result chunks. A relation root streams
// row batches; a command root is evaluated eagerly and its tabular result,
// if any, is wrapped as a relation so later plans can consume it as data.
// At least one chunk is always emitted so completion never depends on
// stream-closed signaling alone.
func (s *Service) ExecutePlan(req *wire.ExecutePlanRequest, stream wire.PlanService_ExecutePlanServer) error {
	ctx := stream.Context()
	sess, err := s.resolve(ctx, req.GetSessionId(), req.UserContext)
	if err != nil {
		return err
	}
	s.log.Debug().
		Str("session_id", sess.SessionID).
		Str("client_type", req.ClientType).
		Msg("execute")

	if req.Plan == nil {
		return toStatus(errors.New(errors.InvalidRequest, "missing plan"))
	}
	switch op := req.Plan.GetOpType().(type) {
	case *wire.Plan_Root:
		return s.executeRelation(sess, op.Root, stream)
	case *wire.Plan_Command:
		return s.executeCommand(sess, op.Command, stream)
	case nil:
		return toStatus(errors.New(errors.InvalidRequest, "plan carries neither a relation nor a command"))
	default:
		return toStatus(errors.Newf(errors.InvalidRequest, "unknown plan root %T", op))
	}
}

func (s *Service) executeRelation(sess *session.Session, rel *wire.Relation, stream wire.PlanService_ExecutePlanServer) error {
	ctx := stream.Context()
	rows, err := sess.Engine.Query(ctx, rel)
	if err != nil {
		return toStatus(err)
	}
	defer rows.Close()

	sent := false
	for {
		frame, err := rows.Next(ctx)
		if stderrors.Is(err, engine.EOF) {
			break
		}
		if err != nil {
			return toStatus(err)
		}
		if err := sendBatch(stream, sess.SessionID, frame, rows); err != nil {
			return err
		}
		sent = true
	}
	if !sent {
		// Zero rows still answers with one empty batch over the schema's
		// columns.
		return sendBatch(stream, sess.SessionID, engine.NewFrame(columnNames(rows.Schema())), rows)
	}
	return nil
}

func (s *Service) executeCommand(sess *session.Session, cmd *wire.Command, stream wire.PlanService_ExecutePlanServer) error {
	ctx := stream.Context()
	res, err := sess.Engine.RunCommand(ctx, cmd)
	if err != nil {
		return toStatus(err)
	}

	resp := &wire.ExecutePlanResponse{SessionId: sess.SessionID}
	if len(res.Metrics) > 0 {
		resp.Metrics = &wire.Metrics{Metrics: res.Metrics}
	}
	if res.Result != nil {
		data, err := res.Result.Encode()
		if err != nil {
			return toStatus(errors.Wrap(errors.EngineFailure, "encode command result", err))
		}
		resp.ResponseType = &wire.ExecutePlanResponse_SqlCommandResult{
			SqlCommandResult: &wire.SqlCommandResult{
				Relation: &wire.Relation{
					RelType: &wire.Relation_LocalRelation{
						LocalRelation: &wire.LocalRelation{
							Data:   data,
							Schema: res.Schema.DDL(),
						},
					},
				},
			},
		}
	} else {
		resp.ResponseType = &wire.ExecutePlanResponse_ResultBatch{
			ResultBatch: &wire.ResultBatch{RowCount: res.RowsAffected},
		}
	}
	return stream.Send(resp)
}

func sendBatch(stream wire.PlanService_ExecutePlanServer, sessionID string, frame *engine.Frame, rows engine.RowStream) error {
	data, err := frame.Encode()
	if err != nil {
		return toStatus(errors.Wrap(errors.EngineFailure, "encode result batch", err))
	}
	resp := &wire.ExecutePlanResponse{
		SessionId: sessionID,
		ResponseType: &wire.ExecutePlanResponse_ResultBatch{
			ResultBatch: &wire.ResultBatch{
				RowCount: int64(len(frame.Rows)),
				Data:     data,
			},
		},
		ObservedMetrics: rows.Observed(),
	}
	if m := rows.Metrics(); len(m) > 0 {
		resp.Metrics = &wire.Metrics{Metrics: m}
	}
	return stream.Send(resp)
}

func columnNames(st sqltypes.StructType) []string {
	cols := make([]string, len(st.Fields))
	for i, f := range st.Fields {
		cols[i] = f.Name
	}
	return cols
}

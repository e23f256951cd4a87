// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"io"

	"planbridge/server/internal/artifact"
	"planbridge/server/internal/wire"
)

// AddArtifacts drains an artifact upload stream through a per-stream
// receiver and answers with one verification outcome per artifact name.
// Session resolution uses the first message; later messages in the same
// stream need not repeat the identifiers.
//
// A client disconnect mid-stream discards only the open chunked artifact;
// artifacts already completed stay durable.
func (s *Service) AddArtifacts(stream wire.PlanService_AddArtifactsServer) error {
	first, err := stream.Recv()
	if err == io.EOF {
		return stream.SendAndClose(&wire.AddArtifactsResponse{})
	}
	if err != nil {
		return err
	}
	sess, err := s.resolve(stream.Context(), first.GetSessionId(), first.UserContext)
	if err != nil {
		return err
	}
	s.log.Debug().
		Str("session_id", sess.SessionID).
		Str("client_type", first.ClientType).
		Msg("add artifacts")

	recv := artifact.NewReceiver(sess.Artifacts)
	if err := recv.Accept(first); err != nil {
		return toStatus(err)
	}
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := recv.Accept(req); err != nil {
			return toStatus(err)
		}
	}
	return stream.SendAndClose(&wire.AddArtifactsResponse{Artifacts: recv.Finish()})
}

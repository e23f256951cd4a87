// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/engine/fake"
	"planbridge/server/internal/session"
	"planbridge/server/internal/sqltypes"
	"planbridge/server/internal/wire"
)

// newTestService wires a Service over one shared fake engine so tests can
// seed canned results and inspect recorded writes.
func newTestService(t *testing.T) (*Service, *fake.Engine) {
	t.Helper()
	eng := fake.New()
	factory := engine.FactoryFunc(func(ctx context.Context, userID, sessionID string) (engine.Engine, error) {
		return eng, nil
	})
	registry := session.NewRegistry(factory, t.TempDir(), nil)
	return New(registry, zerolog.Nop()), eng
}

func testUser() *wire.UserContext {
	return &wire.UserContext{UserId: "alice"}
}

func sqlPlan(query string) *wire.Plan {
	return &wire.Plan{OpType: &wire.Plan_Root{Root: &wire.Relation{
		RelType: &wire.Relation_Sql{Sql: &wire.SQL{Query: query}},
	}}}
}

func commandPlan(sql string) *wire.Plan {
	return &wire.Plan{OpType: &wire.Plan_Command{Command: &wire.Command{
		CommandType: &wire.Command_SqlCommand{SqlCommand: &wire.SqlCommand{Sql: sql}},
	}}}
}

func usersTable() fake.Table {
	frame := engine.NewFrame([]string{"id", "name"})
	frame.Rows = [][]any{
		{int64(1), "ada"},
		{int64(2), "grace"},
		{int64(3), "edsger"},
	}
	return fake.Table{
		Schema: sqltypes.StructType{Fields: []sqltypes.StructField{
			{Name: "id", DataType: sqltypes.LongType{}, Nullable: false},
			{Name: "name", DataType: sqltypes.StringType{}, Nullable: true},
		}},
		Frame: frame,
	}
}

// execStream is an in-memory PlanService_ExecutePlanServer.
type execStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*wire.ExecutePlanResponse
}

func newExecStream() *execStream {
	return &execStream{ctx: context.Background()}
}

func (s *execStream) Context() context.Context { return s.ctx }

func (s *execStream) Send(m *wire.ExecutePlanResponse) error {
	s.sent = append(s.sent, m)
	return nil
}

// artifactStream is an in-memory PlanService_AddArtifactsServer fed from a
// fixed request list.
type artifactStream struct {
	grpc.ServerStream
	ctx      context.Context
	requests []*wire.AddArtifactsRequest
	response *wire.AddArtifactsResponse
}

func newArtifactStream(reqs ...*wire.AddArtifactsRequest) *artifactStream {
	return &artifactStream{ctx: context.Background(), requests: reqs}
}

func (s *artifactStream) Context() context.Context { return s.ctx }

func (s *artifactStream) Recv() (*wire.AddArtifactsRequest, error) {
	if len(s.requests) == 0 {
		return nil, io.EOF
	}
	req := s.requests[0]
	s.requests = s.requests[1:]
	return req, nil
}

func (s *artifactStream) SendAndClose(m *wire.AddArtifactsResponse) error {
	s.response = m
	return nil
}

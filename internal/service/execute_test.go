// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/wire"
)

func execReq(plan *wire.Plan) *wire.ExecutePlanRequest {
	return &wire.ExecutePlanRequest{
		SessionId:   "s1",
		UserContext: testUser(),
		Plan:        plan,
	}
}

func TestExecuteRelationStreamsBatches(t *testing.T) {
	svc, eng := newTestService(t)
	eng.Register("select * from users", usersTable())
	// Three rows with a batch size of two yields two chunks.
	eng.BatchSize = 2

	stream := newExecStream()
	if err := svc.ExecutePlan(execReq(sqlPlan("select * from users")), stream); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("got %d chunks, want 2", len(stream.sent))
	}

	var rows int64
	for _, resp := range stream.sent {
		if resp.SessionId != "s1" {
			t.Errorf("chunk missing session id: %q", resp.SessionId)
		}
		batch := resp.GetResultBatch()
		if batch == nil {
			t.Fatalf("chunk is not a result batch: %v", resp)
		}
		frame, err := engine.DecodeFrame(batch.Data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if int64(len(frame.Rows)) != batch.RowCount {
			t.Errorf("row count %d does not match frame rows %d", batch.RowCount, len(frame.Rows))
		}
		rows += batch.RowCount
	}
	if rows != 3 {
		t.Errorf("streamed %d rows, want 3", rows)
	}
	if stream.sent[0].Metrics == nil {
		t.Error("metrics missing from batch")
	}
}

func TestExecuteEmptyResultStillSendsOneChunk(t *testing.T) {
	svc, eng := newTestService(t)
	empty := usersTable()
	empty.Frame = engine.NewFrame([]string{"id", "name"})
	eng.Register("select * from users where 1=0", empty)

	stream := newExecStream()
	if err := svc.ExecutePlan(execReq(sqlPlan("select * from users where 1=0")), stream); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("got %d chunks, want exactly 1", len(stream.sent))
	}
	batch := stream.sent[0].GetResultBatch()
	if batch.RowCount != 0 {
		t.Errorf("row count %d, want 0", batch.RowCount)
	}
	frame, err := engine.DecodeFrame(batch.Data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(frame.Columns) != 2 || len(frame.Rows) != 0 {
		t.Errorf("empty chunk must still carry the schema columns: %+v", frame)
	}
}

func TestExecuteSqlCommandWithResult(t *testing.T) {
	svc, eng := newTestService(t)
	eng.Register("show tables", usersTable())

	stream := newExecStream()
	if err := svc.ExecutePlan(execReq(commandPlan("show tables")), stream); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("got %d responses, want 1", len(stream.sent))
	}
	res := stream.sent[0].GetSqlCommandResult()
	if res == nil {
		t.Fatalf("expected a sql command result, got %v", stream.sent[0])
	}
	lr := res.Relation.GetLocalRelation()
	if lr == nil {
		t.Fatal("command result does not wrap a local relation")
	}
	frame, err := engine.DecodeFrame(lr.Data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(frame.Rows) != 3 {
		t.Errorf("result rows %d, want 3", len(frame.Rows))
	}
	if lr.Schema == "" {
		t.Error("command result is missing its schema DDL")
	}
}

func TestExecuteSqlCommandSideEffectOnly(t *testing.T) {
	svc, eng := newTestService(t)

	stream := newExecStream()
	if err := svc.ExecutePlan(execReq(commandPlan("drop table users")), stream); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("got %d responses, want 1", len(stream.sent))
	}
	batch := stream.sent[0].GetResultBatch()
	if batch == nil || len(batch.Data) != 0 {
		t.Fatalf("side-effect command must answer with a bare row count: %v", stream.sent[0])
	}
	if got := eng.Writes(); len(got) != 1 || got[0] != "drop table users" {
		t.Errorf("command not applied eagerly: %v", got)
	}
}

func TestExecuteCommandResultFeedsBackAsRelation(t *testing.T) {
	svc, eng := newTestService(t)
	eng.Register("show tables", usersTable())

	stream := newExecStream()
	if err := svc.ExecutePlan(execReq(commandPlan("show tables")), stream); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}
	rel := stream.sent[0].GetSqlCommandResult().Relation

	// The wrapped relation is a valid input to a follow-up execute.
	followUp := newExecStream()
	plan := &wire.Plan{OpType: &wire.Plan_Root{Root: rel}}
	if err := svc.ExecutePlan(execReq(plan), followUp); err != nil {
		t.Fatalf("follow-up ExecutePlan: %v", err)
	}
	var rows int64
	for _, resp := range followUp.sent {
		rows += resp.GetResultBatch().RowCount
	}
	if rows != 3 {
		t.Errorf("follow-up streamed %d rows, want 3", rows)
	}
}

func TestExecuteRejectsBadPlans(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		plan *wire.Plan
	}{
		{name: "missing plan", plan: nil},
		{name: "empty plan", plan: &wire.Plan{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ExecutePlan(execReq(tt.plan), newExecStream())
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("got %v, want InvalidArgument", err)
			}
		})
	}
}

func TestExecuteUnknownQueryIsInternal(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.ExecutePlan(execReq(sqlPlan("select * from nowhere")), newExecStream())
	if status.Code(err) != codes.Internal {
		t.Errorf("engine failure must map to Internal, got %v", err)
	}
}

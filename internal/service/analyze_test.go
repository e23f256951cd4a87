// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planbridge/server/internal/engine/fake"
	"planbridge/server/internal/wire"
)

func analyzeReq(op isAnalyzeVariant) *wire.AnalyzePlanRequest {
	req := &wire.AnalyzePlanRequest{
		SessionId:   "s1",
		UserContext: testUser(),
		ClientType:  "test",
	}
	op.apply(req)
	return req
}

// isAnalyzeVariant lets table tests build requests without repeating the
// envelope fields.
type isAnalyzeVariant interface{ apply(*wire.AnalyzePlanRequest) }

type withSchema struct{ plan *wire.Plan }
type withVersion struct{}
type withDdl struct{ ddl string }

func (v withSchema) apply(r *wire.AnalyzePlanRequest) {
	r.Analyze = &wire.AnalyzePlanRequest_Schema{Schema: &wire.SchemaRequest{Plan: v.plan}}
}
func (withVersion) apply(r *wire.AnalyzePlanRequest) {
	r.Analyze = &wire.AnalyzePlanRequest_Version{Version: &wire.VersionRequest{}}
}
func (v withDdl) apply(r *wire.AnalyzePlanRequest) {
	r.Analyze = &wire.AnalyzePlanRequest_DdlParse{DdlParse: &wire.DDLParseRequest{DdlString: v.ddl}}
}

func TestAnalyzeSchema(t *testing.T) {
	svc, eng := newTestService(t)
	eng.Register("select * from users", usersTable())

	resp, err := svc.AnalyzePlan(context.Background(), analyzeReq(withSchema{sqlPlan("select * from users")}))
	if err != nil {
		t.Fatalf("AnalyzePlan: %v", err)
	}
	if resp.SessionId != "s1" {
		t.Errorf("session id not stamped: %q", resp.SessionId)
	}
	schema, ok := resp.Result.(*wire.AnalyzePlanResponse_Schema)
	if !ok {
		t.Fatalf("response variant %T does not mirror the request", resp.Result)
	}
	st := schema.Schema.Schema
	if st.Kind != wire.TypeKind_TYPE_STRUCT || len(st.Fields) != 2 {
		t.Fatalf("unexpected schema: %v", st)
	}
	if st.Fields[0].Name != "id" || st.Fields[1].Name != "name" {
		t.Errorf("field names: %q, %q", st.Fields[0].Name, st.Fields[1].Name)
	}
}

func TestAnalyzeVersion(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.AnalyzePlan(context.Background(), analyzeReq(withVersion{}))
	if err != nil {
		t.Fatalf("AnalyzePlan: %v", err)
	}
	v, ok := resp.Result.(*wire.AnalyzePlanResponse_Version)
	if !ok {
		t.Fatalf("response variant %T", resp.Result)
	}
	if v.Version.Version != fake.EngineVersion {
		t.Errorf("version %q", v.Version.Version)
	}
}

func TestAnalyzeTreeString(t *testing.T) {
	svc, eng := newTestService(t)
	eng.Register("q", usersTable())

	req := analyzeReq(withVersion{})
	req.Analyze = &wire.AnalyzePlanRequest_TreeString{
		TreeString: &wire.TreeStringRequest{Plan: sqlPlan("q")},
	}
	resp, err := svc.AnalyzePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("AnalyzePlan: %v", err)
	}
	tree := resp.Result.(*wire.AnalyzePlanResponse_TreeString).TreeString.TreeString
	if !strings.HasPrefix(tree, "root\n") || !strings.Contains(tree, "|-- id: long") {
		t.Errorf("tree string:\n%s", tree)
	}
}

func TestAnalyzeDdlParse(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.AnalyzePlan(context.Background(), analyzeReq(withDdl{"a INT, b ARRAY<STRING>"}))
	if err != nil {
		t.Fatalf("AnalyzePlan: %v", err)
	}
	parsed := resp.Result.(*wire.AnalyzePlanResponse_DdlParse).DdlParse.Parsed
	if parsed.Kind != wire.TypeKind_TYPE_STRUCT || len(parsed.Fields) != 2 {
		t.Fatalf("parsed: %v", parsed)
	}
	if got := parsed.Fields[1].DataType.Kind; got != wire.TypeKind_TYPE_ARRAY {
		t.Errorf("second field kind %v, want array", got)
	}

	_, err = svc.AnalyzePlan(context.Background(), analyzeReq(withDdl{"a BLOB"}))
	if err == nil {
		t.Fatal("invalid DDL accepted")
	}
}

func TestAnalyzeSameSemantics(t *testing.T) {
	svc, _ := newTestService(t)

	same := func(a, b *wire.Plan) bool {
		req := analyzeReq(withVersion{})
		req.Analyze = &wire.AnalyzePlanRequest_SameSemantics{
			SameSemantics: &wire.SameSemanticsRequest{TargetPlan: a, OtherPlan: b},
		}
		resp, err := svc.AnalyzePlan(context.Background(), req)
		if err != nil {
			t.Fatalf("AnalyzePlan: %v", err)
		}
		return resp.Result.(*wire.AnalyzePlanResponse_SameSemantics).SameSemantics.Result
	}

	p := sqlPlan("select 1")
	q := sqlPlan("select 2")
	if !same(p, p) {
		t.Error("plan not equal to itself")
	}
	if same(p, q) != same(q, p) {
		t.Error("equality is not symmetric")
	}
	if same(p, q) {
		t.Error("distinct queries compare equal")
	}

	req := analyzeReq(withVersion{})
	req.Analyze = &wire.AnalyzePlanRequest_SameSemantics{
		SameSemantics: &wire.SameSemanticsRequest{TargetPlan: p},
	}
	if _, err := svc.AnalyzePlan(context.Background(), req); status.Code(err) != codes.InvalidArgument {
		t.Errorf("one-sided comparison: %v", err)
	}
}

func TestAnalyzeRejectsBadRequests(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *wire.AnalyzePlanRequest
		want codes.Code
	}{
		{
			name: "no operation",
			req:  &wire.AnalyzePlanRequest{SessionId: "s1", UserContext: testUser()},
			want: codes.InvalidArgument,
		},
		{
			name: "schema without plan",
			req:  analyzeReq(withSchema{nil}),
			want: codes.InvalidArgument,
		},
		{
			name: "schema of command plan",
			req:  analyzeReq(withSchema{commandPlan("create table t (a int)")}),
			want: codes.InvalidArgument,
		},
		{
			name: "missing session id",
			req:  &wire.AnalyzePlanRequest{UserContext: testUser(), Analyze: &wire.AnalyzePlanRequest_Version{Version: &wire.VersionRequest{}}},
			want: codes.InvalidArgument,
		},
		{
			name: "missing user context",
			req:  &wire.AnalyzePlanRequest{SessionId: "s1", Analyze: &wire.AnalyzePlanRequest_Version{Version: &wire.VersionRequest{}}},
			want: codes.InvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AnalyzePlan(ctx, tt.req)
			if status.Code(err) != tt.want {
				t.Errorf("got %v (%v), want %v", status.Code(err), err, tt.want)
			}
		})
	}
}

func TestTruncateTree(t *testing.T) {
	tree := "root\n |-- a: struct (nullable = true)\n |    |-- b: integer (nullable = true)\n"
	if got := truncateTree(tree, 0); got != tree {
		t.Errorf("level 0 must keep the full tree")
	}
	got := truncateTree(tree, 1)
	if strings.Contains(got, "b: integer") {
		t.Errorf("nested line survived truncation:\n%s", got)
	}
	if !strings.Contains(got, "a: struct") {
		t.Errorf("top-level line dropped:\n%s", got)
	}
}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"context"
	"strings"

	"planbridge/server/internal/errors"
	"planbridge/server/internal/sqltypes"
	"planbridge/server/internal/wire"
)

// AnalyzePlan routes the nine-way analyze union. The response variant always
// mirrors the request variant; an unknown variant is an InvalidArgument, never
// a silent no-op.
func (s *Service) AnalyzePlan(ctx context.Context, req *wire.AnalyzePlanRequest) (*wire.AnalyzePlanResponse, error) {
	sess, err := s.resolve(ctx, req.GetSessionId(), req.UserContext)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("session_id", sess.SessionID).
		Str("client_type", req.ClientType).
		Msg("analyze")

	resp := &wire.AnalyzePlanResponse{SessionId: sess.SessionID}
	switch op := req.GetAnalyze().(type) {
	case *wire.AnalyzePlanRequest_Schema:
		rel, err := relationOf(op.Schema.Plan)
		if err != nil {
			return nil, toStatus(err)
		}
		st, err := sess.Engine.Schema(ctx, rel)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_Schema{
			Schema: &wire.SchemaResponse{Schema: sqltypes.ToWire(st)},
		}

	case *wire.AnalyzePlanRequest_Explain:
		rel, err := relationOf(op.Explain.Plan)
		if err != nil {
			return nil, toStatus(err)
		}
		text, err := sess.Engine.Explain(ctx, rel, op.Explain.Mode)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_Explain{
			Explain: &wire.ExplainResponse{ExplainString: text},
		}

	case *wire.AnalyzePlanRequest_TreeString:
		rel, err := relationOf(op.TreeString.Plan)
		if err != nil {
			return nil, toStatus(err)
		}
		st, err := sess.Engine.Schema(ctx, rel)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_TreeString{
			TreeString: &wire.TreeStringResponse{
				TreeString: truncateTree(st.TreeString(), op.TreeString.Level),
			},
		}

	case *wire.AnalyzePlanRequest_IsLocal:
		rel, err := relationOf(op.IsLocal.Plan)
		if err != nil {
			return nil, toStatus(err)
		}
		local, err := sess.Engine.IsLocal(ctx, rel)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_IsLocal{
			IsLocal: &wire.IsLocalResponse{IsLocal: local},
		}

	case *wire.AnalyzePlanRequest_IsStreaming:
		rel, err := relationOf(op.IsStreaming.Plan)
		if err != nil {
			return nil, toStatus(err)
		}
		streaming, err := sess.Engine.IsStreaming(ctx, rel)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_IsStreaming{
			IsStreaming: &wire.IsStreamingResponse{IsStreaming: streaming},
		}

	case *wire.AnalyzePlanRequest_InputFiles:
		rel, err := relationOf(op.InputFiles.Plan)
		if err != nil {
			return nil, toStatus(err)
		}
		// Best effort: an incomplete list is a valid answer.
		files, err := sess.Engine.InputFiles(ctx, rel)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_InputFiles{
			InputFiles: &wire.InputFilesResponse{Files: files},
		}

	case *wire.AnalyzePlanRequest_Version:
		v, err := sess.Engine.Version(ctx)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_Version{
			Version: &wire.VersionResponse{Version: v},
		}

	case *wire.AnalyzePlanRequest_DdlParse:
		dt, err := sqltypes.Parse(op.DdlParse.DdlString)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Result = &wire.AnalyzePlanResponse_DdlParse{
			DdlParse: &wire.DDLParseResponse{Parsed: sqltypes.ToWire(dt)},
		}

	case *wire.AnalyzePlanRequest_SameSemantics:
		if op.SameSemantics.TargetPlan == nil || op.SameSemantics.OtherPlan == nil {
			return nil, toStatus(errors.New(errors.InvalidRequest, "same_semantics requires both plans"))
		}
		resp.Result = &wire.AnalyzePlanResponse_SameSemantics{
			SameSemantics: &wire.SameSemanticsResponse{
				Result: wire.PlanEqual(op.SameSemantics.TargetPlan, op.SameSemantics.OtherPlan),
			},
		}

	case nil:
		return nil, toStatus(errors.New(errors.InvalidRequest, "analyze request carries no operation"))
	default:
		return nil, toStatus(errors.Newf(errors.InvalidRequest, "unknown analyze operation %T", op))
	}
	return resp, nil
}

// relationOf extracts the relation root of an analyze plan. Analyze operates
// on queries; a command plan has no schema, locality, or input files to
// report.
func relationOf(plan *wire.Plan) (*wire.Relation, error) {
	if plan == nil {
		return nil, errors.New(errors.InvalidRequest, "missing plan")
	}
	rel := plan.GetRoot()
	if rel == nil {
		return nil, errors.New(errors.InvalidRequest, "analyze requires a plan with a relation root")
	}
	return rel, nil
}

// truncateTree drops schema tree lines nested deeper than level. Level 0
// means no limit. Depth is the number of pipe markers in a line's indent.
func truncateTree(tree string, level int32) string {
	if level <= 0 {
		return tree
	}
	lines := strings.Split(tree, "\n")
	var b strings.Builder
	for _, line := range lines {
		if int32(strings.Count(line, "|")) > level {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n") + "\n"
}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

// ExplainMode selects which stage of the plan pipeline the explain text
// renders. All modes share the same rendering call; the mode is the only
// branching point.
type ExplainMode int32

const (
	ExplainMode_EXPLAIN_MODE_UNSPECIFIED ExplainMode = 0
	ExplainMode_EXPLAIN_MODE_SIMPLE      ExplainMode = 1
	ExplainMode_EXPLAIN_MODE_EXTENDED    ExplainMode = 2
	ExplainMode_EXPLAIN_MODE_CODEGEN     ExplainMode = 3
	ExplainMode_EXPLAIN_MODE_COST        ExplainMode = 4
	ExplainMode_EXPLAIN_MODE_FORMATTED   ExplainMode = 5
)

var explainModeName = map[ExplainMode]string{
	0: "EXPLAIN_MODE_UNSPECIFIED",
	1: "EXPLAIN_MODE_SIMPLE",
	2: "EXPLAIN_MODE_EXTENDED",
	3: "EXPLAIN_MODE_CODEGEN",
	4: "EXPLAIN_MODE_COST",
	5: "EXPLAIN_MODE_FORMATTED",
}

func (m ExplainMode) String() string {
	if s, ok := explainModeName[m]; ok {
		return s
	}
	return "EXPLAIN_MODE_UNSPECIFIED"
}

// AnalyzePlanRequest is a tagged union of nine analyze operations. The
// request tag and the response tag always correspond 1:1.
type AnalyzePlanRequest struct {
	SessionId   string       `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserContext *UserContext `protobuf:"bytes,2,opt,name=user_context,json=userContext,proto3" json:"user_context,omitempty"`
	// ClientType is advisory, used for logging only; it never affects
	// behavior.
	ClientType string `protobuf:"bytes,3,opt,name=client_type,json=clientType,proto3" json:"client_type,omitempty"`

	// Types that are assignable to Analyze:
	//	*AnalyzePlanRequest_Schema
	//	*AnalyzePlanRequest_Explain
	//	*AnalyzePlanRequest_TreeString
	//	*AnalyzePlanRequest_IsLocal
	//	*AnalyzePlanRequest_IsStreaming
	//	*AnalyzePlanRequest_InputFiles
	//	*AnalyzePlanRequest_Version
	//	*AnalyzePlanRequest_DdlParse
	//	*AnalyzePlanRequest_SameSemantics
	Analyze isAnalyzePlanRequest_Analyze `protobuf_oneof:"analyze"`
}

func (m *AnalyzePlanRequest) Reset()         { *m = AnalyzePlanRequest{} }
func (m *AnalyzePlanRequest) String() string { return messageString(m) }
func (*AnalyzePlanRequest) ProtoMessage()    {}

func (m *AnalyzePlanRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *AnalyzePlanRequest) GetAnalyze() isAnalyzePlanRequest_Analyze {
	if m != nil {
		return m.Analyze
	}
	return nil
}

type isAnalyzePlanRequest_Analyze interface{ isAnalyzePlanRequest_Analyze() }

type AnalyzePlanRequest_Schema struct {
	Schema *SchemaRequest `protobuf:"bytes,4,opt,name=schema,proto3,oneof"`
}
type AnalyzePlanRequest_Explain struct {
	Explain *ExplainRequest `protobuf:"bytes,5,opt,name=explain,proto3,oneof"`
}
type AnalyzePlanRequest_TreeString struct {
	TreeString *TreeStringRequest `protobuf:"bytes,6,opt,name=tree_string,json=treeString,proto3,oneof"`
}
type AnalyzePlanRequest_IsLocal struct {
	IsLocal *IsLocalRequest `protobuf:"bytes,7,opt,name=is_local,json=isLocal,proto3,oneof"`
}
type AnalyzePlanRequest_IsStreaming struct {
	IsStreaming *IsStreamingRequest `protobuf:"bytes,8,opt,name=is_streaming,json=isStreaming,proto3,oneof"`
}
type AnalyzePlanRequest_InputFiles struct {
	InputFiles *InputFilesRequest `protobuf:"bytes,9,opt,name=input_files,json=inputFiles,proto3,oneof"`
}
type AnalyzePlanRequest_Version struct {
	Version *VersionRequest `protobuf:"bytes,10,opt,name=version,proto3,oneof"`
}
type AnalyzePlanRequest_DdlParse struct {
	DdlParse *DDLParseRequest `protobuf:"bytes,11,opt,name=ddl_parse,json=ddlParse,proto3,oneof"`
}
type AnalyzePlanRequest_SameSemantics struct {
	SameSemantics *SameSemanticsRequest `protobuf:"bytes,12,opt,name=same_semantics,json=sameSemantics,proto3,oneof"`
}

func (*AnalyzePlanRequest_Schema) isAnalyzePlanRequest_Analyze()        {}
func (*AnalyzePlanRequest_Explain) isAnalyzePlanRequest_Analyze()       {}
func (*AnalyzePlanRequest_TreeString) isAnalyzePlanRequest_Analyze()    {}
func (*AnalyzePlanRequest_IsLocal) isAnalyzePlanRequest_Analyze()       {}
func (*AnalyzePlanRequest_IsStreaming) isAnalyzePlanRequest_Analyze()   {}
func (*AnalyzePlanRequest_InputFiles) isAnalyzePlanRequest_Analyze()    {}
func (*AnalyzePlanRequest_Version) isAnalyzePlanRequest_Analyze()       {}
func (*AnalyzePlanRequest_DdlParse) isAnalyzePlanRequest_Analyze()      {}
func (*AnalyzePlanRequest_SameSemantics) isAnalyzePlanRequest_Analyze() {}

func (*AnalyzePlanRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*AnalyzePlanRequest_Schema)(nil),
		(*AnalyzePlanRequest_Explain)(nil),
		(*AnalyzePlanRequest_TreeString)(nil),
		(*AnalyzePlanRequest_IsLocal)(nil),
		(*AnalyzePlanRequest_IsStreaming)(nil),
		(*AnalyzePlanRequest_InputFiles)(nil),
		(*AnalyzePlanRequest_Version)(nil),
		(*AnalyzePlanRequest_DdlParse)(nil),
		(*AnalyzePlanRequest_SameSemantics)(nil),
	}
}

type SchemaRequest struct {
	Plan *Plan `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
}

func (m *SchemaRequest) Reset()         { *m = SchemaRequest{} }
func (m *SchemaRequest) String() string { return messageString(m) }
func (*SchemaRequest) ProtoMessage()    {}

type ExplainRequest struct {
	Plan *Plan       `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	Mode ExplainMode `protobuf:"varint,2,opt,name=mode,proto3,enum=planbridge.ExplainMode" json:"mode,omitempty"`
}

func (m *ExplainRequest) Reset()         { *m = ExplainRequest{} }
func (m *ExplainRequest) String() string { return messageString(m) }
func (*ExplainRequest) ProtoMessage()    {}

type TreeStringRequest struct {
	Plan  *Plan `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	Level int32 `protobuf:"varint,2,opt,name=level,proto3" json:"level,omitempty"`
}

func (m *TreeStringRequest) Reset()         { *m = TreeStringRequest{} }
func (m *TreeStringRequest) String() string { return messageString(m) }
func (*TreeStringRequest) ProtoMessage()    {}

type IsLocalRequest struct {
	Plan *Plan `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
}

func (m *IsLocalRequest) Reset()         { *m = IsLocalRequest{} }
func (m *IsLocalRequest) String() string { return messageString(m) }
func (*IsLocalRequest) ProtoMessage()    {}

type IsStreamingRequest struct {
	Plan *Plan `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
}

func (m *IsStreamingRequest) Reset()         { *m = IsStreamingRequest{} }
func (m *IsStreamingRequest) String() string { return messageString(m) }
func (*IsStreamingRequest) ProtoMessage()    {}

type InputFilesRequest struct {
	Plan *Plan `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
}

func (m *InputFilesRequest) Reset()         { *m = InputFilesRequest{} }
func (m *InputFilesRequest) String() string { return messageString(m) }
func (*InputFilesRequest) ProtoMessage()    {}

// VersionRequest has no input; it asks for the running engine's version.
type VersionRequest struct{}

func (m *VersionRequest) Reset()         { *m = VersionRequest{} }
func (m *VersionRequest) String() string { return messageString(m) }
func (*VersionRequest) ProtoMessage()    {}

// DDLParseRequest parses a standalone DDL type string, independent of any
// plan.
type DDLParseRequest struct {
	DdlString string `protobuf:"bytes,1,opt,name=ddl_string,json=ddlString,proto3" json:"ddl_string,omitempty"`
}

func (m *DDLParseRequest) Reset()         { *m = DDLParseRequest{} }
func (m *DDLParseRequest) String() string { return messageString(m) }
func (*DDLParseRequest) ProtoMessage()    {}

type SameSemanticsRequest struct {
	TargetPlan *Plan `protobuf:"bytes,1,opt,name=target_plan,json=targetPlan,proto3" json:"target_plan,omitempty"`
	OtherPlan  *Plan `protobuf:"bytes,2,opt,name=other_plan,json=otherPlan,proto3" json:"other_plan,omitempty"`
}

func (m *SameSemanticsRequest) Reset()         { *m = SameSemanticsRequest{} }
func (m *SameSemanticsRequest) String() string { return messageString(m) }
func (*SameSemanticsRequest) ProtoMessage()    {}

// AnalyzePlanResponse mirrors the request union variant for variant. The
// session id lets a client demultiplex async responses.
type AnalyzePlanResponse struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`

	// Types that are assignable to Result:
	//	*AnalyzePlanResponse_Schema
	//	*AnalyzePlanResponse_Explain
	//	*AnalyzePlanResponse_TreeString
	//	*AnalyzePlanResponse_IsLocal
	//	*AnalyzePlanResponse_IsStreaming
	//	*AnalyzePlanResponse_InputFiles
	//	*AnalyzePlanResponse_Version
	//	*AnalyzePlanResponse_DdlParse
	//	*AnalyzePlanResponse_SameSemantics
	Result isAnalyzePlanResponse_Result `protobuf_oneof:"result"`
}

func (m *AnalyzePlanResponse) Reset()         { *m = AnalyzePlanResponse{} }
func (m *AnalyzePlanResponse) String() string { return messageString(m) }
func (*AnalyzePlanResponse) ProtoMessage()    {}

func (m *AnalyzePlanResponse) GetResult() isAnalyzePlanResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

type isAnalyzePlanResponse_Result interface{ isAnalyzePlanResponse_Result() }

type AnalyzePlanResponse_Schema struct {
	Schema *SchemaResponse `protobuf:"bytes,2,opt,name=schema,proto3,oneof"`
}
type AnalyzePlanResponse_Explain struct {
	Explain *ExplainResponse `protobuf:"bytes,3,opt,name=explain,proto3,oneof"`
}
type AnalyzePlanResponse_TreeString struct {
	TreeString *TreeStringResponse `protobuf:"bytes,4,opt,name=tree_string,json=treeString,proto3,oneof"`
}
type AnalyzePlanResponse_IsLocal struct {
	IsLocal *IsLocalResponse `protobuf:"bytes,5,opt,name=is_local,json=isLocal,proto3,oneof"`
}
type AnalyzePlanResponse_IsStreaming struct {
	IsStreaming *IsStreamingResponse `protobuf:"bytes,6,opt,name=is_streaming,json=isStreaming,proto3,oneof"`
}
type AnalyzePlanResponse_InputFiles struct {
	InputFiles *InputFilesResponse `protobuf:"bytes,7,opt,name=input_files,json=inputFiles,proto3,oneof"`
}
type AnalyzePlanResponse_Version struct {
	Version *VersionResponse `protobuf:"bytes,8,opt,name=version,proto3,oneof"`
}
type AnalyzePlanResponse_DdlParse struct {
	DdlParse *DDLParseResponse `protobuf:"bytes,9,opt,name=ddl_parse,json=ddlParse,proto3,oneof"`
}
type AnalyzePlanResponse_SameSemantics struct {
	SameSemantics *SameSemanticsResponse `protobuf:"bytes,10,opt,name=same_semantics,json=sameSemantics,proto3,oneof"`
}

func (*AnalyzePlanResponse_Schema) isAnalyzePlanResponse_Result()        {}
func (*AnalyzePlanResponse_Explain) isAnalyzePlanResponse_Result()       {}
func (*AnalyzePlanResponse_TreeString) isAnalyzePlanResponse_Result()    {}
func (*AnalyzePlanResponse_IsLocal) isAnalyzePlanResponse_Result()       {}
func (*AnalyzePlanResponse_IsStreaming) isAnalyzePlanResponse_Result()   {}
func (*AnalyzePlanResponse_InputFiles) isAnalyzePlanResponse_Result()    {}
func (*AnalyzePlanResponse_Version) isAnalyzePlanResponse_Result()       {}
func (*AnalyzePlanResponse_DdlParse) isAnalyzePlanResponse_Result()      {}
func (*AnalyzePlanResponse_SameSemantics) isAnalyzePlanResponse_Result() {}

func (*AnalyzePlanResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*AnalyzePlanResponse_Schema)(nil),
		(*AnalyzePlanResponse_Explain)(nil),
		(*AnalyzePlanResponse_TreeString)(nil),
		(*AnalyzePlanResponse_IsLocal)(nil),
		(*AnalyzePlanResponse_IsStreaming)(nil),
		(*AnalyzePlanResponse_InputFiles)(nil),
		(*AnalyzePlanResponse_Version)(nil),
		(*AnalyzePlanResponse_DdlParse)(nil),
		(*AnalyzePlanResponse_SameSemantics)(nil),
	}
}

type SchemaResponse struct {
	Schema *DataType `protobuf:"bytes,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *SchemaResponse) Reset()         { *m = SchemaResponse{} }
func (m *SchemaResponse) String() string { return messageString(m) }
func (*SchemaResponse) ProtoMessage()    {}

type ExplainResponse struct {
	ExplainString string `protobuf:"bytes,1,opt,name=explain_string,json=explainString,proto3" json:"explain_string,omitempty"`
}

func (m *ExplainResponse) Reset()         { *m = ExplainResponse{} }
func (m *ExplainResponse) String() string { return messageString(m) }
func (*ExplainResponse) ProtoMessage()    {}

type TreeStringResponse struct {
	TreeString string `protobuf:"bytes,1,opt,name=tree_string,json=treeString,proto3" json:"tree_string,omitempty"`
}

func (m *TreeStringResponse) Reset()         { *m = TreeStringResponse{} }
func (m *TreeStringResponse) String() string { return messageString(m) }
func (*TreeStringResponse) ProtoMessage()    {}

type IsLocalResponse struct {
	IsLocal bool `protobuf:"varint,1,opt,name=is_local,json=isLocal,proto3" json:"is_local,omitempty"`
}

func (m *IsLocalResponse) Reset()         { *m = IsLocalResponse{} }
func (m *IsLocalResponse) String() string { return messageString(m) }
func (*IsLocalResponse) ProtoMessage()    {}

type IsStreamingResponse struct {
	IsStreaming bool `protobuf:"varint,1,opt,name=is_streaming,json=isStreaming,proto3" json:"is_streaming,omitempty"`
}

func (m *IsStreamingResponse) Reset()         { *m = IsStreamingResponse{} }
func (m *IsStreamingResponse) String() string { return messageString(m) }
func (*IsStreamingResponse) ProtoMessage()    {}

// InputFilesResponse is a best-effort snapshot; the list may be incomplete.
type InputFilesResponse struct {
	Files []string `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
}

func (m *InputFilesResponse) Reset()         { *m = InputFilesResponse{} }
func (m *InputFilesResponse) String() string { return messageString(m) }
func (*InputFilesResponse) ProtoMessage()    {}

type VersionResponse struct {
	Version string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *VersionResponse) Reset()         { *m = VersionResponse{} }
func (m *VersionResponse) String() string { return messageString(m) }
func (*VersionResponse) ProtoMessage()    {}

type DDLParseResponse struct {
	Parsed *DataType `protobuf:"bytes,1,opt,name=parsed,proto3" json:"parsed,omitempty"`
}

func (m *DDLParseResponse) Reset()         { *m = DDLParseResponse{} }
func (m *DDLParseResponse) String() string { return messageString(m) }
func (*DDLParseResponse) ProtoMessage()    {}

type SameSemanticsResponse struct {
	Result bool `protobuf:"varint,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *SameSemanticsResponse) Reset()         { *m = SameSemanticsResponse{} }
func (m *SameSemanticsResponse) String() string { return messageString(m) }
func (*SameSemanticsResponse) ProtoMessage()    {}

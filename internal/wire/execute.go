// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

import (
	anypb "google.golang.org/protobuf/types/known/anypb"
	structpb "google.golang.org/protobuf/types/known/structpb"
)

// ExecutePlanRequest submits a plan for execution. The response is a stream
// of chunks correlated by session id.
type ExecutePlanRequest struct {
	SessionId   string       `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserContext *UserContext `protobuf:"bytes,2,opt,name=user_context,json=userContext,proto3" json:"user_context,omitempty"`
	Plan        *Plan        `protobuf:"bytes,3,opt,name=plan,proto3" json:"plan,omitempty"`
	// ClientType is advisory, used for logging only.
	ClientType string `protobuf:"bytes,4,opt,name=client_type,json=clientType,proto3" json:"client_type,omitempty"`
}

func (m *ExecutePlanRequest) Reset()         { *m = ExecutePlanRequest{} }
func (m *ExecutePlanRequest) String() string { return messageString(m) }
func (*ExecutePlanRequest) ProtoMessage()    {}

func (m *ExecutePlanRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

// ExecutePlanResponse is one chunk of an execute stream. At least one chunk
// is emitted per request, even for an empty result, so completion never
// depends on stream-closed signaling alone.
type ExecutePlanResponse struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`

	// Types that are assignable to ResponseType:
	//	*ExecutePlanResponse_ResultBatch
	//	*ExecutePlanResponse_SqlCommandResult
	//	*ExecutePlanResponse_Extension
	ResponseType isExecutePlanResponse_ResponseType `protobuf_oneof:"response_type"`

	// Metrics, when present, describe cumulative state as of this chunk.
	Metrics         *Metrics           `protobuf:"bytes,4,opt,name=metrics,proto3" json:"metrics,omitempty"`
	ObservedMetrics []*ObservedMetrics `protobuf:"bytes,6,rep,name=observed_metrics,json=observedMetrics,proto3" json:"observed_metrics,omitempty"`
}

func (m *ExecutePlanResponse) Reset()         { *m = ExecutePlanResponse{} }
func (m *ExecutePlanResponse) String() string { return messageString(m) }
func (*ExecutePlanResponse) ProtoMessage()    {}

func (m *ExecutePlanResponse) GetResponseType() isExecutePlanResponse_ResponseType {
	if m != nil {
		return m.ResponseType
	}
	return nil
}

func (m *ExecutePlanResponse) GetResultBatch() *ResultBatch {
	if x, ok := m.GetResponseType().(*ExecutePlanResponse_ResultBatch); ok {
		return x.ResultBatch
	}
	return nil
}

func (m *ExecutePlanResponse) GetSqlCommandResult() *SqlCommandResult {
	if x, ok := m.GetResponseType().(*ExecutePlanResponse_SqlCommandResult); ok {
		return x.SqlCommandResult
	}
	return nil
}

type isExecutePlanResponse_ResponseType interface{ isExecutePlanResponse_ResponseType() }

type ExecutePlanResponse_ResultBatch struct {
	ResultBatch *ResultBatch `protobuf:"bytes,2,opt,name=result_batch,json=resultBatch,proto3,oneof"`
}
type ExecutePlanResponse_SqlCommandResult struct {
	SqlCommandResult *SqlCommandResult `protobuf:"bytes,3,opt,name=sql_command_result,json=sqlCommandResult,proto3,oneof"`
}
type ExecutePlanResponse_Extension struct {
	Extension *anypb.Any `protobuf:"bytes,999,opt,name=extension,proto3,oneof"`
}

func (*ExecutePlanResponse_ResultBatch) isExecutePlanResponse_ResponseType()      {}
func (*ExecutePlanResponse_SqlCommandResult) isExecutePlanResponse_ResponseType() {}
func (*ExecutePlanResponse_Extension) isExecutePlanResponse_ResponseType()        {}

func (*ExecutePlanResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ExecutePlanResponse_ResultBatch)(nil),
		(*ExecutePlanResponse_SqlCommandResult)(nil),
		(*ExecutePlanResponse_Extension)(nil),
	}
}

// ResultBatch carries an encoded frame of rows. The encoding is an opaque
// format tag from this subsystem's point of view.
type ResultBatch struct {
	RowCount int64  `protobuf:"varint,1,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	Data     []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ResultBatch) Reset()         { *m = ResultBatch{} }
func (m *ResultBatch) String() string { return messageString(m) }
func (*ResultBatch) ProtoMessage()    {}

// SqlCommandResult wraps an eagerly evaluated command's tabular result as a
// relation usable as input to subsequent plans.
type SqlCommandResult struct {
	Relation *Relation `protobuf:"bytes,1,opt,name=relation,proto3" json:"relation,omitempty"`
}

func (m *SqlCommandResult) Reset()         { *m = SqlCommandResult{} }
func (m *SqlCommandResult) String() string { return messageString(m) }
func (*SqlCommandResult) ProtoMessage()    {}

// Metrics is the cumulative per-node metric set for one execute stream.
type Metrics struct {
	Metrics []*MetricsObject `protobuf:"bytes,1,rep,name=metrics,proto3" json:"metrics,omitempty"`
}

func (m *Metrics) Reset()         { *m = Metrics{} }
func (m *Metrics) String() string { return messageString(m) }
func (*Metrics) ProtoMessage()    {}

// MetricsObject holds named values for one plan node. PlanId and Parent form
// a tree a client can reconstruct.
type MetricsObject struct {
	Name             string                  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	PlanId           int64                   `protobuf:"varint,2,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	Parent           int64                   `protobuf:"varint,3,opt,name=parent,proto3" json:"parent,omitempty"`
	ExecutionMetrics map[string]*MetricValue `protobuf:"bytes,4,rep,name=execution_metrics,json=executionMetrics,proto3" json:"execution_metrics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *MetricsObject) Reset()         { *m = MetricsObject{} }
func (m *MetricsObject) String() string { return messageString(m) }
func (*MetricsObject) ProtoMessage()    {}

type MetricValue struct {
	Name       string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value      int64  `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	MetricType string `protobuf:"bytes,3,opt,name=metric_type,json=metricType,proto3" json:"metric_type,omitempty"`
}

func (m *MetricValue) Reset()         { *m = MetricValue{} }
func (m *MetricValue) String() string { return messageString(m) }
func (*MetricValue) ProtoMessage()    {}

// ObservedMetrics are named literal values a client asked to observe inline,
// captured during the chunk's production.
type ObservedMetrics struct {
	Name   string            `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Values []*structpb.Value `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
	Keys   []string          `protobuf:"bytes,3,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *ObservedMetrics) Reset()         { *m = ObservedMetrics{} }
func (m *ObservedMetrics) String() string { return messageString(m) }
func (*ObservedMetrics) ProtoMessage()    {}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

import (
	anypb "google.golang.org/protobuf/types/known/anypb"
)

// UserContext identifies the user on whose behalf a request runs. Every
// request carries one; together with the session id it selects the execution
// context.
type UserContext struct {
	UserId   string       `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	UserName string       `protobuf:"bytes,2,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	// Extensions carry forward-compatible, opaque client annotations.
	Extensions []*anypb.Any `protobuf:"bytes,999,rep,name=extensions,proto3" json:"extensions,omitempty"`
}

func (m *UserContext) Reset()         { *m = UserContext{} }
func (m *UserContext) String() string { return messageString(m) }
func (*UserContext) ProtoMessage()    {}

func (m *UserContext) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

// KeyValue is a config pair. A nil Value distinguishes "key present with no
// value" from an empty string, which the get-option operation relies on.
type KeyValue struct {
	Key   string  `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value *string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return messageString(m) }
func (*KeyValue) ProtoMessage()    {}

func (m *KeyValue) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *KeyValue) GetValue() string {
	if m != nil && m.Value != nil {
		return *m.Value
	}
	return ""
}

// Plan is the envelope submitted by clients: either a queryable relation tree
// or a side-effecting command.
type Plan struct {
	// Types that are assignable to OpType:
	//	*Plan_Root
	//	*Plan_Command
	OpType isPlan_OpType `protobuf_oneof:"op_type"`
}

func (m *Plan) Reset()         { *m = Plan{} }
func (m *Plan) String() string { return messageString(m) }
func (*Plan) ProtoMessage()    {}

type isPlan_OpType interface{ isPlan_OpType() }

type Plan_Root struct {
	Root *Relation `protobuf:"bytes,1,opt,name=root,proto3,oneof"`
}
type Plan_Command struct {
	Command *Command `protobuf:"bytes,2,opt,name=command,proto3,oneof"`
}

func (*Plan_Root) isPlan_OpType()    {}
func (*Plan_Command) isPlan_OpType() {}

func (m *Plan) GetRoot() *Relation {
	if x, ok := m.GetOpType().(*Plan_Root); ok {
		return x.Root
	}
	return nil
}

func (m *Plan) GetCommand() *Command {
	if x, ok := m.GetOpType().(*Plan_Command); ok {
		return x.Command
	}
	return nil
}

func (m *Plan) GetOpType() isPlan_OpType {
	if m != nil {
		return m.OpType
	}
	return nil
}

func (*Plan) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Plan_Root)(nil),
		(*Plan_Command)(nil),
	}
}

// RelationCommon carries fields shared by every relation node.
type RelationCommon struct {
	SourceInfo string `protobuf:"bytes,1,opt,name=source_info,json=sourceInfo,proto3" json:"source_info,omitempty"`
	PlanId     int64  `protobuf:"varint,2,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
}

func (m *RelationCommon) Reset()         { *m = RelationCommon{} }
func (m *RelationCommon) String() string { return messageString(m) }
func (*RelationCommon) ProtoMessage()    {}

// Relation is one node of a lazily evaluated query tree. The engine treats
// the tree as its own input language; this layer only routes on the variant.
type Relation struct {
	Common *RelationCommon `protobuf:"bytes,1,opt,name=common,proto3" json:"common,omitempty"`
	// Types that are assignable to RelType:
	//	*Relation_Sql
	//	*Relation_Range
	//	*Relation_LocalRelation
	//	*Relation_Extension
	RelType isRelation_RelType `protobuf_oneof:"rel_type"`
}

func (m *Relation) Reset()         { *m = Relation{} }
func (m *Relation) String() string { return messageString(m) }
func (*Relation) ProtoMessage()    {}

type isRelation_RelType interface{ isRelation_RelType() }

type Relation_Sql struct {
	Sql *SQL `protobuf:"bytes,2,opt,name=sql,proto3,oneof"`
}
type Relation_Range struct {
	Range *Range `protobuf:"bytes,3,opt,name=range,proto3,oneof"`
}
type Relation_LocalRelation struct {
	LocalRelation *LocalRelation `protobuf:"bytes,4,opt,name=local_relation,json=localRelation,proto3,oneof"`
}
type Relation_Extension struct {
	Extension *anypb.Any `protobuf:"bytes,998,opt,name=extension,proto3,oneof"`
}

func (*Relation_Sql) isRelation_RelType()           {}
func (*Relation_Range) isRelation_RelType()         {}
func (*Relation_LocalRelation) isRelation_RelType() {}
func (*Relation_Extension) isRelation_RelType()     {}

func (m *Relation) GetRelType() isRelation_RelType {
	if m != nil {
		return m.RelType
	}
	return nil
}

func (m *Relation) GetSql() *SQL {
	if x, ok := m.GetRelType().(*Relation_Sql); ok {
		return x.Sql
	}
	return nil
}

func (m *Relation) GetRange() *Range {
	if x, ok := m.GetRelType().(*Relation_Range); ok {
		return x.Range
	}
	return nil
}

func (m *Relation) GetLocalRelation() *LocalRelation {
	if x, ok := m.GetRelType().(*Relation_LocalRelation); ok {
		return x.LocalRelation
	}
	return nil
}

func (*Relation) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Relation_Sql)(nil),
		(*Relation_Range)(nil),
		(*Relation_LocalRelation)(nil),
		(*Relation_Extension)(nil),
	}
}

// SQL is a relation produced by a SQL text evaluated by the engine.
type SQL struct {
	Query string `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
}

func (m *SQL) Reset()         { *m = SQL{} }
func (m *SQL) String() string { return messageString(m) }
func (*SQL) ProtoMessage()    {}

// Range generates a sequence of ids from start (inclusive) to end (exclusive).
type Range struct {
	Start         int64 `protobuf:"varint,1,opt,name=start,proto3" json:"start,omitempty"`
	End           int64 `protobuf:"varint,2,opt,name=end,proto3" json:"end,omitempty"`
	Step          int64 `protobuf:"varint,3,opt,name=step,proto3" json:"step,omitempty"`
	NumPartitions int32 `protobuf:"varint,4,opt,name=num_partitions,json=numPartitions,proto3" json:"num_partitions,omitempty"`
}

func (m *Range) Reset()         { *m = Range{} }
func (m *Range) String() string { return messageString(m) }
func (*Range) ProtoMessage()    {}

// LocalRelation is client-supplied inline data: an encoded frame plus an
// optional DDL schema string.
type LocalRelation struct {
	Data   []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Schema string `protobuf:"bytes,2,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *LocalRelation) Reset()         { *m = LocalRelation{} }
func (m *LocalRelation) String() string { return messageString(m) }
func (*LocalRelation) ProtoMessage()    {}

// Command is a side-effecting operation. Its tabular result, if any, only
// becomes visible once wrapped as a relation by the execute dispatcher.
type Command struct {
	// Types that are assignable to CommandType:
	//	*Command_RegisterFunction
	//	*Command_WriteOperation
	//	*Command_CreateDataframeView
	//	*Command_WriteOperationV2
	//	*Command_SqlCommand
	//	*Command_Extension
	CommandType isCommand_CommandType `protobuf_oneof:"command_type"`
}

func (m *Command) Reset()         { *m = Command{} }
func (m *Command) String() string { return messageString(m) }
func (*Command) ProtoMessage()    {}

type isCommand_CommandType interface{ isCommand_CommandType() }

type Command_RegisterFunction struct {
	RegisterFunction *RegisterFunction `protobuf:"bytes,1,opt,name=register_function,json=registerFunction,proto3,oneof"`
}
type Command_WriteOperation struct {
	WriteOperation *WriteOperation `protobuf:"bytes,2,opt,name=write_operation,json=writeOperation,proto3,oneof"`
}
type Command_CreateDataframeView struct {
	CreateDataframeView *CreateDataframeView `protobuf:"bytes,3,opt,name=create_dataframe_view,json=createDataframeView,proto3,oneof"`
}
type Command_WriteOperationV2 struct {
	WriteOperationV2 *WriteOperationV2 `protobuf:"bytes,4,opt,name=write_operation_v2,json=writeOperationV2,proto3,oneof"`
}
type Command_SqlCommand struct {
	SqlCommand *SqlCommand `protobuf:"bytes,5,opt,name=sql_command,json=sqlCommand,proto3,oneof"`
}
type Command_Extension struct {
	Extension *anypb.Any `protobuf:"bytes,999,opt,name=extension,proto3,oneof"`
}

func (*Command_RegisterFunction) isCommand_CommandType()    {}
func (*Command_WriteOperation) isCommand_CommandType()      {}
func (*Command_CreateDataframeView) isCommand_CommandType() {}
func (*Command_WriteOperationV2) isCommand_CommandType()    {}
func (*Command_SqlCommand) isCommand_CommandType()          {}
func (*Command_Extension) isCommand_CommandType()           {}

func (m *Command) GetCommandType() isCommand_CommandType {
	if m != nil {
		return m.CommandType
	}
	return nil
}

func (m *Command) GetSqlCommand() *SqlCommand {
	if x, ok := m.GetCommandType().(*Command_SqlCommand); ok {
		return x.SqlCommand
	}
	return nil
}

func (*Command) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Command_RegisterFunction)(nil),
		(*Command_WriteOperation)(nil),
		(*Command_CreateDataframeView)(nil),
		(*Command_WriteOperationV2)(nil),
		(*Command_SqlCommand)(nil),
		(*Command_Extension)(nil),
	}
}

// RegisterFunction installs a user function in the session's engine.
type RegisterFunction struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Language string `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	Payload  []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *RegisterFunction) Reset()         { *m = RegisterFunction{} }
func (m *RegisterFunction) String() string { return messageString(m) }
func (*RegisterFunction) ProtoMessage()    {}

// WriteOperation persists a relation to a named table or path. Source and
// mode are opaque format tags passed through to the engine.
type WriteOperation struct {
	Input               *Relation         `protobuf:"bytes,1,opt,name=input,proto3" json:"input,omitempty"`
	Source              string            `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Path                string            `protobuf:"bytes,3,opt,name=path,proto3" json:"path,omitempty"`
	Table               string            `protobuf:"bytes,4,opt,name=table,proto3" json:"table,omitempty"`
	Mode                string            `protobuf:"bytes,5,opt,name=mode,proto3" json:"mode,omitempty"`
	PartitioningColumns []string          `protobuf:"bytes,6,rep,name=partitioning_columns,json=partitioningColumns,proto3" json:"partitioning_columns,omitempty"`
	Options             map[string]string `protobuf:"bytes,7,rep,name=options,proto3" json:"options,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *WriteOperation) Reset()         { *m = WriteOperation{} }
func (m *WriteOperation) String() string { return messageString(m) }
func (*WriteOperation) ProtoMessage()    {}

// WriteOperationV2 is the provider-aware successor of WriteOperation.
type WriteOperationV2 struct {
	Input    *Relation         `protobuf:"bytes,1,opt,name=input,proto3" json:"input,omitempty"`
	Table    string            `protobuf:"bytes,2,opt,name=table,proto3" json:"table,omitempty"`
	Provider string            `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	Mode     string            `protobuf:"bytes,4,opt,name=mode,proto3" json:"mode,omitempty"`
	Options  map[string]string `protobuf:"bytes,5,rep,name=options,proto3" json:"options,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *WriteOperationV2) Reset()         { *m = WriteOperationV2{} }
func (m *WriteOperationV2) String() string { return messageString(m) }
func (*WriteOperationV2) ProtoMessage()    {}

// CreateDataframeView registers a relation under a view name.
type CreateDataframeView struct {
	Input    *Relation `protobuf:"bytes,1,opt,name=input,proto3" json:"input,omitempty"`
	Name     string    `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	IsGlobal bool      `protobuf:"varint,3,opt,name=is_global,json=isGlobal,proto3" json:"is_global,omitempty"`
	Replace  bool      `protobuf:"varint,4,opt,name=replace,proto3" json:"replace,omitempty"`
}

func (m *CreateDataframeView) Reset()         { *m = CreateDataframeView{} }
func (m *CreateDataframeView) String() string { return messageString(m) }
func (*CreateDataframeView) ProtoMessage()    {}

// SqlCommand runs a side-effecting SQL text eagerly; its tabular result is
// wrapped as a relation in the execute response.
type SqlCommand struct {
	Sql string `protobuf:"bytes,1,opt,name=sql,proto3" json:"sql,omitempty"`
}

func (m *SqlCommand) Reset()         { *m = SqlCommand{} }
func (m *SqlCommand) String() string { return messageString(m) }
func (*SqlCommand) ProtoMessage()    {}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

// ConfigRequest applies one config operation to a session's key/value store.
type ConfigRequest struct {
	SessionId   string           `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserContext *UserContext     `protobuf:"bytes,2,opt,name=user_context,json=userContext,proto3" json:"user_context,omitempty"`
	Operation   *ConfigOperation `protobuf:"bytes,3,opt,name=operation,proto3" json:"operation,omitempty"`
	// ClientType is advisory, used for logging only.
	ClientType string `protobuf:"bytes,4,opt,name=client_type,json=clientType,proto3" json:"client_type,omitempty"`
}

func (m *ConfigRequest) Reset()         { *m = ConfigRequest{} }
func (m *ConfigRequest) String() string { return messageString(m) }
func (*ConfigRequest) ProtoMessage()    {}

func (m *ConfigRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

// ConfigOperation is the seven-way union of config operations.
type ConfigOperation struct {
	// Types that are assignable to OpType:
	//	*ConfigOperation_Set
	//	*ConfigOperation_Get
	//	*ConfigOperation_GetWithDefault
	//	*ConfigOperation_GetOption
	//	*ConfigOperation_GetAll
	//	*ConfigOperation_Unset
	//	*ConfigOperation_IsModifiable
	OpType isConfigOperation_OpType `protobuf_oneof:"op_type"`
}

func (m *ConfigOperation) Reset()         { *m = ConfigOperation{} }
func (m *ConfigOperation) String() string { return messageString(m) }
func (*ConfigOperation) ProtoMessage()    {}

func (m *ConfigOperation) GetOpType() isConfigOperation_OpType {
	if m != nil {
		return m.OpType
	}
	return nil
}

type isConfigOperation_OpType interface{ isConfigOperation_OpType() }

type ConfigOperation_Set struct {
	Set *ConfigSet `protobuf:"bytes,1,opt,name=set,proto3,oneof"`
}
type ConfigOperation_Get struct {
	Get *ConfigGet `protobuf:"bytes,2,opt,name=get,proto3,oneof"`
}
type ConfigOperation_GetWithDefault struct {
	GetWithDefault *ConfigGetWithDefault `protobuf:"bytes,3,opt,name=get_with_default,json=getWithDefault,proto3,oneof"`
}
type ConfigOperation_GetOption struct {
	GetOption *ConfigGetOption `protobuf:"bytes,4,opt,name=get_option,json=getOption,proto3,oneof"`
}
type ConfigOperation_GetAll struct {
	GetAll *ConfigGetAll `protobuf:"bytes,5,opt,name=get_all,json=getAll,proto3,oneof"`
}
type ConfigOperation_Unset struct {
	Unset *ConfigUnset `protobuf:"bytes,6,opt,name=unset,proto3,oneof"`
}
type ConfigOperation_IsModifiable struct {
	IsModifiable *ConfigIsModifiable `protobuf:"bytes,7,opt,name=is_modifiable,json=isModifiable,proto3,oneof"`
}

func (*ConfigOperation_Set) isConfigOperation_OpType()            {}
func (*ConfigOperation_Get) isConfigOperation_OpType()            {}
func (*ConfigOperation_GetWithDefault) isConfigOperation_OpType() {}
func (*ConfigOperation_GetOption) isConfigOperation_OpType()      {}
func (*ConfigOperation_GetAll) isConfigOperation_OpType()         {}
func (*ConfigOperation_Unset) isConfigOperation_OpType()          {}
func (*ConfigOperation_IsModifiable) isConfigOperation_OpType()   {}

func (*ConfigOperation) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ConfigOperation_Set)(nil),
		(*ConfigOperation_Get)(nil),
		(*ConfigOperation_GetWithDefault)(nil),
		(*ConfigOperation_GetOption)(nil),
		(*ConfigOperation_GetAll)(nil),
		(*ConfigOperation_Unset)(nil),
		(*ConfigOperation_IsModifiable)(nil),
	}
}

// ConfigSet applies pairs atomically: either all keys are set or none are.
type ConfigSet struct {
	Pairs []*KeyValue `protobuf:"bytes,1,rep,name=pairs,proto3" json:"pairs,omitempty"`
}

func (m *ConfigSet) Reset()         { *m = ConfigSet{} }
func (m *ConfigSet) String() string { return messageString(m) }
func (*ConfigSet) ProtoMessage()    {}

// ConfigGet fails if any requested key is absent.
type ConfigGet struct {
	Keys []string `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *ConfigGet) Reset()         { *m = ConfigGet{} }
func (m *ConfigGet) String() string { return messageString(m) }
func (*ConfigGet) ProtoMessage()    {}

// ConfigGetWithDefault pairs each key with a fallback; it never fails on
// absence.
type ConfigGetWithDefault struct {
	Pairs []*KeyValue `protobuf:"bytes,1,rep,name=pairs,proto3" json:"pairs,omitempty"`
}

func (m *ConfigGetWithDefault) Reset()         { *m = ConfigGetWithDefault{} }
func (m *ConfigGetWithDefault) String() string { return messageString(m) }
func (*ConfigGetWithDefault) ProtoMessage()    {}

// ConfigGetOption represents absence by omitting the value in the returned
// pair.
type ConfigGetOption struct {
	Keys []string `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *ConfigGetOption) Reset()         { *m = ConfigGetOption{} }
func (m *ConfigGetOption) String() string { return messageString(m) }
func (*ConfigGetOption) ProtoMessage()    {}

// ConfigGetAll returns every entry matching the optional key prefix.
type ConfigGetAll struct {
	Prefix string `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *ConfigGetAll) Reset()         { *m = ConfigGetAll{} }
func (m *ConfigGetAll) String() string { return messageString(m) }
func (*ConfigGetAll) ProtoMessage()    {}

type ConfigUnset struct {
	Keys []string `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *ConfigUnset) Reset()         { *m = ConfigUnset{} }
func (m *ConfigUnset) String() string { return messageString(m) }
func (*ConfigUnset) ProtoMessage()    {}

// ConfigIsModifiable answers per key with the strings "true"/"false" (kept
// string-typed for wire compatibility).
type ConfigIsModifiable struct {
	Keys []string `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *ConfigIsModifiable) Reset()         { *m = ConfigIsModifiable{} }
func (m *ConfigIsModifiable) String() string { return messageString(m) }
func (*ConfigIsModifiable) ProtoMessage()    {}

// ConfigResponse carries result pairs plus non-fatal warnings (deprecated or
// unsupported keys).
type ConfigResponse struct {
	SessionId string      `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Pairs     []*KeyValue `protobuf:"bytes,2,rep,name=pairs,proto3" json:"pairs,omitempty"`
	Warnings  []string    `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
}

func (m *ConfigResponse) Reset()         { *m = ConfigResponse{} }
func (m *ConfigResponse) String() string { return messageString(m) }
func (*ConfigResponse) ProtoMessage()    {}

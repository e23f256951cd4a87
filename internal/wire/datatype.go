// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

// TypeKind discriminates DataType. Parameterized kinds read their parameters
// from the sibling fields of DataType.
type TypeKind int32

const (
	TypeKind_TYPE_UNSPECIFIED       TypeKind = 0
	TypeKind_TYPE_NULL              TypeKind = 1
	TypeKind_TYPE_BOOLEAN           TypeKind = 2
	TypeKind_TYPE_BYTE              TypeKind = 3
	TypeKind_TYPE_SHORT             TypeKind = 4
	TypeKind_TYPE_INTEGER           TypeKind = 5
	TypeKind_TYPE_LONG              TypeKind = 6
	TypeKind_TYPE_FLOAT             TypeKind = 7
	TypeKind_TYPE_DOUBLE            TypeKind = 8
	TypeKind_TYPE_DECIMAL           TypeKind = 9
	TypeKind_TYPE_STRING            TypeKind = 10
	TypeKind_TYPE_CHAR              TypeKind = 11
	TypeKind_TYPE_VARCHAR           TypeKind = 12
	TypeKind_TYPE_BINARY            TypeKind = 13
	TypeKind_TYPE_DATE              TypeKind = 14
	TypeKind_TYPE_TIMESTAMP         TypeKind = 15
	TypeKind_TYPE_TIMESTAMP_NTZ     TypeKind = 16
	TypeKind_TYPE_DAY_TIME_INTERVAL TypeKind = 17
	TypeKind_TYPE_ARRAY             TypeKind = 18
	TypeKind_TYPE_MAP               TypeKind = 19
	TypeKind_TYPE_STRUCT            TypeKind = 20
)

var typeKindName = map[TypeKind]string{
	0:  "TYPE_UNSPECIFIED",
	1:  "TYPE_NULL",
	2:  "TYPE_BOOLEAN",
	3:  "TYPE_BYTE",
	4:  "TYPE_SHORT",
	5:  "TYPE_INTEGER",
	6:  "TYPE_LONG",
	7:  "TYPE_FLOAT",
	8:  "TYPE_DOUBLE",
	9:  "TYPE_DECIMAL",
	10: "TYPE_STRING",
	11: "TYPE_CHAR",
	12: "TYPE_VARCHAR",
	13: "TYPE_BINARY",
	14: "TYPE_DATE",
	15: "TYPE_TIMESTAMP",
	16: "TYPE_TIMESTAMP_NTZ",
	17: "TYPE_DAY_TIME_INTERVAL",
	18: "TYPE_ARRAY",
	19: "TYPE_MAP",
	20: "TYPE_STRUCT",
}

func (k TypeKind) String() string {
	if s, ok := typeKindName[k]; ok {
		return s
	}
	return "TYPE_UNSPECIFIED"
}

// DataType is the structured type descriptor exchanged on the wire: a flat
// encoding of the engine's type algebra.
type DataType struct {
	Kind TypeKind `protobuf:"varint,1,opt,name=kind,proto3,enum=planbridge.TypeKind" json:"kind,omitempty"`

	// Decimal parameters.
	Precision int32 `protobuf:"varint,2,opt,name=precision,proto3" json:"precision,omitempty"`
	Scale     int32 `protobuf:"varint,3,opt,name=scale,proto3" json:"scale,omitempty"`

	// Char / varchar length.
	Length int32 `protobuf:"varint,4,opt,name=length,proto3" json:"length,omitempty"`

	// Array parameters.
	ElementType  *DataType `protobuf:"bytes,5,opt,name=element_type,json=elementType,proto3" json:"element_type,omitempty"`
	ContainsNull bool      `protobuf:"varint,6,opt,name=contains_null,json=containsNull,proto3" json:"contains_null,omitempty"`

	// Map parameters.
	KeyType           *DataType `protobuf:"bytes,7,opt,name=key_type,json=keyType,proto3" json:"key_type,omitempty"`
	ValueType         *DataType `protobuf:"bytes,8,opt,name=value_type,json=valueType,proto3" json:"value_type,omitempty"`
	ValueContainsNull bool      `protobuf:"varint,9,opt,name=value_contains_null,json=valueContainsNull,proto3" json:"value_contains_null,omitempty"`

	// Struct fields.
	Fields []*StructField `protobuf:"bytes,10,rep,name=fields,proto3" json:"fields,omitempty"`
}

func (m *DataType) Reset()         { *m = DataType{} }
func (m *DataType) String() string { return messageString(m) }
func (*DataType) ProtoMessage()    {}

// StructField is one named, typed member of a struct type.
type StructField struct {
	Name     string    `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DataType *DataType `protobuf:"bytes,2,opt,name=data_type,json=dataType,proto3" json:"data_type,omitempty"`
	Nullable bool      `protobuf:"varint,3,opt,name=nullable,proto3" json:"nullable,omitempty"`
	Metadata string    `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *StructField) Reset()         { *m = StructField{} }
func (m *StructField) String() string { return messageString(m) }
func (*StructField) ProtoMessage()    {}

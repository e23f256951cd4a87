// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqltypes

import (
	"fmt"

	"planbridge/server/internal/wire"
)

// ToWire converts a type tree to its wire descriptor.
func ToWire(dt DataType) *wire.DataType {
	switch t := dt.(type) {
	case NullType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_NULL}
	case BooleanType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_BOOLEAN}
	case ByteType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_BYTE}
	case ShortType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_SHORT}
	case IntegerType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_INTEGER}
	case LongType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_LONG}
	case FloatType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_FLOAT}
	case DoubleType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_DOUBLE}
	case DecimalType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_DECIMAL, Precision: t.Precision, Scale: t.Scale}
	case StringType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_STRING}
	case CharType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_CHAR, Length: t.Length}
	case VarcharType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_VARCHAR, Length: t.Length}
	case BinaryType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_BINARY}
	case DateType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_DATE}
	case TimestampType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_TIMESTAMP}
	case TimestampNTZType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_TIMESTAMP_NTZ}
	case DayTimeIntervalType:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_DAY_TIME_INTERVAL}
	case ArrayType:
		return &wire.DataType{
			Kind:         wire.TypeKind_TYPE_ARRAY,
			ElementType:  ToWire(t.Element),
			ContainsNull: t.ContainsNull,
		}
	case MapType:
		return &wire.DataType{
			Kind:              wire.TypeKind_TYPE_MAP,
			KeyType:           ToWire(t.Key),
			ValueType:         ToWire(t.Value),
			ValueContainsNull: t.ValueContainsNull,
		}
	case StructType:
		fields := make([]*wire.StructField, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = &wire.StructField{
				Name:     f.Name,
				DataType: ToWire(f.DataType),
				Nullable: f.Nullable,
				Metadata: f.Metadata,
			}
		}
		return &wire.DataType{Kind: wire.TypeKind_TYPE_STRUCT, Fields: fields}
	default:
		return &wire.DataType{Kind: wire.TypeKind_TYPE_UNSPECIFIED}
	}
}

// FromWire converts a wire descriptor back to a type tree.
func FromWire(dt *wire.DataType) (DataType, error) {
	if dt == nil {
		return nil, fmt.Errorf("nil type descriptor")
	}
	switch dt.Kind {
	case wire.TypeKind_TYPE_NULL:
		return NullType{}, nil
	case wire.TypeKind_TYPE_BOOLEAN:
		return BooleanType{}, nil
	case wire.TypeKind_TYPE_BYTE:
		return ByteType{}, nil
	case wire.TypeKind_TYPE_SHORT:
		return ShortType{}, nil
	case wire.TypeKind_TYPE_INTEGER:
		return IntegerType{}, nil
	case wire.TypeKind_TYPE_LONG:
		return LongType{}, nil
	case wire.TypeKind_TYPE_FLOAT:
		return FloatType{}, nil
	case wire.TypeKind_TYPE_DOUBLE:
		return DoubleType{}, nil
	case wire.TypeKind_TYPE_DECIMAL:
		return DecimalType{Precision: dt.Precision, Scale: dt.Scale}, nil
	case wire.TypeKind_TYPE_STRING:
		return StringType{}, nil
	case wire.TypeKind_TYPE_CHAR:
		return CharType{Length: dt.Length}, nil
	case wire.TypeKind_TYPE_VARCHAR:
		return VarcharType{Length: dt.Length}, nil
	case wire.TypeKind_TYPE_BINARY:
		return BinaryType{}, nil
	case wire.TypeKind_TYPE_DATE:
		return DateType{}, nil
	case wire.TypeKind_TYPE_TIMESTAMP:
		return TimestampType{}, nil
	case wire.TypeKind_TYPE_TIMESTAMP_NTZ:
		return TimestampNTZType{}, nil
	case wire.TypeKind_TYPE_DAY_TIME_INTERVAL:
		return DayTimeIntervalType{}, nil
	case wire.TypeKind_TYPE_ARRAY:
		elem, err := FromWire(dt.ElementType)
		if err != nil {
			return nil, err
		}
		return ArrayType{Element: elem, ContainsNull: dt.ContainsNull}, nil
	case wire.TypeKind_TYPE_MAP:
		key, err := FromWire(dt.KeyType)
		if err != nil {
			return nil, err
		}
		val, err := FromWire(dt.ValueType)
		if err != nil {
			return nil, err
		}
		return MapType{Key: key, Value: val, ValueContainsNull: dt.ValueContainsNull}, nil
	case wire.TypeKind_TYPE_STRUCT:
		st := StructType{Fields: make([]StructField, len(dt.Fields))}
		for i, f := range dt.Fields {
			ft, err := FromWire(f.DataType)
			if err != nil {
				return nil, err
			}
			st.Fields[i] = StructField{Name: f.Name, DataType: ft, Nullable: f.Nullable, Metadata: f.Metadata}
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported type kind %v", dt.Kind)
	}
}

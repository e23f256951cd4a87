// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqltypes models the engine's type algebra: the primitive SQL types
// plus decimal, char/varchar, array, map, and struct. It parses DDL-formatted
// type strings, renders types back to DDL and to the structural tree print
// used by schema inspection, and converts to and from the wire descriptor.
package sqltypes

import (
	"fmt"
	"strings"
)

// DataType is one node of a type tree. Implementations are immutable values.
type DataType interface {
	// SimpleString returns the DDL spelling of the type, e.g. "int",
	// "decimal(10,2)", "array<string>".
	SimpleString() string
	// TypeName returns the bare name used in tree prints, e.g. "integer".
	TypeName() string
}

type (
	NullType            struct{}
	StringType          struct{}
	BooleanType         struct{}
	BinaryType          struct{}
	ByteType            struct{}
	ShortType           struct{}
	IntegerType         struct{}
	LongType            struct{}
	FloatType           struct{}
	DoubleType          struct{}
	DateType            struct{}
	TimestampType       struct{}
	TimestampNTZType    struct{}
	DayTimeIntervalType struct{}
)

func (NullType) SimpleString() string            { return "void" }
func (NullType) TypeName() string                { return "void" }
func (StringType) SimpleString() string          { return "string" }
func (StringType) TypeName() string              { return "string" }
func (BooleanType) SimpleString() string         { return "boolean" }
func (BooleanType) TypeName() string             { return "boolean" }
func (BinaryType) SimpleString() string          { return "binary" }
func (BinaryType) TypeName() string              { return "binary" }
func (ByteType) SimpleString() string            { return "tinyint" }
func (ByteType) TypeName() string                { return "byte" }
func (ShortType) SimpleString() string           { return "smallint" }
func (ShortType) TypeName() string               { return "short" }
func (IntegerType) SimpleString() string         { return "int" }
func (IntegerType) TypeName() string             { return "integer" }
func (LongType) SimpleString() string            { return "bigint" }
func (LongType) TypeName() string                { return "long" }
func (FloatType) SimpleString() string           { return "float" }
func (FloatType) TypeName() string               { return "float" }
func (DoubleType) SimpleString() string          { return "double" }
func (DoubleType) TypeName() string              { return "double" }
func (DateType) SimpleString() string            { return "date" }
func (DateType) TypeName() string                { return "date" }
func (TimestampType) SimpleString() string       { return "timestamp" }
func (TimestampType) TypeName() string           { return "timestamp" }
func (TimestampNTZType) SimpleString() string    { return "timestamp_ntz" }
func (TimestampNTZType) TypeName() string        { return "timestamp_ntz" }
func (DayTimeIntervalType) SimpleString() string { return "interval day to second" }
func (DayTimeIntervalType) TypeName() string     { return "daytimeinterval" }

// DecimalType is a fixed-precision decimal. Precision defaults to 10 and
// scale to 0 when unspecified in DDL.
type DecimalType struct {
	Precision int32
	Scale     int32
}

func (t DecimalType) SimpleString() string {
	return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
}
func (t DecimalType) TypeName() string { return t.SimpleString() }

type CharType struct {
	Length int32
}

func (t CharType) SimpleString() string { return fmt.Sprintf("char(%d)", t.Length) }
func (t CharType) TypeName() string     { return t.SimpleString() }

type VarcharType struct {
	Length int32
}

func (t VarcharType) SimpleString() string { return fmt.Sprintf("varchar(%d)", t.Length) }
func (t VarcharType) TypeName() string     { return t.SimpleString() }

type ArrayType struct {
	Element      DataType
	ContainsNull bool
}

func (t ArrayType) SimpleString() string {
	return "array<" + t.Element.SimpleString() + ">"
}
func (t ArrayType) TypeName() string { return "array" }

type MapType struct {
	Key               DataType
	Value             DataType
	ValueContainsNull bool
}

func (t MapType) SimpleString() string {
	return "map<" + t.Key.SimpleString() + "," + t.Value.SimpleString() + ">"
}
func (t MapType) TypeName() string { return "map" }

// StructField is one named member of a struct type.
type StructField struct {
	Name     string
	DataType DataType
	Nullable bool
	Metadata string
}

type StructType struct {
	Fields []StructField
}

func (t StructType) SimpleString() string {
	var b strings.Builder
	b.WriteString("struct<")
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(f.Name)
		b.WriteString(":")
		b.WriteString(f.DataType.SimpleString())
	}
	b.WriteString(">")
	return b.String()
}
func (t StructType) TypeName() string { return "struct" }

// DDL renders a struct as a top-level field list ("a INT,b STRING" form).
func (t StructType) DDL() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		s := f.Name + " " + strings.ToUpper(f.DataType.SimpleString())
		if !f.Nullable {
			s += " NOT NULL"
		}
		parts[i] = s
	}
	return strings.Join(parts, ",")
}

// TreeString renders the structural print of a schema:
//
//	root
//	 |-- a: integer (nullable = true)
//	 |-- b: string (nullable = true)
//
// Nested array, map, and struct types expand one indent level per nesting.
func (t StructType) TreeString() string {
	var b strings.Builder
	b.WriteString("root\n")
	prefix := " |"
	for _, f := range t.Fields {
		treeField(&b, prefix, f.Name, f.DataType, f.Nullable)
	}
	return b.String()
}

func treeField(b *strings.Builder, prefix, name string, dt DataType, nullable bool) {
	fmt.Fprintf(b, "%s-- %s: %s (nullable = %v)\n", prefix, name, dt.TypeName(), nullable)
	treeChildren(b, prefix+"    |", dt)
}

func treeChildren(b *strings.Builder, prefix string, dt DataType) {
	switch t := dt.(type) {
	case ArrayType:
		fmt.Fprintf(b, "%s-- element: %s (containsNull = %v)\n", prefix, t.Element.TypeName(), t.ContainsNull)
		treeChildren(b, prefix+"    |", t.Element)
	case MapType:
		fmt.Fprintf(b, "%s-- key: %s\n", prefix, t.Key.TypeName())
		treeChildren(b, prefix+"    |", t.Key)
		fmt.Fprintf(b, "%s-- value: %s (valueContainsNull = %v)\n", prefix, t.Value.TypeName(), t.ValueContainsNull)
		treeChildren(b, prefix+"    |", t.Value)
	case StructType:
		for _, f := range t.Fields {
			treeField(b, prefix, f.Name, f.DataType, f.Nullable)
		}
	}
}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqltypes

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      DataType
		expectErr bool
	}{
		{name: "bare int", input: "int", want: IntegerType{}},
		{name: "integer synonym", input: "INTEGER", want: IntegerType{}},
		{name: "text synonym", input: "text", want: StringType{}},
		{name: "bool synonym", input: "Bool", want: BooleanType{}},
		{name: "real synonym", input: "real", want: FloatType{}},
		{name: "long synonym", input: "long", want: LongType{}},
		{name: "void", input: "void", want: NullType{}},
		{name: "decimal defaults", input: "decimal", want: DecimalType{Precision: 10, Scale: 0}},
		{name: "decimal precision only", input: "decimal(5)", want: DecimalType{Precision: 5, Scale: 0}},
		{name: "numeric full", input: "numeric(12, 3)", want: DecimalType{Precision: 12, Scale: 3}},
		{name: "char", input: "char(8)", want: CharType{Length: 8}},
		{name: "varchar", input: "varchar(32)", want: VarcharType{Length: 32}},
		{name: "interval day to second", input: "interval day to second", want: DayTimeIntervalType{}},
		{
			name:  "array of string",
			input: "array<string>",
			want:  ArrayType{Element: StringType{}, ContainsNull: true},
		},
		{
			name:  "map",
			input: "map<string, bigint>",
			want:  MapType{Key: StringType{}, Value: LongType{}, ValueContainsNull: true},
		},
		{
			name:  "nested struct",
			input: "struct<a:int, b:array<struct<c:double>>>",
			want: StructType{Fields: []StructField{
				{Name: "a", DataType: IntegerType{}, Nullable: true},
				{Name: "b", DataType: ArrayType{Element: StructType{Fields: []StructField{
					{Name: "c", DataType: DoubleType{}, Nullable: true},
				}}, ContainsNull: true}, Nullable: true},
			}},
		},
		{name: "empty struct", input: "struct<>", want: StructType{}},
		{
			name:  "top-level field list",
			input: "a INT, b STRING",
			want: StructType{Fields: []StructField{
				{Name: "a", DataType: IntegerType{}, Nullable: true},
				{Name: "b", DataType: StringType{}, Nullable: true},
			}},
		},
		{
			name:  "field list with colon separators",
			input: "a:bigint,b:date",
			want: StructType{Fields: []StructField{
				{Name: "a", DataType: LongType{}, Nullable: true},
				{Name: "b", DataType: DateType{}, Nullable: true},
			}},
		},
		{
			name:  "not null suffix",
			input: "id BIGINT NOT NULL, name STRING",
			want: StructType{Fields: []StructField{
				{Name: "id", DataType: LongType{}, Nullable: false},
				{Name: "name", DataType: StringType{}, Nullable: true},
			}},
		},
		{name: "empty input", input: "   ", expectErr: true},
		{name: "unknown type", input: "blob", expectErr: true},
		{name: "unterminated array", input: "array<string", expectErr: true},
		{name: "map missing value", input: "map<string>", expectErr: true},
		{name: "not without null", input: "a INT NOT", expectErr: true},
		{name: "trailing garbage", input: "a INT; drop", expectErr: true},
		{name: "interval year to month", input: "interval year to month", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q)\n got: %#v\nwant: %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStruct(t *testing.T) {
	st, err := ParseStruct("a INT, b STRING NOT NULL")
	if err != nil {
		t.Fatalf("ParseStruct: %v", err)
	}
	if len(st.Fields) != 2 || st.Fields[1].Nullable {
		t.Errorf("unexpected struct: %#v", st)
	}
	if _, err := ParseStruct("bigint"); err == nil {
		t.Error("bare non-struct type must be rejected")
	}
}

func TestDDLRoundTrip(t *testing.T) {
	inputs := []string{
		"a INT,b STRING",
		"id BIGINT NOT NULL,payload ARRAY<DOUBLE>",
		"m MAP<STRING,DECIMAL(12,3)>",
	}
	for _, in := range inputs {
		st, err := ParseStruct(in)
		if err != nil {
			t.Fatalf("ParseStruct(%q): %v", in, err)
		}
		ddl := st.DDL()
		again, err := ParseStruct(ddl)
		if err != nil {
			t.Fatalf("reparse %q: %v", ddl, err)
		}
		if !reflect.DeepEqual(st, again) {
			t.Errorf("DDL round trip changed %q:\n first: %#v\nsecond: %#v", in, st, again)
		}
	}
}

func TestTreeString(t *testing.T) {
	st, err := ParseStruct("a INT, tags ARRAY<STRING>, b STRUCT<c: BIGINT NOT NULL>")
	if err != nil {
		t.Fatalf("ParseStruct: %v", err)
	}
	got := st.TreeString()
	want := strings.Join([]string{
		"root",
		" |-- a: integer (nullable = true)",
		" |-- tags: array (nullable = true)",
		" |    |-- element: string (containsNull = true)",
		" |-- b: struct (nullable = true)",
		" |    |-- c: long (nullable = false)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("TreeString:\n got:\n%s\nwant:\n%s", got, want)
	}
}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqltypes

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a DDL-formatted type string. Both spellings are accepted:
// a bare type ("int", "array<struct<a:bigint>>") and a top-level field list
// ("a INT, b STRING"), which yields a struct. A field list entry may carry a
// NOT NULL suffix. Type names are case-insensitive.
func Parse(ddl string) (DataType, error) {
	s := strings.TrimSpace(ddl)
	if s == "" {
		return nil, fmt.Errorf("empty type string")
	}

	// A bare type that consumes the whole input wins; otherwise the input
	// is read as a field list.
	p := newParser(s)
	if dt, err := p.parseType(); err == nil && p.atEnd() {
		return dt, nil
	}

	p = newParser(s)
	st, err := p.parseFieldList()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("unexpected trailing input %q in type string %q", p.rest(), ddl)
	}
	return st, nil
}

// ParseStruct is Parse restricted to results that are field lists; a bare
// non-struct type is wrapped in a single unnamed-collapse error.
func ParseStruct(ddl string) (StructType, error) {
	dt, err := Parse(ddl)
	if err != nil {
		return StructType{}, err
	}
	st, ok := dt.(StructType)
	if !ok {
		return StructType{}, fmt.Errorf("type string %q is not a struct", ddl)
	}
	return st, nil
}

type parser struct {
	input string
	pos   int
}

func newParser(s string) *parser { return &parser{input: s} }

func (p *parser) atEnd() bool {
	p.skipSpace()
	return p.pos >= len(p.input)
}

func (p *parser) rest() string { return p.input[p.pos:] }

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(c byte) error {
	if !p.consume(c) {
		return fmt.Errorf("expected %q at position %d in %q", string(c), p.pos, p.input)
	}
	return nil
}

// ident reads an identifier, handling backtick quoting for field names.
func (p *parser) ident() (string, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '`' {
		end := strings.IndexByte(p.input[p.pos+1:], '`')
		if end < 0 {
			return "", fmt.Errorf("unterminated quoted identifier in %q", p.input)
		}
		name := p.input[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return name, nil
	}
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected identifier at position %d in %q", start, p.input)
	}
	return p.input[start:p.pos], nil
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *parser) int32Arg() (int32, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at position %d in %q", start, p.input)
	}
	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func (p *parser) parseType() (DataType, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(name) {
	case "void", "null":
		return NullType{}, nil
	case "string", "text":
		return StringType{}, nil
	case "boolean", "bool":
		return BooleanType{}, nil
	case "binary":
		return BinaryType{}, nil
	case "tinyint", "byte":
		return ByteType{}, nil
	case "smallint", "short":
		return ShortType{}, nil
	case "int", "integer":
		return IntegerType{}, nil
	case "bigint", "long":
		return LongType{}, nil
	case "float", "real":
		return FloatType{}, nil
	case "double":
		return DoubleType{}, nil
	case "date":
		return DateType{}, nil
	case "timestamp":
		return TimestampType{}, nil
	case "timestamp_ntz":
		return TimestampNTZType{}, nil
	case "interval":
		// Only the day-to-second form is supported.
		for _, kw := range []string{"day", "to", "second"} {
			w, err := p.ident()
			if err != nil || !strings.EqualFold(w, kw) {
				return nil, fmt.Errorf("unsupported interval type in %q", p.input)
			}
		}
		return DayTimeIntervalType{}, nil
	case "decimal", "dec", "numeric":
		return p.parseDecimal()
	case "char":
		return p.parseLengthType(func(n int32) DataType { return CharType{Length: n} })
	case "varchar":
		return p.parseLengthType(func(n int32) DataType { return VarcharType{Length: n} })
	case "array":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return ArrayType{Element: elem, ContainsNull: true}, nil
	case "map":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		val, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return MapType{Key: key, Value: val, ValueContainsNull: true}, nil
	case "struct":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		if p.consume('>') {
			return StructType{}, nil
		}
		st, err := p.parseFieldList()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported type name %q", name)
	}
}

func (p *parser) parseDecimal() (DataType, error) {
	// Defaults match the engine: decimal = decimal(10,0).
	dt := DecimalType{Precision: 10, Scale: 0}
	if !p.consume('(') {
		return dt, nil
	}
	prec, err := p.int32Arg()
	if err != nil {
		return nil, err
	}
	dt.Precision = prec
	if p.consume(',') {
		scale, err := p.int32Arg()
		if err != nil {
			return nil, err
		}
		dt.Scale = scale
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return dt, nil
}

func (p *parser) parseLengthType(make func(int32) DataType) (DataType, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	n, err := p.int32Arg()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return make(n), nil
}

// parseFieldList reads "name[:] type [NOT NULL]" entries separated by commas.
// It stops before a closing '>' so struct bodies share the same production.
func (p *parser) parseFieldList() (StructType, error) {
	var st StructType
	for {
		name, err := p.ident()
		if err != nil {
			return StructType{}, err
		}
		p.consume(':')
		dt, err := p.parseType()
		if err != nil {
			return StructType{}, err
		}
		field := StructField{Name: name, DataType: dt, Nullable: true}
		// Optional NOT NULL suffix.
		save := p.pos
		if w, err := p.ident(); err == nil && strings.EqualFold(w, "not") {
			if w2, err := p.ident(); err == nil && strings.EqualFold(w2, "null") {
				field.Nullable = false
			} else {
				return StructType{}, fmt.Errorf("expected NULL after NOT in %q", p.input)
			}
		} else {
			p.pos = save
		}
		st.Fields = append(st.Fields, field)
		if !p.consume(',') {
			return st, nil
		}
	}
}

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package engine

import (
	"strings"
	"testing"
)

func TestFrameEncodeNormalizesValues(t *testing.T) {
	uuid := []byte{0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
		0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00}
	f := &Frame{
		Columns: []string{"id", "blob", "note"},
		Rows: [][]any{
			{uuid, []byte{0xde, 0xad}, nil},
		},
	}
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "550e8400-e29b-41d4-a716-446655440000") {
		t.Errorf("16-byte value not rendered as uuid: %s", s)
	}
	if !strings.Contains(s, `\\xdead`) {
		t.Errorf("short byte slice not rendered as hex: %s", s)
	}
	if !strings.Contains(s, "null") {
		t.Errorf("nil not rendered as null: %s", s)
	}
}

func TestFrameEmptyEncodesBothKeys(t *testing.T) {
	data, err := NewFrame([]string{"a"}).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"columns"`) || !strings.Contains(s, `"rows":[]`) {
		t.Errorf("empty frame encoding: %s", s)
	}

	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(f.Columns) != 1 || len(f.Rows) != 0 {
		t.Errorf("round trip: %+v", f)
	}
}

func TestDecodeFrameRejectsGarbage(t *testing.T) {
	if _, err := DecodeFrame([]byte("{not json")); err == nil {
		t.Error("garbage accepted")
	}
}

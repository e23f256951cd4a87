// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package engine

import (
	"encoding/json"
	"fmt"
)

// Frame is a normalized batch of rows. Its JSON encoding is the opaque batch
// payload carried in execute responses; both sides of the protocol agree on
// it without the envelope layer inspecting it.
type Frame struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewFrame returns an empty frame over the given columns. Rows is non-nil so
// the encoding always carries both keys.
func NewFrame(columns []string) *Frame {
	return &Frame{Columns: columns, Rows: [][]any{}}
}

// MarshalJSON normalizes driver-specific values so every frame is
// JSON-serializable. Byte slices of UUID width render in canonical UUID
// form, other byte slices as hex escapes.
func (f *Frame) MarshalJSON() ([]byte, error) {
	type alias Frame
	a := alias(*f)

	if len(f.Rows) > 0 {
		rows := make([][]any, len(f.Rows))
		for i, row := range f.Rows {
			rows[i] = make([]any, len(row))
			for j, val := range row {
				rows[i][j] = normalizeValue(val)
			}
		}
		a.Rows = rows
	}
	return json.Marshal(a)
}

func normalizeValue(val any) any {
	switch v := val.(type) {
	case []byte:
		if len(v) == 16 {
			return uuidString(v)
		}
		return fmt.Sprintf("\\x%x", v)
	case [16]byte:
		return uuidString(v[:])
	case nil:
		return nil
	default:
		return v
	}
}

func uuidString(v []byte) string {
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7],
		v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15])
}

// Encode renders the frame to its wire payload.
func (f *Frame) Encode() ([]byte, error) {
	return f.MarshalJSON()
}

// DecodeFrame parses a wire payload back into a frame.
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &f, nil
}

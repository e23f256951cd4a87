// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package fake provides an in-memory engine used by tests and by the
// "memory" driver. Results are canned: SQL texts resolve against a table of
// prepared frames, local relations decode their inline payload, and range
// relations generate rows.
package fake

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/sqltypes"
	"planbridge/server/internal/wire"
)

// EngineVersion is what the fake reports for version requests.
const EngineVersion = "planbridge-memory/1.2.0"

// Table is a canned result registered under a SQL text.
type Table struct {
	Schema sqltypes.StructType
	Frame  *engine.Frame
	// Files backs the input-files snapshot for this SQL text.
	Files []string
	// Streaming marks the result as an unbounded source.
	Streaming bool
}

// Engine is an in-memory engine.Engine. The zero value is unusable; use New.
type Engine struct {
	mu        sync.RWMutex
	tables    map[string]Table
	views     map[string]*wire.Relation
	functions map[string][]byte
	writes    []string
	closed    bool

	// BatchSize bounds rows per emitted frame. Defaults to 2 so tests
	// exercise multi-chunk streams with small fixtures.
	BatchSize int
}

func New() *Engine {
	return &Engine{
		tables:    make(map[string]Table),
		views:     make(map[string]*wire.Relation),
		functions: make(map[string][]byte),
		BatchSize: 2,
	}
}

// Register installs a canned result for a SQL text.
func (e *Engine) Register(sql string, t Table) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tables[normalize(sql)] = t
}

// Functions returns the names registered through register_function commands.
func (e *Engine) Functions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.functions))
	for n := range e.functions {
		names = append(names, n)
	}
	return names
}

// Writes returns a record of write commands, newest last.
func (e *Engine) Writes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.writes...)
}

func normalize(sql string) string { return strings.TrimSpace(strings.ToLower(sql)) }

func (e *Engine) Version(ctx context.Context) (string, error) {
	return EngineVersion, nil
}

func (e *Engine) resolve(rel *wire.Relation) (Table, error) {
	if rel == nil {
		return Table{}, fmt.Errorf("nil relation")
	}
	switch r := rel.RelType.(type) {
	case *wire.Relation_Sql:
		e.mu.RLock()
		defer e.mu.RUnlock()
		if t, ok := e.tables[normalize(r.Sql.Query)]; ok {
			return t, nil
		}
		return Table{}, fmt.Errorf("unknown query %q", r.Sql.Query)
	case *wire.Relation_LocalRelation:
		f, err := engine.DecodeFrame(r.LocalRelation.Data)
		if err != nil {
			return Table{}, err
		}
		var schema sqltypes.StructType
		if r.LocalRelation.Schema != "" {
			schema, err = sqltypes.ParseStruct(r.LocalRelation.Schema)
			if err != nil {
				return Table{}, err
			}
		} else {
			for _, c := range f.Columns {
				schema.Fields = append(schema.Fields, sqltypes.StructField{
					Name: c, DataType: sqltypes.StringType{}, Nullable: true,
				})
			}
		}
		return Table{Schema: schema, Frame: f}, nil
	case *wire.Relation_Range:
		frame := engine.NewFrame([]string{"id"})
		step := r.Range.Step
		if step == 0 {
			step = 1
		}
		for id := r.Range.Start; (step > 0 && id < r.Range.End) || (step < 0 && id > r.Range.End); id += step {
			frame.Rows = append(frame.Rows, []any{id})
		}
		schema := sqltypes.StructType{Fields: []sqltypes.StructField{
			{Name: "id", DataType: sqltypes.LongType{}, Nullable: false},
		}}
		return Table{Schema: schema, Frame: frame}, nil
	default:
		return Table{}, fmt.Errorf("unsupported relation variant %T", rel.RelType)
	}
}

func (e *Engine) Schema(ctx context.Context, rel *wire.Relation) (sqltypes.StructType, error) {
	t, err := e.resolve(rel)
	if err != nil {
		return sqltypes.StructType{}, err
	}
	return t.Schema, nil
}

func (e *Engine) Explain(ctx context.Context, rel *wire.Relation, mode wire.ExplainMode) (string, error) {
	t, err := e.resolve(rel)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "== Plan (%s) ==\n", strings.TrimPrefix(mode.String(), "EXPLAIN_MODE_"))
	fmt.Fprintf(&b, "Scan memory [%s]\n", t.Schema.SimpleString())
	return b.String(), nil
}

func (e *Engine) IsLocal(ctx context.Context, rel *wire.Relation) (bool, error) {
	switch rel.RelType.(type) {
	case *wire.Relation_LocalRelation, *wire.Relation_Range:
		return true, nil
	default:
		return false, nil
	}
}

func (e *Engine) IsStreaming(ctx context.Context, rel *wire.Relation) (bool, error) {
	t, err := e.resolve(rel)
	if err != nil {
		return false, err
	}
	return t.Streaming, nil
}

func (e *Engine) InputFiles(ctx context.Context, rel *wire.Relation) ([]string, error) {
	t, err := e.resolve(rel)
	if err != nil {
		return nil, err
	}
	return t.Files, nil
}

func (e *Engine) Query(ctx context.Context, rel *wire.Relation) (engine.RowStream, error) {
	t, err := e.resolve(rel)
	if err != nil {
		return nil, err
	}
	size := e.BatchSize
	if size <= 0 {
		size = 2
	}
	return &stream{table: t, batchSize: size}, nil
}

func (e *Engine) RunCommand(ctx context.Context, cmd *wire.Command) (*engine.CommandResult, error) {
	if cmd == nil {
		return nil, fmt.Errorf("nil command")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	switch c := cmd.CommandType.(type) {
	case *wire.Command_SqlCommand:
		if t, ok := e.tables[normalize(c.SqlCommand.Sql)]; ok {
			return &engine.CommandResult{
				Result: t.Frame,
				Schema: t.Schema,
			}, nil
		}
		// Unknown SQL counts as a side effect with no rows.
		e.writes = append(e.writes, c.SqlCommand.Sql)
		return &engine.CommandResult{}, nil
	case *wire.Command_RegisterFunction:
		e.functions[c.RegisterFunction.Name] = c.RegisterFunction.Payload
		return &engine.CommandResult{}, nil
	case *wire.Command_CreateDataframeView:
		if _, exists := e.views[c.CreateDataframeView.Name]; exists && !c.CreateDataframeView.Replace {
			return nil, fmt.Errorf("view %q already exists", c.CreateDataframeView.Name)
		}
		e.views[c.CreateDataframeView.Name] = c.CreateDataframeView.Input
		return &engine.CommandResult{}, nil
	case *wire.Command_WriteOperation:
		e.writes = append(e.writes, "write:"+c.WriteOperation.Table+c.WriteOperation.Path)
		return &engine.CommandResult{RowsAffected: 0}, nil
	case *wire.Command_WriteOperationV2:
		e.writes = append(e.writes, "writev2:"+c.WriteOperationV2.Table)
		return &engine.CommandResult{RowsAffected: 0}, nil
	default:
		return nil, fmt.Errorf("unsupported command variant %T", cmd.CommandType)
	}
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// Closed reports whether Close has been called; used by registry tests.
func (e *Engine) Closed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.closed
}

type stream struct {
	table     Table
	batchSize int
	offset    int
	done      bool
	rowsRead  int64
}

func (s *stream) Next(ctx context.Context) (*engine.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.done {
		return nil, engine.EOF
	}
	rows := s.table.Frame.Rows
	if s.offset >= len(rows) {
		s.done = true
		return nil, engine.EOF
	}
	end := s.offset + s.batchSize
	if end >= len(rows) {
		end = len(rows)
		s.done = true
	}
	batch := &engine.Frame{Columns: s.table.Frame.Columns, Rows: rows[s.offset:end]}
	s.offset = end
	s.rowsRead += int64(len(batch.Rows))
	return batch, nil
}

func (s *stream) Schema() sqltypes.StructType { return s.table.Schema }

func (s *stream) Metrics() []*wire.MetricsObject {
	return []*wire.MetricsObject{
		{
			Name:   "MemoryScan",
			PlanId: 1,
			Parent: 0,
			ExecutionMetrics: map[string]*wire.MetricValue{
				"numOutputRows": {Name: "numOutputRows", Value: s.rowsRead, MetricType: "sum"},
			},
		},
	}
}

func (s *stream) Observed() []*wire.ObservedMetrics { return nil }

func (s *stream) Close() error {
	s.done = true
	return nil
}

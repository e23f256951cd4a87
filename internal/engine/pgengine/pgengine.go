// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pgengine implements the engine boundary over a PostgreSQL
// connection pool. SQL and range relations evaluate directly against the
// database; results stream back in bounded batches pulled by the consumer.
package pgengine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/errors"
	"planbridge/server/internal/sqltypes"
	"planbridge/server/internal/wire"
)

// DefaultBatchSize bounds rows per emitted frame.
const DefaultBatchSize = 1024

// Engine evaluates relations against one PostgreSQL pool.
type Engine struct {
	pool      *pgxpool.Pool
	batchSize int

	versionMu sync.Mutex
	version   string
}

// New wraps an existing pool.
func New(pool *pgxpool.Pool) *Engine {
	return &Engine{pool: pool, batchSize: DefaultBatchSize}
}

// NewFactory returns a factory that opens one pool per execution context, so
// sessions never share connections.
func NewFactory(dsn string) engine.Factory {
	return engine.FactoryFunc(func(ctx context.Context, userID, sessionID string) (engine.Engine, error) {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, errors.Wrap(errors.EngineFailure, "open engine pool", err)
		}
		return New(pool), nil
	})
}

// Version queries the server version once and caches it.
func (e *Engine) Version(ctx context.Context) (string, error) {
	e.versionMu.Lock()
	defer e.versionMu.Unlock()
	if e.version != "" {
		return e.version, nil
	}
	var v string
	if err := e.pool.QueryRow(ctx, "SELECT version()").Scan(&v); err != nil {
		return "", errors.Wrap(errors.EngineFailure, "query engine version", err)
	}
	e.version = v
	return v, nil
}

// relationSQL lowers a relation to a SQL text. Local relations have no
// database-side form and are rejected here.
func relationSQL(rel *wire.Relation) (string, error) {
	if rel == nil {
		return "", errors.New(errors.InvalidRequest, "missing relation")
	}
	switch r := rel.RelType.(type) {
	case *wire.Relation_Sql:
		return r.Sql.Query, nil
	case *wire.Relation_Range:
		step := r.Range.Step
		if step == 0 {
			step = 1
		}
		// generate_series is inclusive on both ends; the protocol's range
		// excludes end.
		return fmt.Sprintf(
			"SELECT id FROM generate_series(%d::bigint, %d::bigint, %d::bigint) AS id",
			r.Range.Start, r.Range.End-sign(step), step,
		), nil
	default:
		return "", errors.Newf(errors.InvalidRequest, "relation variant %T has no SQL form", rel.RelType)
	}
}

func sign(n int64) int64 {
	if n < 0 {
		return -1
	}
	return 1
}

func (e *Engine) Schema(ctx context.Context, rel *wire.Relation) (sqltypes.StructType, error) {
	sql, err := relationSQL(rel)
	if err != nil {
		return sqltypes.StructType{}, err
	}
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return sqltypes.StructType{}, errors.Wrap(errors.EngineFailure, "acquire connection", err)
	}
	defer conn.Release()

	sd, err := conn.Conn().Prepare(ctx, "", sql)
	if err != nil {
		return sqltypes.StructType{}, errors.Wrap(errors.EngineFailure, "prepare for schema", err)
	}
	return schemaFromFields(sd.Fields), nil
}

func schemaFromFields(fds []pgconn.FieldDescription) sqltypes.StructType {
	var st sqltypes.StructType
	for _, fd := range fds {
		st.Fields = append(st.Fields, sqltypes.StructField{
			Name:     string(fd.Name),
			DataType: typeFromOID(fd.DataTypeOID),
			Nullable: true,
		})
	}
	return st
}

func typeFromOID(oid uint32) sqltypes.DataType {
	switch oid {
	case pgtype.BoolOID:
		return sqltypes.BooleanType{}
	case pgtype.Int2OID:
		return sqltypes.ShortType{}
	case pgtype.Int4OID:
		return sqltypes.IntegerType{}
	case pgtype.Int8OID:
		return sqltypes.LongType{}
	case pgtype.Float4OID:
		return sqltypes.FloatType{}
	case pgtype.Float8OID:
		return sqltypes.DoubleType{}
	case pgtype.NumericOID:
		return sqltypes.DecimalType{Precision: 38, Scale: 18}
	case pgtype.ByteaOID:
		return sqltypes.BinaryType{}
	case pgtype.DateOID:
		return sqltypes.DateType{}
	case pgtype.TimestampOID:
		return sqltypes.TimestampNTZType{}
	case pgtype.TimestamptzOID:
		return sqltypes.TimestampType{}
	default:
		// Text, varchar, uuid, json and everything else degrade to string.
		return sqltypes.StringType{}
	}
}

// Explain maps the five explain modes onto EXPLAIN variants. All modes share
// the same row-collection path; the mode only selects the statement prefix.
func (e *Engine) Explain(ctx context.Context, rel *wire.Relation, mode wire.ExplainMode) (string, error) {
	sql, err := relationSQL(rel)
	if err != nil {
		return "", err
	}
	var prefix string
	switch mode {
	case wire.ExplainMode_EXPLAIN_MODE_SIMPLE, wire.ExplainMode_EXPLAIN_MODE_UNSPECIFIED:
		prefix = "EXPLAIN (COSTS FALSE)"
	case wire.ExplainMode_EXPLAIN_MODE_EXTENDED:
		prefix = "EXPLAIN (VERBOSE, COSTS FALSE)"
	case wire.ExplainMode_EXPLAIN_MODE_CODEGEN:
		prefix = "EXPLAIN (VERBOSE, COSTS FALSE, SETTINGS)"
	case wire.ExplainMode_EXPLAIN_MODE_COST:
		prefix = "EXPLAIN (COSTS TRUE)"
	case wire.ExplainMode_EXPLAIN_MODE_FORMATTED:
		prefix = "EXPLAIN (VERBOSE, COSTS TRUE, FORMAT TEXT)"
	default:
		return "", errors.Newf(errors.InvalidRequest, "unknown explain mode %d", int32(mode))
	}

	rows, err := e.pool.Query(ctx, prefix+" "+sql)
	if err != nil {
		return "", errors.Wrap(errors.EngineFailure, "explain", err)
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return "", errors.Wrap(errors.EngineFailure, "read explain row", err)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if rows.Err() != nil {
		return "", errors.Wrap(errors.EngineFailure, "explain", rows.Err())
	}
	return b.String(), nil
}

// IsLocal is always false: every relation evaluates on the database server.
func (e *Engine) IsLocal(ctx context.Context, rel *wire.Relation) (bool, error) {
	_, err := relationSQL(rel)
	return false, err
}

// IsStreaming is always false: the database never produces unbounded
// sources.
func (e *Engine) IsStreaming(ctx context.Context, rel *wire.Relation) (bool, error) {
	_, err := relationSQL(rel)
	return false, err
}

// InputFiles is a best-effort snapshot; database-backed relations have no
// file inputs to report.
func (e *Engine) InputFiles(ctx context.Context, rel *wire.Relation) ([]string, error) {
	_, err := relationSQL(rel)
	return nil, err
}

func (e *Engine) Query(ctx context.Context, rel *wire.Relation) (engine.RowStream, error) {
	sql, err := relationSQL(rel)
	if err != nil {
		return nil, err
	}
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "acquire connection", err)
	}
	rows, err := conn.Query(ctx, sql)
	if err != nil {
		conn.Release()
		return nil, errors.Wrap(errors.EngineFailure, "query", err)
	}
	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = string(fd.Name)
	}
	return &stream{
		conn:      conn,
		rows:      rows,
		columns:   cols,
		schema:    schemaFromFields(fds),
		batchSize: e.batchSize,
	}, nil
}

// RunCommand executes the command inside a transaction; anything short of
// a committed transaction rolls back.
func (e *Engine) RunCommand(ctx context.Context, cmd *wire.Command) (*engine.CommandResult, error) {
	if cmd == nil {
		return nil, errors.New(errors.InvalidRequest, "missing command")
	}
	switch c := cmd.CommandType.(type) {
	case *wire.Command_SqlCommand:
		return e.runSQL(ctx, c.SqlCommand.Sql)
	case *wire.Command_CreateDataframeView:
		return e.createView(ctx, c.CreateDataframeView)
	case *wire.Command_WriteOperation:
		return e.write(ctx, c.WriteOperation.Input, c.WriteOperation.Table, c.WriteOperation.Mode)
	case *wire.Command_WriteOperationV2:
		return e.write(ctx, c.WriteOperationV2.Input, c.WriteOperationV2.Table, c.WriteOperationV2.Mode)
	case *wire.Command_RegisterFunction:
		return nil, errors.Newf(errors.EngineFailure, "engine does not support function registration for %q", c.RegisterFunction.Name)
	default:
		return nil, errors.Newf(errors.InvalidRequest, "unknown command variant %T", cmd.CommandType)
	}
}

func (e *Engine) runSQL(ctx context.Context, sql string) (*engine.CommandResult, error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "begin", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, sql)
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "execute command", err)
	}

	fds := rows.FieldDescriptions()
	res := &engine.CommandResult{}
	if len(fds) > 0 {
		cols := make([]string, len(fds))
		for i, fd := range fds {
			cols[i] = string(fd.Name)
		}
		frame := engine.NewFrame(cols)
		for rows.Next() {
			vals, err := rows.Values()
			if err != nil {
				rows.Close()
				return nil, errors.Wrap(errors.EngineFailure, "read command row", err)
			}
			frame.Rows = append(frame.Rows, vals)
		}
		res.Result = frame
		res.Schema = schemaFromFields(fds)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, errors.Wrap(errors.EngineFailure, "execute command", rows.Err())
	}
	res.RowsAffected = rows.CommandTag().RowsAffected()

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "commit", err)
	}
	return res, nil
}

func (e *Engine) createView(ctx context.Context, v *wire.CreateDataframeView) (*engine.CommandResult, error) {
	input, err := relationSQL(v.Input)
	if err != nil {
		return nil, err
	}
	stmt := "CREATE"
	if v.Replace {
		stmt += " OR REPLACE"
	}
	if !v.IsGlobal {
		stmt += " TEMPORARY"
	}
	stmt += fmt.Sprintf(" VIEW %s AS %s", pgx.Identifier{v.Name}.Sanitize(), input)
	if _, err := e.pool.Exec(ctx, stmt); err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "create view", err)
	}
	return &engine.CommandResult{}, nil
}

func (e *Engine) write(ctx context.Context, input *wire.Relation, table, mode string) (*engine.CommandResult, error) {
	if table == "" {
		return nil, errors.New(errors.InvalidRequest, "write without a table target")
	}
	src, err := relationSQL(input)
	if err != nil {
		return nil, err
	}
	ident := pgx.Identifier{table}.Sanitize()

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "begin", err)
	}
	defer tx.Rollback(ctx)

	var tag pgconn.CommandTag
	switch strings.ToLower(mode) {
	case "append":
		tag, err = tx.Exec(ctx, fmt.Sprintf("INSERT INTO %s %s", ident, src))
	case "overwrite":
		if _, err = tx.Exec(ctx, "DROP TABLE IF EXISTS "+ident); err == nil {
			tag, err = tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s AS %s", ident, src))
		}
	case "", "errorifexists":
		tag, err = tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s AS %s", ident, src))
	case "ignore":
		tag, err = tx.Exec(ctx, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s AS %s", ident, src))
	default:
		return nil, errors.Newf(errors.InvalidRequest, "unknown write mode %q", mode)
	}
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "write "+table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "commit", err)
	}
	return &engine.CommandResult{RowsAffected: tag.RowsAffected()}, nil
}

func (e *Engine) Close() error {
	e.pool.Close()
	return nil
}

type stream struct {
	conn      *pgxpool.Conn
	rows      pgx.Rows
	columns   []string
	schema    sqltypes.StructType
	batchSize int
	rowsRead  int64
	done      bool
}

func (s *stream) Next(ctx context.Context) (*engine.Frame, error) {
	if s.done {
		return nil, engine.EOF
	}
	if err := ctx.Err(); err != nil {
		s.finish()
		return nil, err
	}

	frame := engine.NewFrame(s.columns)
	for len(frame.Rows) < s.batchSize && s.rows.Next() {
		vals, err := s.rows.Values()
		if err != nil {
			s.finish()
			return nil, errors.Wrap(errors.EngineFailure, "read row", err)
		}
		frame.Rows = append(frame.Rows, vals)
	}
	if len(frame.Rows) < s.batchSize {
		err := s.rows.Err()
		s.finish()
		if err != nil {
			return nil, errors.Wrap(errors.EngineFailure, "read rows", err)
		}
		if len(frame.Rows) == 0 {
			return nil, engine.EOF
		}
	}
	s.rowsRead += int64(len(frame.Rows))
	return frame, nil
}

func (s *stream) finish() {
	if s.done {
		return
	}
	s.done = true
	s.rows.Close()
	s.conn.Release()
}

func (s *stream) Schema() sqltypes.StructType { return s.schema }

func (s *stream) Metrics() []*wire.MetricsObject {
	return []*wire.MetricsObject{
		{
			Name:   "PostgresScan",
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
	s.finish()
	return nil
}

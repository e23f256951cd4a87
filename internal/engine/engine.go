// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package engine defines the narrow boundary between the protocol layer and
// the plan evaluator. The service dispatchers only ever see this interface;
// the evaluator behind it is replaceable (an in-memory fake for tests, a
// Postgres-backed engine in production).
//
// Row production is pull-based: a RowStream yields one bounded batch per
// Next call, so chunk emission is paced by consumer readiness and the
// dispatcher never buffers unbounded rows ahead of the client.
package engine

import (
	"context"
	"io"

	"planbridge/server/internal/sqltypes"
	"planbridge/server/internal/wire"
)

// Engine evaluates plans for one session. Implementations must be safe for
// concurrent read-only operations; mutations (commands, function
// registration) are serialized by the caller.
type Engine interface {
	// Version returns the engine's version string.
	Version(ctx context.Context) (string, error)
	// Schema resolves the output schema of a relation.
	Schema(ctx context.Context, rel *wire.Relation) (sqltypes.StructType, error)
	// Explain renders the plan at the requested resolution mode.
	Explain(ctx context.Context, rel *wire.Relation, mode wire.ExplainMode) (string, error)
	// IsLocal reports whether the relation can run without distributed
	// coordination.
	IsLocal(ctx context.Context, rel *wire.Relation) (bool, error)
	// IsStreaming reports whether the relation reads an unbounded source.
	IsStreaming(ctx context.Context, rel *wire.Relation) (bool, error)
	// InputFiles returns a best-effort snapshot of files backing the
	// relation. The list may be incomplete.
	InputFiles(ctx context.Context, rel *wire.Relation) ([]string, error)
	// Query starts row production for a relation.
	Query(ctx context.Context, rel *wire.Relation) (RowStream, error)
	// RunCommand executes a side-effecting command eagerly. A command with
	// a tabular result (sql_command) returns a non-nil Frame.
	RunCommand(ctx context.Context, cmd *wire.Command) (*CommandResult, error)
	// Close releases engine resources.
	Close() error
}

// Factory creates one engine per execution context.
type Factory interface {
	New(ctx context.Context, userID, sessionID string) (Engine, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(ctx context.Context, userID, sessionID string) (Engine, error)

func (f FactoryFunc) New(ctx context.Context, userID, sessionID string) (Engine, error) {
	return f(ctx, userID, sessionID)
}

// RowStream produces result batches on demand. Next returns io.EOF after the
// final batch; Close is idempotent and must be called when the consumer
// stops early.
type RowStream interface {
	// Next blocks until the next batch is ready or the context is done.
	Next(ctx context.Context) (*Frame, error)
	// Schema returns the stream's output schema.
	Schema() sqltypes.StructType
	// Metrics returns cumulative execution metrics as of the last batch.
	Metrics() []*wire.MetricsObject
	// Observed returns literal values captured since the previous call.
	Observed() []*wire.ObservedMetrics
	Close() error
}

// CommandResult is the outcome of a RunCommand call.
type CommandResult struct {
	// Result holds the tabular output of a sql_command; nil for commands
	// with no direct tabular result.
	Result *Frame
	// Schema describes Result when present.
	Schema sqltypes.StructType
	// RowsAffected counts rows touched by a write.
	RowsAffected int64
	Metrics      []*wire.MetricsObject
}

// EOF is re-exported so callers need not import io for the sentinel.
var EOF = io.EOF

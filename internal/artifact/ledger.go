// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package artifact

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"planbridge/server/internal/errors"
)

const (
	ledgerDriver = "sqlite"
	ledgerDSNOpt = "?_pragma=busy_timeout(3000)&_pragma=journal_mode(WAL)"
)

// Ledger is the durable index of accepted artifacts. Only artifacts that
// passed verification are recorded; failures leave no trace. A nil Ledger is
// valid and records nothing, for deployments that keep artifacts ephemeral.
type Ledger struct {
	db *sql.DB
	mu sync.Mutex
}

// LedgerRecord is one accepted artifact.
type LedgerRecord struct {
	SessionID  string
	Name       string
	SizeBytes  int64
	Crc        uint32
	AcceptedAt time.Time
}

func OpenLedger(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.InvalidRequest, "artifact ledger: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "artifact ledger: create dir", err)
	}
	db, err := sql.Open(ledgerDriver, path+ledgerDSNOpt)
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "artifact ledger: open db", err)
	}
	l := &Ledger{db: db}
	if err := l.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *Ledger) Record(ctx context.Context, sessionID, name string, size int64, crc uint32) error {
	if l == nil || l.db == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	const q = `
INSERT INTO artifact_ledger (session_id, name, size_bytes, crc, accepted_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(session_id, name) DO UPDATE SET
	size_bytes = excluded.size_bytes,
	crc = excluded.crc,
	accepted_at = excluded.accepted_at`
	_, err := l.db.ExecContext(ctx, q, sessionID, name, size, int64(crc), time.Now().UnixMilli())
	if err != nil {
		return errors.Wrap(errors.EngineFailure, "artifact ledger: record", err)
	}
	return nil
}

// List returns the accepted artifacts of one session, most recent first.
func (l *Ledger) List(ctx context.Context, sessionID string) ([]LedgerRecord, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	const q = `
SELECT session_id, name, size_bytes, crc, accepted_at
FROM artifact_ledger
WHERE session_id = ?
ORDER BY accepted_at DESC, name`
	rows, err := l.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "artifact ledger: list", err)
	}
	defer rows.Close()
	var out []LedgerRecord
	for rows.Next() {
		var rec LedgerRecord
		var crc, acceptedAt int64
		if err := rows.Scan(&rec.SessionID, &rec.Name, &rec.SizeBytes, &crc, &acceptedAt); err != nil {
			return nil, errors.Wrap(errors.EngineFailure, "artifact ledger: scan", err)
		}
		rec.Crc = uint32(crc)
		rec.AcceptedAt = time.UnixMilli(acceptedAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.EngineFailure, "artifact ledger: list", err)
	}
	return out, nil
}

func (l *Ledger) migrate(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS artifact_ledger (
	session_id TEXT NOT NULL,
	name TEXT NOT NULL,
	size_bytes INTEGER NOT NULL,
	crc INTEGER NOT NULL,
	accepted_at INTEGER NOT NULL,
	PRIMARY KEY (session_id, name)
);
CREATE INDEX IF NOT EXISTS idx_artifact_ledger_session_accepted
ON artifact_ledger(session_id, accepted_at DESC);`
	if _, err := l.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(errors.EngineFailure, "artifact ledger: migrate", err)
	}
	return nil
}

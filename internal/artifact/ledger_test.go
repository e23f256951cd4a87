// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package artifact

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLedgerRecordAndList(t *testing.T) {
	ctx := context.Background()
	l, err := OpenLedger(filepath.Join(t.TempDir(), "ledger", "artifacts.db"))
	if err != nil {
		t.Fatalf("OpenLedger: %v", err)
	}
	defer l.Close()

	if err := l.Record(ctx, "s1", "jars/a.jar", 10, 0xdeadbeef); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Record(ctx, "s1", "files/b.txt", 4, 1); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Record(ctx, "s2", "jars/a.jar", 10, 2); err != nil {
		t.Fatalf("Record: %v", err)
	}

	records, err := l.List(ctx, "s1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.SessionID != "s1" {
			t.Errorf("record from wrong session: %+v", r)
		}
	}
}

func TestLedgerRecordUpserts(t *testing.T) {
	ctx := context.Background()
	l, err := OpenLedger(filepath.Join(t.TempDir(), "artifacts.db"))
	if err != nil {
		t.Fatalf("OpenLedger: %v", err)
	}
	defer l.Close()

	if err := l.Record(ctx, "s1", "a.jar", 10, 1); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// A resent artifact replaces its previous row instead of duplicating it.
	if err := l.Record(ctx, "s1", "a.jar", 12, 2); err != nil {
		t.Fatalf("Record: %v", err)
	}

	records, err := l.List(ctx, "s1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].SizeBytes != 12 || records[0].Crc != 2 {
		t.Errorf("stale row survived upsert: %+v", records[0])
	}
}

func TestLedgerNilIsInert(t *testing.T) {
	var l *Ledger
	if err := l.Record(context.Background(), "s1", "a", 1, 1); err != nil {
		t.Fatalf("nil ledger Record: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("nil ledger Close: %v", err)
	}
}

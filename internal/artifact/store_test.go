// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package artifact

import (
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"planbridge/server/internal/errors"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "simple relative path", input: "jars/app.jar"},
		{name: "nested path", input: "files/sub/dir/data.bin"},
		{name: "bare file", input: "data.bin"},
		{name: "interior dotdot that stays inside", input: "a/b/../c.txt"},
		{name: "empty", input: "", expectErr: true},
		{name: "absolute path", input: "/etc/passwd", expectErr: true},
		{name: "parent escape", input: "../outside.txt", expectErr: true},
		{name: "nested parent escape", input: "a/../../outside.txt", expectErr: true},
		{name: "bare dotdot", input: "..", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanName(tt.input)
			if tt.expectErr {
				if !errors.IsKind(err, errors.InvalidRequest) {
					t.Fatalf("CleanName(%q): expected invalid_request, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanName(%q): %v", tt.input, err)
			}
			if got == "" {
				t.Errorf("CleanName(%q) returned empty name", tt.input)
			}
		})
	}
}

func TestStorePutAndPath(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root, "s1", nil)

	data := []byte("artifact body")
	if err := s.Put("jars/lib/util.jar", data, crc32.ChecksumIEEE(data)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	p, err := s.Path("jars/lib/util.jar")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("stored %q, want %q", got, data)
	}

	// No temp files linger after the rename.
	entries, err := os.ReadDir(filepath.Dir(p))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "util.jar" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestStorePutRejectsEscapingName(t *testing.T) {
	s := NewStore(t.TempDir(), "s1", nil)
	err := s.Put("../escape.txt", []byte("x"), 0)
	if !errors.IsKind(err, errors.InvalidRequest) {
		t.Fatalf("expected invalid_request, got %v", err)
	}
}

func TestStoreRemove(t *testing.T) {
	root := t.TempDir()
	s := NewStore(filepath.Join(root, "sess"), "s1", nil)
	if err := s.Put("a.txt", []byte("x"), 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "sess")); !os.IsNotExist(err) {
		t.Error("session directory survived Remove")
	}
}

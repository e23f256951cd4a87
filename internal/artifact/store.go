// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package artifact

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"planbridge/server/internal/errors"
)

// Store writes verified artifacts under one session's directory. Names are
// relative paths chosen by the client and are sanitized before use: the wire
// format does not forbid ".." segments, so the store must.
type Store struct {
	root      string
	sessionID string
	ledger    *Ledger
}

func NewStore(root, sessionID string, ledger *Ledger) *Store {
	return &Store{root: root, sessionID: sessionID, ledger: ledger}
}

// Put makes a verified artifact durable. The write goes through a temp file
// and rename so a crash never leaves a half-written artifact visible.
func (s *Store) Put(name string, data []byte, crc uint32) error {
	rel, err := CleanName(name)
	if err != nil {
		return err
	}
	dst := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(errors.EngineFailure, "create artifact dir", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".artifact-*")
	if err != nil {
		return errors.Wrap(errors.EngineFailure, "create artifact temp file", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.EngineFailure, "write artifact", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.EngineFailure, "close artifact temp file", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.EngineFailure, "finalize artifact", err)
	}
	return s.ledger.Record(context.Background(), s.sessionID, rel, int64(len(data)), crc)
}

// Path reports where a named artifact lives on disk.
func (s *Store) Path(name string) (string, error) {
	rel, err := CleanName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, rel), nil
}

// Remove deletes the session's artifact directory.
func (s *Store) Remove() error {
	return os.RemoveAll(s.root)
}

// CleanName validates a client-supplied artifact name as a relative path that
// stays under the store root.
func CleanName(name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.InvalidRequest, "artifact name is empty")
	}
	name = filepath.FromSlash(name)
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", errors.Newf(errors.InvalidRequest, "artifact name %q is not relative", name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.InvalidRequest, "artifact name %q escapes the artifact root", name)
	}
	return clean, nil
}

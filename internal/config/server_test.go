// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "server.toml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadServerFillsUnsetKeysFromDefaults(t *testing.T) {
	p := writeConfig(t, `
listen = "0.0.0.0:9000"

[engine]
driver = "postgres"
dsn = "postgresql://u:p@host:5432/db"
`)
	cfg, err := LoadServer(p)
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.Engine.Driver != "postgres" || cfg.Engine.DSN == "" {
		t.Errorf("engine = %+v", cfg.Engine)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want default info", cfg.Log.Level)
	}
	if cfg.Artifacts.Dir == "" || cfg.Artifacts.Ledger == "" {
		t.Errorf("artifact paths not defaulted: %+v", cfg.Artifacts)
	}
}

func TestLoadServerExplicitEmptyValueWins(t *testing.T) {
	p := writeConfig(t, `
[log]
level = "debug"
`)
	cfg, err := LoadServer(p)
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadServerRejectsUnknownDriver(t *testing.T) {
	p := writeConfig(t, `
[engine]
driver = "oracle"
`)
	if _, err := LoadServer(p); err == nil {
		t.Fatal("unknown driver accepted")
	}
}

func TestLoadServerMissingExplicitFileFails(t *testing.T) {
	if _, err := LoadServer(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("missing explicit config file accepted")
	}
}

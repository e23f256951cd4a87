// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"planbridge/server/internal/xdg"
)

// ServerConfig holds the serve-side settings, loaded from a TOML file.
type ServerConfig struct {
	Listen    string          `toml:"listen"`
	Log       LogConfig       `toml:"log"`
	Engine    EngineConfig    `toml:"engine"`
	Artifacts ArtifactsConfig `toml:"artifacts"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// EngineConfig selects the plan evaluator. Driver is "postgres" or "memory".
type EngineConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type ArtifactsConfig struct {
	Dir    string `toml:"dir"`
	Ledger string `toml:"ledger"`
}

// DefaultServerConfig returns the settings used when no config file exists.
func DefaultServerConfig() ServerConfig {
	dataDir, err := xdg.DataDir()
	if err != nil {
		dataDir = "."
	}
	return ServerConfig{
		Listen: "localhost:15002",
		Log:    LogConfig{Level: "info"},
		Engine: EngineConfig{Driver: "memory"},
		Artifacts: ArtifactsConfig{
			Dir:    filepath.Join(dataDir, "artifacts"),
			Ledger: filepath.Join(dataDir, "artifacts.db"),
		},
	}
}

// LoadServer reads a server config file, filling unset keys from defaults.
// An empty path means the default location; a missing file at the default
// location yields the defaults.
func LoadServer(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	explicit := path != ""
	if !explicit {
		dir, err := xdg.ConfigDir()
		if err != nil {
			return ServerConfig{}, err
		}
		path = filepath.Join(dir, "server.toml")
	}

	var raw ServerConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return ServerConfig{}, fmt.Errorf("load server config: %w", err)
	}

	if meta.IsDefined("listen") {
		cfg.Listen = strings.TrimSpace(raw.Listen)
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("engine", "driver") {
		cfg.Engine.Driver = strings.TrimSpace(raw.Engine.Driver)
	}
	if meta.IsDefined("engine", "dsn") {
		cfg.Engine.DSN = strings.TrimSpace(raw.Engine.DSN)
	}
	if meta.IsDefined("artifacts", "dir") {
		cfg.Artifacts.Dir = strings.TrimSpace(raw.Artifacts.Dir)
	}
	if meta.IsDefined("artifacts", "ledger") {
		cfg.Artifacts.Ledger = strings.TrimSpace(raw.Artifacts.Ledger)
	}

	switch cfg.Engine.Driver {
	case "memory", "postgres":
		// An empty postgres DSN is allowed here; it may come from the OS
		// keychain at startup.
	default:
		return ServerConfig{}, fmt.Errorf("load server config: unknown engine.driver %q", cfg.Engine.Driver)
	}
	return cfg, nil
}

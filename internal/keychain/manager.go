// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for
// planbridge. It manages all interactions with the OS keychain/credential
// store, giving the CLI one place to store and retrieve secrets such as the
// server token and an engine DSN.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "planbridge"

// Keys used for storing secrets in the OS keychain.
const (
	KeyServerToken = "server_token"
	KeyEngineDSN   = "engine_dsn"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends, falling back
// to the pass utility where available.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("no usable secure credential store on this OS")
	}
	return ring, nil
}

// SaveServerToken stores the server token in the OS keychain.
// This method is thread-safe.
func (m *Manager) SaveServerToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token == "" {
		return errors.New("empty server token")
	}
	return m.ring.Set(keyring.Item{Key: KeyServerToken, Data: []byte(token)})
}

// LoadServerToken retrieves the server token from the keychain.
// This method is thread-safe.
func (m *Manager) LoadServerToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, err := m.ring.Get(KeyServerToken)
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", errors.New("empty server token")
	}
	return string(it.Data), nil
}

// SaveEngineDSN stores the engine DSN in the keychain.
// This method is thread-safe.
func (m *Manager) SaveEngineDSN(dsn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: KeyEngineDSN, Data: []byte(dsn)})
}

// LoadEngineDSN retrieves the engine DSN from the keychain.
// This method is thread-safe.
func (m *Manager) LoadEngineDSN() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, err := m.ring.Get(KeyEngineDSN)
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

// ClearAll removes all planbridge secrets from the keychain.
// This method is thread-safe.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.ring.Remove(KeyServerToken)
	_ = m.ring.Remove(KeyEngineDSN)
	return nil
}

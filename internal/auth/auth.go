// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth persists the credential used to talk to a Planbridge server.
// The token lives in the OS keychain via internal/keychain; nothing secret
// touches the config file.
package auth

import (
	"errors"
	"os"

	"planbridge/server/internal/keychain"
)

// EnvToken overrides the keychain when set; useful for CI and scripts.
const EnvToken = "PLANBRIDGE_TOKEN"

// SaveToken stores the server token in the keychain.
func SaveToken(token string) error {
	if token == "" {
		return errors.New("auth: token is empty")
	}
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveServerToken(token)
}

// LoadToken returns the server token, preferring the environment override.
// A missing token returns an empty string, not an error; servers may run
// without authentication.
func LoadToken() (string, error) {
	if t := os.Getenv(EnvToken); t != "" {
		return t, nil
	}
	km, err := keychain.GetManager()
	if err != nil {
		return "", err
	}
	t, err := km.LoadServerToken()
	if err != nil {
		return "", nil
	}
	return t, nil
}

// Clear removes stored credentials.
func Clear() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAll()
}

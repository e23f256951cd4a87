// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"sort"
	"strings"
	"sync"

	"planbridge/server/internal/errors"
	"planbridge/server/internal/wire"
)

// confDefaults seeds every session's view of unset keys.
var confDefaults = map[string]string{
	"planbridge.sql.resultBatchSize":     "1024",
	"planbridge.sql.sessionTimeZone":     "UTC",
	"planbridge.sql.ansi.enabled":        "false",
	"planbridge.artifact.maxBatchBytes":  "4194304",
	"planbridge.execute.observeInterval": "1",
}

// confStatic names keys that can never be modified through the session API.
var confStatic = map[string]bool{
	"planbridge.engine.driver":  true,
	"planbridge.server.version": true,
}

// confDeprecated maps deprecated keys to the warning returned alongside
// operations that touch them. Deprecated keys still work; the warning is
// non-fatal by design of the protocol.
var confDeprecated = map[string]string{
	"planbridge.sql.legacyResultEncoding": "The config 'planbridge.sql.legacyResultEncoding' is deprecated and will be removed; result encoding is fixed per session.",
}

// ConfStore is a session-scoped key/value store with default fallback.
// Reads take the read lock; set and unset are single-writer.
type ConfStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewConfStore() *ConfStore {
	return &ConfStore{entries: make(map[string]string)}
}

// Set applies all pairs or none. Validation runs before any write, so a bad
// key never leaves the store partially updated.
func (c *ConfStore) Set(pairs []*wire.KeyValue) ([]string, error) {
	for _, kv := range pairs {
		if kv.GetKey() == "" {
			return nil, errors.New(errors.InvalidRequest, "set with empty key")
		}
		if kv.Value == nil {
			return nil, errors.Newf(errors.InvalidRequest, "set %q without a value", kv.Key)
		}
		if confStatic[kv.Key] {
			return nil, errors.Newf(errors.InvalidRequest, "cannot modify static config %q", kv.Key)
		}
	}
	c.mu.Lock()
	for _, kv := range pairs {
		c.entries[kv.Key] = *kv.Value
	}
	c.mu.Unlock()
	return warningsFor(pairsKeys(pairs)), nil
}

// Get fails if any requested key is absent from both the store and the
// defaults.
func (c *ConfStore) Get(keys []string) ([]*wire.KeyValue, []string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*wire.KeyValue, 0, len(keys))
	for _, k := range keys {
		v, ok := c.lookup(k)
		if !ok {
			return nil, nil, errors.Newf(errors.NotFound, "config %q is not set", k)
		}
		out = append(out, &wire.KeyValue{Key: k, Value: strptr(v)})
	}
	return out, warningsFor(keys), nil
}

// GetWithDefault resolves each key against the store, falling back to the
// caller-supplied default. It never fails on absence; a nil default stays
// nil in the response.
func (c *ConfStore) GetWithDefault(pairs []*wire.KeyValue) ([]*wire.KeyValue, []string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*wire.KeyValue, 0, len(pairs))
	for _, kv := range pairs {
		if v, ok := c.lookup(kv.GetKey()); ok {
			out = append(out, &wire.KeyValue{Key: kv.Key, Value: strptr(v)})
			continue
		}
		out = append(out, &wire.KeyValue{Key: kv.Key, Value: kv.Value})
	}
	return out, warningsFor(pairsKeys(pairs)), nil
}

// GetOption represents absence by omitting the value in the returned pair.
func (c *ConfStore) GetOption(keys []string) ([]*wire.KeyValue, []string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*wire.KeyValue, 0, len(keys))
	for _, k := range keys {
		if v, ok := c.lookup(k); ok {
			out = append(out, &wire.KeyValue{Key: k, Value: strptr(v)})
		} else {
			out = append(out, &wire.KeyValue{Key: k})
		}
	}
	return out, warningsFor(keys), nil
}

// GetAll returns every key matching the optional prefix, defaults included,
// sorted by key. An empty result is a success, not an error.
func (c *ConfStore) GetAll(prefix string) ([]*wire.KeyValue, []string, error) {
	c.mu.RLock()
	merged := make(map[string]string, len(confDefaults)+len(c.entries))
	for k, v := range confDefaults {
		merged[k] = v
	}
	for k, v := range c.entries {
		merged[k] = v
	}
	c.mu.RUnlock()

	keys := make([]string, 0, len(merged))
	for k := range merged {
		if prefix == "" || strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]*wire.KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, &wire.KeyValue{Key: k, Value: strptr(merged[k])})
	}
	return out, warningsFor(keys), nil
}

// Unset removes keys. Unsetting an absent key is a no-op; unsetting a static
// key is an error.
func (c *ConfStore) Unset(keys []string) ([]string, error) {
	for _, k := range keys {
		if confStatic[k] {
			return nil, errors.Newf(errors.InvalidRequest, "cannot unset static config %q", k)
		}
	}
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.mu.Unlock()
	return warningsFor(keys), nil
}

// IsModifiable answers with the strings "true"/"false" per key. The string
// encoding is part of the wire contract.
func (c *ConfStore) IsModifiable(keys []string) ([]*wire.KeyValue, []string, error) {
	out := make([]*wire.KeyValue, 0, len(keys))
	for _, k := range keys {
		v := "true"
		if confStatic[k] {
			v = "false"
		}
		out = append(out, &wire.KeyValue{Key: k, Value: strptr(v)})
	}
	return out, warningsFor(keys), nil
}

// lookup must be called with at least the read lock held.
func (c *ConfStore) lookup(k string) (string, bool) {
	if v, ok := c.entries[k]; ok {
		return v, true
	}
	v, ok := confDefaults[k]
	return v, ok
}

func warningsFor(keys []string) []string {
	var warnings []string
	for _, k := range keys {
		if w, ok := confDeprecated[k]; ok {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

func pairsKeys(pairs []*wire.KeyValue) []string {
	keys := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		keys = append(keys, kv.GetKey())
	}
	return keys
}

func strptr(s string) *string { return &s }

// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"sync"
	"testing"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/engine/fake"
	"planbridge/server/internal/errors"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	factory := engine.FactoryFunc(func(ctx context.Context, userID, sessionID string) (engine.Engine, error) {
		return fake.New(), nil
	})
	return NewRegistry(factory, t.TempDir(), nil)
}

func TestRegistryResolveReusesContext(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	first, err := r.Resolve(ctx, "alice", "s1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := r.Resolve(ctx, "alice", "s1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first != second {
		t.Error("same pair resolved to different contexts")
	}

	other, err := r.Resolve(ctx, "bob", "s1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if other == first {
		t.Error("different users share a context")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestRegistryResolveValidatesIdentity(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "alice", ""); !errors.IsKind(err, errors.InvalidRequest) {
		t.Errorf("missing session id: got %v", err)
	}
	if _, err := r.Resolve(ctx, "", "s1"); !errors.IsKind(err, errors.InvalidRequest) {
		t.Errorf("missing user id: got %v", err)
	}
}

func TestRegistryResolveConcurrent(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	const n = 32
	results := make([]*Session, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			s, err := r.Resolve(ctx, "alice", "s1")
			if err != nil {
				t.Errorf("Resolve: %v", err)
				return
			}
			results[i] = s
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent Resolve produced more than one context")
		}
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryFactoryFailureRegistersNothing(t *testing.T) {
	calls := 0
	factory := engine.FactoryFunc(func(ctx context.Context, userID, sessionID string) (engine.Engine, error) {
		calls++
		if calls == 1 {
			return nil, errors.New(errors.EngineFailure, "boom")
		}
		return fake.New(), nil
	})
	r := NewRegistry(factory, t.TempDir(), nil)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "alice", "s1"); err == nil {
		t.Fatal("expected factory error")
	}
	if r.Len() != 0 {
		t.Fatalf("failed creation left %d sessions registered", r.Len())
	}
	// The next caller retries creation and succeeds.
	if _, err := r.Resolve(ctx, "alice", "s1"); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestRegistryRemoveClosesEngine(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	s, err := r.Resolve(ctx, "alice", "s1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	eng := s.Engine.(*fake.Engine)
	if err := r.Remove("alice", "s1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !eng.Closed() {
		t.Error("engine not closed on removal")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
	if err := r.Remove("alice", "s1"); err != nil {
		t.Errorf("removing an absent pair: %v", err)
	}
}

func TestRegistryCloseAll(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	a, _ := r.Resolve(ctx, "alice", "s1")
	b, _ := r.Resolve(ctx, "bob", "s2")
	r.CloseAll()

	if !a.Engine.(*fake.Engine).Closed() || !b.Engine.(*fake.Engine).Closed() {
		t.Error("CloseAll left an engine open")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestSessionServerIDIsUnique(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	a, _ := r.Resolve(ctx, "alice", "s1")
	b, _ := r.Resolve(ctx, "alice", "s2")
	if a.ServerID == "" || a.ServerID == b.ServerID {
		t.Errorf("server ids: %q vs %q", a.ServerID, b.ServerID)
	}
}

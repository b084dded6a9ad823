package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemorySetGetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "cart-id", "c1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := m.Get(ctx, "cart-id")
	if err != nil || v != "c1" {
		t.Fatalf("got %q, %v", v, err)
	}

	if err := m.Remove(ctx, "cart-id"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := m.Get(ctx, "cart-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestMemoryRemoveMissingIsNoop(t *testing.T) {
	if err := NewMemory().Remove(context.Background(), "nope"); err != nil {
		t.Fatalf("remove of missing key must not fail: %v", err)
	}
}

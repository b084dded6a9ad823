package cache

import (
	"testing"
	"time"
)

func TestGetMissingKey(t *testing.T) {
	c := New[string](time.Minute)
	if _, ok := c.Get("nope"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestSetThenGet(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("answer", 42)
	v, ok := c.Get("answer")
	if !ok || v != 42 {
		t.Fatalf("got %d, %v", v, ok)
	}
}

func TestEntryExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New[string](5 * time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(5*time.Minute + time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after expiry")
	}

	// Expired entries are dropped, so a later Set starts a fresh window.
	c.Set("k", "v2")
	if v, ok := c.Get("k"); !ok || v != "v2" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	c := New[string](time.Minute)
	c.Set("k", "old")
	c.Set("k", "new")
	if v, _ := c.Get("k"); v != "new" {
		t.Fatalf("got %q", v)
	}
}

package cache

import (
	"errors"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Cache[string] {
	t.Helper()
	c := New[string]("test")
	if err := c.SetDir(t.TempDir()); err != nil {
		t.Fatalf("SetDir() error = %v", err)
	}
	return c
}

func TestGetOrSet(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	fn := func() (string, error) {
		calls++
		return "value", nil
	}

	got, err := c.GetOrSet("key", fn, false)
	if err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if got != "value" {
		t.Errorf("GetOrSet() = %q, want %q", got, "value")
	}

	// Second call should be served from cache
	if _, err := c.GetOrSet("key", fn, false); err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestGetOrSetForceUpdate(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	fn := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := c.GetOrSet("key", fn, false); err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if _, err := c.GetOrSet("key", fn, true); err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
}

func TestGetOrSetExpiredTTL(t *testing.T) {
	c := newTestCache(t)
	c.SetTTL(time.Nanosecond)

	calls := 0
	fn := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := c.GetOrSet("key", fn, false); err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := c.GetOrSet("key", fn, false); err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
}

func TestGetOrSetError(t *testing.T) {
	c := newTestCache(t)

	wantErr := errors.New("fetch failed")
	_, err := c.GetOrSet("key", func() (string, error) {
		return "", wantErr
	}, false)
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrSet() error = %v, want %v", err, wantErr)
	}

	// A failed fetch must not poison the cache
	got, err := c.GetOrSet("key", func() (string, error) {
		return "recovered", nil
	}, false)
	if err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if got != "recovered" {
		t.Errorf("GetOrSet() = %q, want %q", got, "recovered")
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "plain key",
			key:  "feed",
			want: "feed",
		},
		{
			name: "url key",
			key:  "https://example.com/live.json",
			want: "https___example.com_live.json",
		},
		{
			name: "parent traversal collapsed",
			key:  "a/../b",
			want: "a_._b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeKey(tt.key); got != tt.want {
				t.Errorf("normalizeKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

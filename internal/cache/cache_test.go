package cache

import (
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New(60 * time.Second)

	if _, ok := c.Get("headlines_AAPL"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("headlines_AAPL", []string{"a", "b"})

	value, ok := c.Get("headlines_AAPL")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	titles, ok := value.([]string)
	if !ok || len(titles) != 2 {
		t.Fatalf("unexpected stored value: %#v", value)
	}
}

func TestCache_LazyExpiry(t *testing.T) {
	c := New(60 * time.Second)

	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("prices_AAPL", 1)

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	if _, ok := c.Get("prices_AAPL"); !ok {
		t.Fatal("entry should still be fresh just under the TTL")
	}

	c.now = func() time.Time { return base.Add(60 * time.Second) }
	if _, ok := c.Get("prices_AAPL"); ok {
		t.Fatal("entry should be stale at exactly the TTL")
	}

	// The stale entry must be gone, not just hidden
	c.mu.Lock()
	_, present := c.items["prices_AAPL"]
	c.mu.Unlock()
	if present {
		t.Fatal("expired entry should be deleted on read")
	}
}

func TestCache_SetRefreshesTimestamp(t *testing.T) {
	c := New(60 * time.Second)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("prices_TSLA", 1)

	c.now = func() time.Time { return base.Add(45 * time.Second) }
	c.Set("prices_TSLA", 2)

	c.now = func() time.Time { return base.Add(90 * time.Second) }
	value, ok := c.Get("prices_TSLA")
	if !ok {
		t.Fatal("overwrite should reset the entry's age")
	}
	if value.(int) != 2 {
		t.Fatalf("expected last written value, got %v", value)
	}
}

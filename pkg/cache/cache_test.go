package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "layout:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatal(err)
	}

	data, ok, err := c.Get(ctx, "layout:abc")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if string(data) != "payload" {
		t.Errorf("got %q, want %q", data, "payload")
	}
}

func TestFileCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get(ctx, "never-set")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected a miss")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "short")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expired entry returned as a hit")
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get(ctx, "forever")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("entry without expiration reported as a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "gone", []byte("x"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "gone"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "gone"); ok {
		t.Error("deleted entry returned as a hit")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "gone"); err != nil {
		t.Errorf("delete of missing key: %v", err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache produced a hit")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestKey(t *testing.T) {
	type payload struct {
		Name  string
		Count int
	}

	a := Key("layout", payload{Name: "gearbox", Count: 3})
	b := Key("layout", payload{Name: "gearbox", Count: 3})
	if a != b {
		t.Errorf("identical inputs produced different keys: %s vs %s", a, b)
	}

	c := Key("layout", payload{Name: "gearbox", Count: 4})
	if a == c {
		t.Error("different inputs produced the same key")
	}

	d := Key("validate", payload{Name: "gearbox", Count: 3})
	if a == d {
		t.Error("different prefixes produced the same key")
	}

	if !strings.HasPrefix(a, "layout:") {
		t.Errorf("key %s does not carry its prefix", a)
	}
	if got := len(strings.TrimPrefix(a, "layout:")); got != 64 {
		t.Errorf("hash part is %d chars, want 64", got)
	}
}

func TestHash(t *testing.T) {
	if Hash([]byte("a")) == Hash([]byte("b")) {
		t.Error("different inputs produced the same hash")
	}
	if got := len(Hash([]byte("a"))); got != 64 {
		t.Errorf("hash length = %d, want 64", got)
	}
}

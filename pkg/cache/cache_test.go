package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	h3 := Hash([]byte("world"))

	if h1 != h2 {
		t.Error("same input should produce same hash")
	}
	if h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	type args struct {
		X []float64 `json:"x_data"`
		Y []float64 `json:"y_data"`
	}

	k1 := ArtifactKey("create_line_plot", args{X: []float64{1, 2}, Y: []float64{3, 4}})
	k2 := ArtifactKey("create_line_plot", args{X: []float64{1, 2}, Y: []float64{3, 4}})
	k3 := ArtifactKey("create_line_plot", args{X: []float64{1, 2}, Y: []float64{3, 5}})
	k4 := ArtifactKey("create_scatter_plot", args{X: []float64{1, 2}, Y: []float64{3, 4}})

	if k1 != k2 {
		t.Error("identical tool and arguments should produce the same key")
	}
	if k1 == k3 {
		t.Error("different arguments should produce different keys")
	}
	if k1 == k4 {
		t.Error("different tools should produce different keys")
	}
	if !strings.HasPrefix(k1, "render:create_line_plot:") {
		t.Errorf("unexpected key format: %s", k1)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("data"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found, err := c.Get(ctx, "key"); err != nil || found {
		t.Errorf("null cache should never find entries (found=%v, err=%v)", found, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	if err := c.Set(ctx, "render:test:abc", payload, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found, err := c.Get(ctx, "render:test:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(payload) {
		t.Errorf("payload mismatch: got %v, want %v", got, payload)
	}

	if err := c.Delete(ctx, "render:test:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := c.Get(ctx, "render:test:abc"); found {
		t.Error("expected miss after delete")
	}
}

func TestFileCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, found, err := c.Get(ctx, "absent"); err != nil || found {
		t.Errorf("expected clean miss (found=%v, err=%v)", found, err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, found, err := c.Get(ctx, "short"); err != nil || found {
		t.Errorf("expired entry should miss (found=%v, err=%v)", found, err)
	}
}

func TestFileCacheNoExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// ttl <= 0 means the entry never expires
	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found, err := c.Get(ctx, "forever"); err != nil || !found {
		t.Errorf("entry without ttl should persist (found=%v, err=%v)", found, err)
	}
}

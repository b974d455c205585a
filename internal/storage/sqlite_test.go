package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tsawler/word-vector-sim/internal/vector"
)

func newTestTable(t *testing.T) *vector.Table {
	t.Helper()
	tbl, err := vector.NewTable(3)
	if err != nil {
		t.Fatal(err)
	}
	_ = tbl.Put("cat", []float32{1, 2, 3})
	_ = tbl.Put("dog", []float32{4, 5, 6})
	return tbl
}

func TestCache_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	if err := cache.SaveTable(ctx, newTestTable(t)); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	loaded, err := cache.LoadTable(ctx)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if loaded.Size() != 2 || loaded.Dim() != 3 {
		t.Errorf("loaded size=%d dim=%d, want 2/3", loaded.Size(), loaded.Dim())
	}
	vec, ok := loaded.Lookup("cat")
	if !ok {
		t.Fatal("cat missing after round trip")
	}
	if vec[0] != 1 || vec[1] != 2 || vec[2] != 3 {
		t.Errorf("cat vector=%v, want [1 2 3]", vec)
	}
}

func TestCache_LoadEmpty(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	if _, err := cache.LoadTable(context.Background()); !errors.Is(err, ErrNoCache) {
		t.Errorf("LoadTable on empty cache: err=%v, want ErrNoCache", err)
	}
}

func TestCache_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	if err := cache.SaveTable(ctx, newTestTable(t)); err != nil {
		t.Fatal(err)
	}

	smaller, _ := vector.NewTable(2)
	_ = smaller.Put("bird", []float32{7, 8})
	if err := cache.SaveTable(ctx, smaller); err != nil {
		t.Fatalf("second SaveTable: %v", err)
	}

	loaded, err := cache.LoadTable(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Size() != 1 || loaded.Dim() != 2 {
		t.Errorf("size=%d dim=%d after replace, want 1/2", loaded.Size(), loaded.Dim())
	}
	if loaded.Has("cat") {
		t.Error("old entries must be gone after SaveTable")
	}
}

func TestCache_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vectors.db")
	cache, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache with nested path: %v", err)
	}
	cache.Close()
}

func TestEncodeDecodeVector(t *testing.T) {
	in := []float32{0, 1.5, -2.25, 3e-7}
	out := decodeVector(encodeVector(in))
	if len(out) != len(in) {
		t.Fatalf("len=%d, want %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("component %d: %v != %v", i, in[i], out[i])
		}
	}
}

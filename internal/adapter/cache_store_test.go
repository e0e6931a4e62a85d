package adapter

import (
	"context"
	"path/filepath"
	"testing"

	m "typepath.dev/pkg/typepath/internal/model"
)

func TestYAMLCacheStore_RoundTrip(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()
	path := m.Path(filepath.Join(t.TempDir(), ".typepath-cache.yaml"))

	manifest := m.Manifest{Packages: map[string]m.ManifestEntry{
		"/src/demo": {Inputs: "in", Output: "out"},
	}}

	if err := store.SaveManifest(ctx, path, manifest); err != nil {
		t.Fatalf("SaveManifest() error = %v", err)
	}

	got, err := store.LoadManifest(ctx, path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	if got.Version != m.ManifestVersion {
		t.Fatalf("LoadManifest() version = %d, want %d", got.Version, m.ManifestVersion)
	}

	if got.Packages["/src/demo"] != (m.ManifestEntry{Inputs: "in", Output: "out"}) {
		t.Fatalf("LoadManifest() entry = %+v", got.Packages["/src/demo"])
	}
}

func TestYAMLCacheStore_LoadMissing(t *testing.T) {
	store := NewCacheStore()

	got, err := store.LoadManifest(context.Background(), m.Path(filepath.Join(t.TempDir(), "none.yaml")))
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	if got.Packages == nil || len(got.Packages) != 0 {
		t.Fatalf("LoadManifest() = %+v, want empty manifest", got)
	}
}

func TestYAMLCacheStore_LoadOldVersion(t *testing.T) {
	store := NewCacheStore()
	path := filepath.Join(t.TempDir(), "cache.yaml")
	writeTestFile(t, path, "version: 0\npackages:\n  /src/demo:\n    inputs: a\n    output: b\n")

	got, err := store.LoadManifest(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	if len(got.Packages) != 0 {
		t.Fatalf("LoadManifest() kept entries of an old manifest: %+v", got.Packages)
	}
}

func TestYAMLCacheStore_LoadCorrupt(t *testing.T) {
	store := NewCacheStore()
	path := filepath.Join(t.TempDir(), "cache.yaml")
	writeTestFile(t, path, "version: [unterminated\n")

	got, err := store.LoadManifest(context.Background(), m.Path(path))
	if err == nil {
		t.Fatalf("LoadManifest() expected decode error")
	}

	if got.Packages == nil {
		t.Fatalf("LoadManifest() should still return a usable empty manifest")
	}
}

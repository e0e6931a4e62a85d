package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "typepath.dev/pkg/typepath/internal/model"
)

// CacheStore persists the generation manifest between runs.
type CacheStore interface {
	LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error)
	SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error
}

// YAMLCacheStore keeps the manifest as a YAML file.
type YAMLCacheStore struct{}

// NewCacheStore constructs a YAMLCacheStore.
func NewCacheStore() *YAMLCacheStore {
	return &YAMLCacheStore{}
}

// LoadManifest reads the manifest at path. A missing file or an older format
// yields an empty manifest.
func (s *YAMLCacheStore) LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error) {
	empty := m.Manifest{Version: m.ManifestVersion, Packages: map[string]m.ManifestEntry{}}

	if err := ctx.Err(); err != nil {
		return empty, err
	}

	data, err := os.ReadFile(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return empty, nil
	}

	if err != nil {
		return empty, fmt.Errorf("read cache %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return empty, fmt.Errorf("decode cache %s: %w", path, err)
	}

	if manifest.Version != m.ManifestVersion || manifest.Packages == nil {
		return empty, nil
	}

	return manifest, nil
}

// SaveManifest writes manifest to path.
func (s *YAMLCacheStore) SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	manifest.Version = m.ManifestVersion

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write cache %s: %w", path, err)
	}

	return nil
}

package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/tools/go/packages"

	m "typepath.dev/pkg/typepath/internal/model"
)

// PackageAdapter loads type-checked Go packages by import path. The loaded
// scopes include unexported declarations and internal packages.
type PackageAdapter interface {
	// Load resolves importPaths from dir and returns the packages that exist,
	// keyed by import path. Missing packages are absent from the map.
	Load(ctx context.Context, dir m.Path, importPaths ...string) (map[string]*packages.Package, error)

	// Deps returns, for every loadable import path, the sorted import paths of
	// all the packages it depends on.
	Deps(ctx context.Context, dir m.Path, importPaths ...string) (map[string][]string, error)
}

// LocalPackageAdapter is backed by golang.org/x/tools/go/packages and the
// go command.
type LocalPackageAdapter struct {
	mode packages.LoadMode
}

// NewLocalPackageAdapter constructs a LocalPackageAdapter. Requested packages
// are type-checked from source so their scopes hold every declaration;
// dependencies come from export data.
func NewLocalPackageAdapter() *LocalPackageAdapter {
	return &LocalPackageAdapter{
		mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes,
	}
}

// Load runs a single go/packages query for all import paths.
func (a *LocalPackageAdapter) Load(ctx context.Context, dir m.Path, importPaths ...string) (map[string]*packages.Package, error) {
	if len(importPaths) == 0 {
		return map[string]*packages.Package{}, nil
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     string(dir),
		Mode:    a.mode,
	}

	loaded, err := packages.Load(cfg, importPaths...)
	if err != nil {
		return nil, fmt.Errorf("load packages from %s: %w", dir, err)
	}

	result := make(map[string]*packages.Package, len(loaded))

	for _, pkg := range loaded {
		if len(pkg.GoFiles) == 0 || pkg.Types == nil {
			slog.Debug("package not found", "importPath", pkg.PkgPath, "errors", len(pkg.Errors))
			continue
		}

		if len(pkg.Errors) > 0 {
			slog.Debug("package loaded with errors", "importPath", pkg.PkgPath, "error", pkg.Errors[0].Msg)
		}

		result[pkg.PkgPath] = pkg
	}

	return result, nil
}

// Deps walks the import graph reported by the go command. Nothing is type
// checked.
func (a *LocalPackageAdapter) Deps(ctx context.Context, dir m.Path, importPaths ...string) (map[string][]string, error) {
	if len(importPaths) == 0 {
		return map[string][]string{}, nil
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     string(dir),
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps,
	}

	roots, err := packages.Load(cfg, importPaths...)
	if err != nil {
		return nil, fmt.Errorf("load imports from %s: %w", dir, err)
	}

	result := make(map[string][]string, len(roots))

	for _, root := range roots {
		if len(root.GoFiles) == 0 {
			continue
		}

		var deps []string

		packages.Visit([]*packages.Package{root}, func(pkg *packages.Package) bool {
			if pkg != root {
				deps = append(deps, pkg.PkgPath)
			}

			return true
		}, nil)

		sort.Strings(deps)
		result[root.PkgPath] = deps
	}

	return result, nil
}

package domain

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"typepath.dev/pkg/typepath/internal/adapter"
	m "typepath.dev/pkg/typepath/internal/model"
)

// metaPatterns are go list patterns that never name a single package.
var metaPatterns = map[string]struct{}{
	"all": {}, "cmd": {}, "main": {}, "std": {}, "tool": {}, "work": {},
}

// Resolver maps parsed paths onto Go packages and objects.
type Resolver interface {
	// ResolveAll resolves every path as seen from pkg, in one package query.
	ResolveAll(ctx context.Context, pkg *m.Package, module m.Module, paths []m.TypePath) ([]m.Resolution, error)
}

type resolver struct {
	adapter.PackageAdapter
}

// NewResolver creates a Resolver backed by the package adapter.
func NewResolver(packageAdapter adapter.PackageAdapter) Resolver {
	return &resolver{PackageAdapter: packageAdapter}
}

// candidate is one way of splitting a path into package and object.
type candidate struct {
	importPath string
	split      int // number of segments consumed by the import path
}

// candidates lists the possible package splits of tp, longest first. A
// wildcard path must name a package with all of its segments.
func candidates(tp m.TypePath, module m.Module) []candidate {
	segments := tp.Segments()

	minSplit := 1
	if tp.Prefix() == m.PrefixCrate {
		minSplit = 0
	}

	if tp.Wildcard() {
		minSplit = len(segments)
	}

	var out []candidate

	for split := len(segments); split >= minSplit; split-- {
		importPath := strings.Join(segments[:split], "/")

		if tp.Prefix() == m.PrefixCrate {
			importPath = joinImportPath(module.Path, importPath)
		} else if _, meta := metaPatterns[importPath]; meta {
			continue
		}

		out = append(out, candidate{importPath: importPath, split: split})
	}

	return out
}

func joinImportPath(base, rel string) string {
	if rel == "" {
		return base
	}

	return base + "/" + rel
}

func (r *resolver) ResolveAll(ctx context.Context, pkg *m.Package, module m.Module, paths []m.TypePath) ([]m.Resolution, error) {
	seen := make(map[string]struct{})

	var importPaths []string

	for _, tp := range paths {
		for _, c := range candidates(tp, module) {
			if _, ok := seen[c.importPath]; ok {
				continue
			}

			seen[c.importPath] = struct{}{}
			importPaths = append(importPaths, c.importPath)
		}
	}

	loaded, err := r.Load(ctx, pkg.Dir, importPaths...)
	if err != nil {
		return nil, fmt.Errorf("resolve paths in %s: %w", pkg.Dir, err)
	}

	resolutions := make([]m.Resolution, 0, len(paths))
	for _, tp := range paths {
		resolutions = append(resolutions, resolveOne(tp, module, pkg.ImportPath, loaded))
	}

	if err := r.markCycles(ctx, pkg, resolutions, loaded); err != nil {
		return nil, err
	}

	return resolutions, nil
}

// markCycles flags the resolutions whose package imports pkg. Importing such
// a package from pkg's generated file would close an import cycle.
func (r *resolver) markCycles(ctx context.Context, pkg *m.Package, resolutions []m.Resolution, loaded map[string]*packages.Package) error {
	if pkg.ImportPath == "" {
		return nil
	}

	seen := make(map[string]struct{})

	var targets []string

	for _, res := range resolutions {
		if _, ok := loaded[res.ImportPath]; !ok || res.Local {
			continue
		}

		if _, ok := seen[res.ImportPath]; ok {
			continue
		}

		seen[res.ImportPath] = struct{}{}
		targets = append(targets, res.ImportPath)
	}

	if len(targets) == 0 {
		return nil
	}

	deps, err := r.Deps(ctx, pkg.Dir, targets...)
	if err != nil {
		return fmt.Errorf("import graph of %s: %w", pkg.Dir, err)
	}

	for i := range resolutions {
		resolutions[i].Cycle = slices.Contains(deps[resolutions[i].ImportPath], pkg.ImportPath)
	}

	return nil
}

// resolveOne picks the longest loadable package prefix and looks the rest of
// the path up in its scope. When nothing loads it still returns the most
// likely split so the emitted reference produces a compiler error.
func resolveOne(tp m.TypePath, module m.Module, current string, loaded map[string]*packages.Package) m.Resolution {
	segments := tp.Segments()
	options := candidates(tp, module)

	for _, c := range options {
		pkg, ok := loaded[c.importPath]
		if !ok {
			continue
		}

		res := m.Resolution{
			ImportPath:  c.importPath,
			PackageName: pkg.Name,
			Local:       c.importPath == current,
		}

		if c.split == len(segments) {
			res.Kind = m.ObjectPackage
			res.Found = true
			res.Exported = !isInternalTo(c.importPath, current)

			return res
		}

		res.Object = segments[c.split]
		res.Members = segments[c.split+1:]
		lookup(&res, pkg.Types)
		res.Exported = res.Exported && !isInternalTo(c.importPath, current)

		return res
	}

	res := m.Resolution{Kind: m.ObjectUnknown}

	switch {
	case len(options) == 0:
		res.ImportPath = strings.Join(segments, "/")
	case tp.Wildcard() || len(options) == 1:
		res.ImportPath = options[0].importPath
		if options[0].split < len(segments) {
			res.Object = segments[options[0].split]
			res.Members = segments[options[0].split+1:]
		}
	default:
		// Assume the last segment is the object.
		guess := options[1]
		res.ImportPath = guess.importPath
		res.Object = segments[guess.split]
		res.Members = segments[guess.split+1:]
	}

	res.Local = res.ImportPath == current

	return res
}

// lookup finds res.Object and its member chain in scope, with unexported
// access.
func lookup(res *m.Resolution, pkg *types.Package) {
	res.Kind = m.ObjectUnknown

	obj := pkg.Scope().Lookup(res.Object)
	if obj == nil {
		return
	}

	res.Kind = objectKind(obj)
	res.Exported = obj.Exported()

	typ := obj.Type()

	for _, member := range res.Members {
		sel, _, _ := types.LookupFieldOrMethod(typ, true, pkg, member)
		if sel == nil {
			return
		}

		res.Exported = res.Exported && token.IsExported(member)
		typ = sel.Type()
	}

	res.Found = true
}

func objectKind(obj types.Object) m.ObjectKind {
	switch o := obj.(type) {
	case *types.TypeName:
		if named, ok := o.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			return m.ObjectGeneric
		}

		if alias, ok := o.Type().(*types.Alias); ok && alias.TypeParams().Len() > 0 {
			return m.ObjectGeneric
		}

		return m.ObjectType
	case *types.Func:
		if sig, ok := o.Type().(*types.Signature); ok && sig.TypeParams().Len() > 0 {
			return m.ObjectGeneric
		}

		return m.ObjectValue
	default:
		return m.ObjectValue
	}
}

// isInternalTo reports whether importPath sits below an internal element
// that current is not rooted at.
func isInternalTo(importPath, current string) bool {
	elems := strings.Split(importPath, "/")

	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i] != "internal" {
			continue
		}

		parent := strings.Join(elems[:i], "/")
		if parent == "" {
			return true
		}

		return current != parent && !strings.HasPrefix(current, parent+"/")
	}

	return false
}

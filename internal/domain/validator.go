package domain

import (
	"fmt"
	"sort"
	"strings"

	m "typepath.dev/pkg/typepath/internal/model"
)

// importAliasPrefix names the imports of the generated file. The aliases live
// in the file block, so they must not collide with package-level names.
const importAliasPrefix = "typepath"

// Import is one import line of a generated file.
type Import struct {
	Name string // "_" for a blank import
	Path string
}

// scopeCheck collects the declarations that make the compiler resolve every
// array-form path of a package.
type scopeCheck struct {
	aliases map[string]string
	blank   map[string]struct{}
	decls   []string
	seen    map[string]struct{}
}

func newScopeCheck() *scopeCheck {
	return &scopeCheck{
		aliases: make(map[string]string),
		blank:   make(map[string]struct{}),
		seen:    make(map[string]struct{}),
	}
}

// Add records the import and reference that validate res.
//
//   - package or wildcard:      import _ "path"
//   - type:                     type _ = alias.T
//   - value:                    var _ = alias.X
//   - member chain of a type:   var _ = func(x alias.T) { _ = x.F }
//   - member chain of a value:  var _ = func() { _ = alias.V.F }
//   - generic object:           import _ "path" (cannot be named uninstantiated)
//
// Same-package targets are referenced without a qualifier.
func (sc *scopeCheck) Add(res m.Resolution) {
	if res.Object == "" || res.Kind == m.ObjectGeneric {
		if !res.Local {
			sc.blank[res.ImportPath] = struct{}{}
		}

		return
	}

	qualifier := ""
	if !res.Local {
		qualifier = sc.alias(res.ImportPath) + "."
	}

	sc.addDecl(reference(res, qualifier))
}

func (sc *scopeCheck) alias(importPath string) string {
	if alias, ok := sc.aliases[importPath]; ok {
		return alias
	}

	alias := fmt.Sprintf("%s%d", importAliasPrefix, len(sc.aliases))
	sc.aliases[importPath] = alias

	return alias
}

func (sc *scopeCheck) addDecl(decl string) {
	if _, ok := sc.seen[decl]; ok {
		return
	}

	sc.seen[decl] = struct{}{}
	sc.decls = append(sc.decls, decl)
}

func reference(res m.Resolution, qualifier string) string {
	name := qualifier + res.Object

	switch {
	case len(res.Members) == 0 && res.Kind == m.ObjectType:
		return fmt.Sprintf("type _ = %s", name)
	case len(res.Members) == 0:
		return fmt.Sprintf("var _ = %s", name)
	case res.Kind == m.ObjectType:
		return fmt.Sprintf("var _ = func(x %s) { _ = x.%s }", name, strings.Join(res.Members, "."))
	default:
		return fmt.Sprintf("var _ = func() { _ = %s.%s }", name, strings.Join(res.Members, "."))
	}
}

// Imports lists blank and named imports sorted by path. A path imported under
// an alias is not imported blank again.
func (sc *scopeCheck) Imports() []Import {
	imports := make([]Import, 0, len(sc.aliases)+len(sc.blank))

	for path, alias := range sc.aliases {
		imports = append(imports, Import{Name: alias, Path: path})
	}

	for path := range sc.blank {
		if _, named := sc.aliases[path]; named {
			continue
		}

		imports = append(imports, Import{Name: "_", Path: path})
	}

	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })

	return imports
}

// Decls returns the reference declarations in insertion order.
func (sc *scopeCheck) Decls() []string {
	return append([]string(nil), sc.decls...)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "typepath.dev/pkg/typepath/internal/model"
)

func TestScopeCheck_References(t *testing.T) {
	tests := []struct {
		name    string
		res     m.Resolution
		imports []Import
		decls   []string
	}{
		{
			name:    "package",
			res:     m.Resolution{ImportPath: "bufio", Kind: m.ObjectPackage, Found: true},
			imports: []Import{{Name: "_", Path: "bufio"}},
		},
		{
			name:    "type",
			res:     m.Resolution{ImportPath: "net/http", Object: "Client", Kind: m.ObjectType},
			imports: []Import{{Name: "typepath0", Path: "net/http"}},
			decls:   []string{"type _ = typepath0.Client"},
		},
		{
			name:    "value",
			res:     m.Resolution{ImportPath: "fmt", Object: "Println", Kind: m.ObjectValue},
			imports: []Import{{Name: "typepath0", Path: "fmt"}},
			decls:   []string{"var _ = typepath0.Println"},
		},
		{
			name:    "type member",
			res:     m.Resolution{ImportPath: "net/http", Object: "Client", Members: []string{"Do"}, Kind: m.ObjectType},
			imports: []Import{{Name: "typepath0", Path: "net/http"}},
			decls:   []string{"var _ = func(x typepath0.Client) { _ = x.Do }"},
		},
		{
			name:    "value member",
			res:     m.Resolution{ImportPath: "net/http", Object: "DefaultClient", Members: []string{"Timeout"}, Kind: m.ObjectValue},
			imports: []Import{{Name: "typepath0", Path: "net/http"}},
			decls:   []string{"var _ = func() { _ = typepath0.DefaultClient.Timeout }"},
		},
		{
			name:    "generic",
			res:     m.Resolution{ImportPath: "sync/atomic", Object: "Pointer", Kind: m.ObjectGeneric},
			imports: []Import{{Name: "_", Path: "sync/atomic"}},
		},
		{
			name:  "local type",
			res:   m.Resolution{ImportPath: "example.com/demo", Object: "Widget", Kind: m.ObjectType, Local: true},
			decls: []string{"type _ = Widget"},
		},
		{
			name: "local package",
			res:  m.Resolution{ImportPath: "example.com/demo", Kind: m.ObjectPackage, Local: true},
		},
		{
			name:    "unresolved guess",
			res:     m.Resolution{ImportPath: "nosuch", Object: "Thing", Kind: m.ObjectUnknown},
			imports: []Import{{Name: "typepath0", Path: "nosuch"}},
			decls:   []string{"var _ = typepath0.Thing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newScopeCheck()
			sc.Add(tt.res)

			assert.Equal(t, tt.imports, nilIfEmpty(sc.Imports()))
			assert.Equal(t, tt.decls, sc.Decls())
		})
	}
}

func nilIfEmpty(imports []Import) []Import {
	if len(imports) == 0 {
		return nil
	}

	return imports
}

func TestScopeCheck_SharesAliasesAndDedupes(t *testing.T) {
	sc := newScopeCheck()

	sc.Add(m.Resolution{ImportPath: "net/http", Object: "Client", Kind: m.ObjectType})
	sc.Add(m.Resolution{ImportPath: "fmt", Object: "Println", Kind: m.ObjectValue})
	sc.Add(m.Resolution{ImportPath: "net/http", Object: "Client", Kind: m.ObjectType})
	sc.Add(m.Resolution{ImportPath: "net/http", Kind: m.ObjectPackage})
	sc.Add(m.Resolution{ImportPath: "bufio", Kind: m.ObjectPackage})

	assert.Equal(t, []Import{
		{Name: "_", Path: "bufio"},
		{Name: "typepath1", Path: "fmt"},
		{Name: "typepath0", Path: "net/http"},
	}, sc.Imports())
	assert.Equal(t, []string{
		"type _ = typepath0.Client",
		"var _ = typepath1.Println",
	}, sc.Decls())
}

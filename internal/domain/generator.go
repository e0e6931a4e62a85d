package domain

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	m "typepath.dev/pkg/typepath/internal/model"
)

// GeneratedHeader marks files written by the generator.
const GeneratedHeader = "// Code generated by typepath. DO NOT EDIT."

const fileTemplate = `{{ header }}

package {{ .PackageName }}
{{ if .Imports }}
import (
{{- range .Imports }}
	{{ .Name }} {{ printf "%q" .Path }}
{{- end }}
)
{{ end }}
{{- if .Checks }}
// The declarations below only exist to make the compiler resolve every
// typepath:array path of this package.
{{ range .Checks }}
{{ . }}
{{- end }}
{{ end }}
{{- range .Bindings }}
// {{ .Name }} holds the segments of {{ .Source }}.
var {{ .Name }} = {{ .Literal }}
{{ end -}}
`

var generatedFile = template.Must(template.New("typepath").Funcs(template.FuncMap{
	"header": func() string { return GeneratedHeader },
}).Parse(fileTemplate))

// Binding is one generated variable.
type Binding struct {
	Name    string
	Source  string
	Literal string
}

type fileData struct {
	PackageName string
	Imports     []Import
	Checks      []string
	Bindings    []Binding
}

// GenerateFile renders the generated source of one package. resolutions run
// parallel to invocations; only array-form invocations contribute scope
// checks.
func GenerateFile(packageName string, invocations []m.Invocation, resolutions []m.Resolution) ([]byte, error) {
	if len(invocations) != len(resolutions) {
		return nil, fmt.Errorf("generate %s: %d invocations but %d resolutions", packageName, len(invocations), len(resolutions))
	}

	checks := newScopeCheck()
	data := fileData{PackageName: packageName}

	for i, inv := range invocations {
		if inv.Kind == m.DirectiveArray {
			checks.Add(resolutions[i])
		}

		data.Bindings = append(data.Bindings, Binding{
			Name:    inv.Name,
			Source:  inv.Path.String(),
			Literal: inv.Rendered.GoLiteral(),
		})
	}

	data.Imports = checks.Imports()
	data.Checks = checks.Decls()

	var buf bytes.Buffer
	if err := generatedFile.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("generate %s: %w", packageName, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated %s: %w", packageName, err)
	}

	return formatted, nil
}

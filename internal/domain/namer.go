package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "typepath.dev/pkg/typepath/internal/model"
)

// ConstNamePrefix starts every synthesized binding name.
const ConstNamePrefix = "PATH"

// markerNames spell the non-identifier markers inside a synthesized name.
var markerNames = map[string]string{
	m.RootMarker:     "ROOT",
	m.WildcardMarker: "ALL",
}

// ConstName derives the binding name of the named-constant form: "PATH"
// followed by "_" and the uppercased text of every rendered segment.
// Segments are uppercased as written; no underscores are inserted at case
// changes, so crate::foo::privateMod yields PATH_CRATE_FOO_PRIVATEMOD.
func ConstName(tp m.TypePath) string {
	// Casers keep state and must not be shared between goroutines.
	upper := cases.Upper(language.Und)

	var b strings.Builder

	b.WriteString(ConstNamePrefix)

	for _, segment := range Render(tp) {
		b.WriteString("_")

		if name, ok := markerNames[segment]; ok {
			b.WriteString(name)
			continue
		}

		b.WriteString(upper.String(segment))
	}

	return b.String()
}

package domain

import (
	m "typepath.dev/pkg/typepath/internal/model"
)

// Render lays out tp as [prefix, segments..., "*"?]. The result owns its strings.
func Render(tp m.TypePath) m.RenderedSegments {
	rendered := make(m.RenderedSegments, 0, tp.Len())
	rendered = append(rendered, tp.Prefix().String())
	rendered = append(rendered, tp.Segments()...)

	if tp.Wildcard() {
		rendered = append(rendered, m.WildcardMarker)
	}

	return rendered
}

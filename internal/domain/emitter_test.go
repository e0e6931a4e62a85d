package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typepath.dev/pkg/typepath/internal/model"
)

func mustPath(t *testing.T, src string) m.TypePath {
	t.Helper()

	parser, err := NewPathParser(DefaultGrammar)
	require.NoError(t, err)

	tp, err := parser.Parse(src)
	require.NoError(t, err)

	return tp
}

func TestRender(t *testing.T) {
	tests := []struct {
		src  string
		want m.RenderedSegments
	}{
		{"::fmt", m.RenderedSegments{"::", "fmt"}},
		{"::net::http::Client", m.RenderedSegments{"::", "net", "http", "Client"}},
		{"crate::foo", m.RenderedSegments{"crate", "foo"}},
		{"crate::foo::bar::*", m.RenderedSegments{"crate", "foo", "bar", "*"}},
		{"::std::*", m.RenderedSegments{"::", "std", "*"}},
		{"crate::例::傅", m.RenderedSegments{"crate", "例", "傅"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tp := mustPath(t, tt.src)
			got := Render(tp)

			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tp.Len())
		})
	}
}

func TestRender_DoesNotAliasPath(t *testing.T) {
	tp := mustPath(t, "crate::foo::bar")

	rendered := Render(tp)
	rendered[1] = "changed"

	assert.Equal(t, []string{"foo", "bar"}, tp.Segments())
	assert.Equal(t, m.RenderedSegments{"crate", "foo", "bar"}, Render(tp))
}

func TestRenderedSegments_GoLiteral(t *testing.T) {
	assert.Equal(t, `[3]string{"crate", "foo", "bar"}`, Render(mustPath(t, "crate::foo::bar")).GoLiteral())
	assert.Equal(t, `[3]string{"::", "std", "*"}`, Render(mustPath(t, "::std::*")).GoLiteral())
	assert.Equal(t, `[2]string{"crate", "例"}`, Render(mustPath(t, "crate::例")).GoLiteral())
}

package grammars

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typepath.dev/pkg/typepath/internal/model"
)

type pathParser interface {
	Name() string
	Parse(src string) (m.TypePath, error)
}

func parsers() []pathParser {
	return []pathParser{NewRestrictedParser(), NewLexicalParser()}
}

func TestParse_Accepts(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		prefix   m.PathPrefix
		segments []string
		wildcard bool
	}{
		{"root single", "::fmt", m.PrefixRoot, []string{"fmt"}, false},
		{"root nested", "::net::http::Client", m.PrefixRoot, []string{"net", "http", "Client"}, false},
		{"crate single", "crate::foo", m.PrefixCrate, []string{"foo"}, false},
		{"crate nested", "crate::foo::bar::Baz", m.PrefixCrate, []string{"foo", "bar", "Baz"}, false},
		{"root wildcard", "::std::*", m.PrefixRoot, []string{"std"}, true},
		{"crate wildcard", "crate::foo::bar::*", m.PrefixCrate, []string{"foo", "bar"}, true},
		{"spaces around separators", ":: a :: b", m.PrefixRoot, []string{"a", "b"}, false},
		{"space after crate", "crate :: foo", m.PrefixCrate, []string{"foo"}, false},
		{"leading and trailing whitespace", " \t::a::b\r\n", m.PrefixRoot, []string{"a", "b"}, false},
		{"newlines between tokens", "crate::\n\tfoo::\n\tbar", m.PrefixCrate, []string{"foo", "bar"}, false},
		{"spaced wildcard", "::a :: *", m.PrefixRoot, []string{"a"}, true},
		{"underscore identifiers", "crate::_private::mod_2", m.PrefixCrate, []string{"_private", "mod_2"}, false},
		{"non-ASCII identifiers", "crate::例::傅", m.PrefixCrate, []string{"例", "傅"}, false},
		{"supplementary plane letter", "::𐊜", m.PrefixRoot, []string{"𐊜"}, false},
		{"mixed case kept", "crate::foo::privateMod", m.PrefixCrate, []string{"foo", "privateMod"}, false},
		{"crate as inner segment", "::crate::x", m.PrefixRoot, []string{"crate", "x"}, false},
	}

	for _, parser := range parsers() {
		for _, tt := range tests {
			t.Run(parser.Name()+"/"+tt.name, func(t *testing.T) {
				tp, err := parser.Parse(tt.src)
				require.NoError(t, err)

				assert.Equal(t, tt.prefix, tp.Prefix())
				assert.Equal(t, tt.segments, tp.Segments())
				assert.Equal(t, tt.wildcard, tp.Wildcard())
			})
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"whitespace only", " \n\t"},
		{"bare separator", "::"},
		{"bare crate", "crate"},
		{"crate separator only", "crate::"},
		{"no prefix", "foo::bar"},
		{"single colon prefix", ":foo"},
		{"split separator", ": :foo"},
		{"trailing separator", "::a::"},
		{"trailing separator after crate path", "crate::foo::"},
		{"empty middle segment", "::a:: ::b"},
		{"triple colon", "::a:::b"},
		{"leading triple colon", ":::a"},
		{"wildcard only", "::*"},
		{"crate wildcard only", "crate::*"},
		{"wildcard not last", "::a::*::b"},
		{"double wildcard", "::a::**"},
		{"wildcard then more", "::a::* b"},
		{"keyword segment", "::a::type"},
		{"keyword first segment", "crate::func"},
		{"digit start", "::a::1b"},
		{"dot", "::a.b"},
		{"generic arguments", "::a::B<C>"},
		{"single colon inside", "::a:b"},
		{"crate without separator", "crate:foo"},
		{"crate prefix word", "cratex::foo"},
		{"trailing comment", "::a // note"},
		{"string literal", `"::a"`},
		{"unicode space", "::a\u2003::b"},
		{"leading byte order mark", "\ufeff::a"},
		{"inner byte order mark", "::a::\ufeffb"},
	}

	for _, parser := range parsers() {
		for _, tt := range tests {
			t.Run(parser.Name()+"/"+tt.name, func(t *testing.T) {
				tp, err := parser.Parse(tt.src)
				require.Error(t, err)
				assert.True(t, tp.IsZero(), "no partial result")

				var grammarErr *m.GrammarError
				assert.True(t, errors.As(err, &grammarErr), "got %T", err)
			})
		}
	}
}

func TestParse_ErrorOffsets(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		offset int
	}{
		{"trailing separator", "::a::", 5},
		{"digit start", "::a::1b", 5},
		{"empty middle segment", "::a:: ::b", 6},
		{"leading byte order mark", "\ufeff::a", 0},
	}

	for _, parser := range parsers() {
		for _, tt := range tests {
			t.Run(parser.Name()+"/"+tt.name, func(t *testing.T) {
				_, err := parser.Parse(tt.src)

				var grammarErr *m.GrammarError
				require.ErrorAs(t, err, &grammarErr)
				assert.Equal(t, tt.offset, grammarErr.Offset)
			})
		}
	}
}

func TestParse_VariantsAgree(t *testing.T) {
	inputs := []string{
		"::a", "crate::a::b", "::a::b::*", " :: a ", "crate::\na", "::a::", "::*",
		"crate::例::傅", "::a::b c", "crate ::*", "::_", "::a::_::*",
	}

	restricted, lexical := NewRestrictedParser(), NewLexicalParser()

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			r, rErr := restricted.Parse(src)
			l, lErr := lexical.Parse(src)

			assert.Equal(t, rErr == nil, lErr == nil, "restricted=%v lexical=%v", rErr, lErr)
			assert.Equal(t, r.String(), l.String())
		})
	}
}

func TestParse_CanonicalString(t *testing.T) {
	for _, parser := range parsers() {
		tp, err := parser.Parse(" crate :: foo ::\n bar :: * ")
		require.NoError(t, err)
		assert.Equal(t, "crate::foo::bar::*", tp.String())

		again, err := parser.Parse(tp.String())
		require.NoError(t, err)
		assert.Equal(t, tp, again)
	}
}

func TestLexicalParser_ErrorToken(t *testing.T) {
	_, err := NewLexicalParser().Parse("::a::*::b")

	var grammarErr *m.GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, ":", grammarErr.Token)
	assert.Equal(t, 6, grammarErr.Offset)
	assert.Contains(t, grammarErr.Error(), "wildcard must end the path")
}

func TestRestrictedParser_ErrorToken(t *testing.T) {
	_, err := NewRestrictedParser().Parse("::a::*::b")

	var grammarErr *m.GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, "*", grammarErr.Token)
	assert.Equal(t, 5, grammarErr.Offset)
}

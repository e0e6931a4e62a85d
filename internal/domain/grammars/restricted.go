package grammars

import (
	"go/token"
	"strings"

	m "typepath.dev/pkg/typepath/internal/model"
)

// Restricted names the splitter grammar.
const Restricted = "restricted"

// RestrictedParser parses a path by splitting on "::" and trimming every
// piece. It needs no tokenizer; segments are sub-strings of the input.
type RestrictedParser struct{}

// NewRestrictedParser constructs a RestrictedParser.
func NewRestrictedParser() *RestrictedParser {
	return &RestrictedParser{}
}

// Name returns the grammar name.
func (p *RestrictedParser) Name() string {
	return Restricted
}

// Parse turns src into a TypePath.
func (p *RestrictedParser) Parse(src string) (m.TypePath, error) {
	offset := leadingWhitespace(src)
	rest := src[offset:]

	prefix, consumed, err := restrictedPrefix(rest, offset)
	if err != nil {
		return m.TypePath{}, err
	}

	offset += consumed
	rest = rest[consumed:]

	pieces := strings.Split(rest, m.Separator)
	segments := make([]string, 0, len(pieces))
	wildcard := false

	for i, piece := range pieces {
		at := offset + leadingWhitespace(piece)
		text := Trim(piece)
		last := i == len(pieces)-1

		switch {
		case text == "" && last:
			return m.TypePath{}, &m.GrammarError{Offset: at, Msg: "expected identifier or '*' after '::'"}
		case text == "":
			return m.TypePath{}, &m.GrammarError{Offset: at, Token: m.Separator, Msg: "expected identifier"}
		case text == m.WildcardMarker && len(segments) == 0:
			return m.TypePath{}, &m.GrammarError{Offset: at, Token: text, Msg: "expected identifier"}
		case text == m.WildcardMarker && !last:
			return m.TypePath{}, &m.GrammarError{Offset: at, Token: text, Msg: "wildcard must end the path"}
		case text == m.WildcardMarker:
			wildcard = true
		case !token.IsIdentifier(text):
			return m.TypePath{}, &m.GrammarError{Offset: at, Token: text, Msg: "expected identifier"}
		default:
			segments = append(segments, text)
		}

		offset += len(piece) + len(m.Separator)
	}

	return m.NewTypePath(prefix, segments, wildcard)
}

// restrictedPrefix recognizes "::" or "crate ::" at the start of s and returns
// how many bytes it spans.
func restrictedPrefix(s string, offset int) (m.PathPrefix, int, error) {
	if strings.HasPrefix(s, m.Separator) {
		return m.PrefixRoot, len(m.Separator), nil
	}

	if strings.HasPrefix(s, m.CrateMarker) {
		after := s[len(m.CrateMarker):]
		gap := leadingWhitespace(after)

		if strings.HasPrefix(after[gap:], m.Separator) {
			return m.PrefixCrate, len(m.CrateMarker) + gap + len(m.Separator), nil
		}
	}

	return 0, 0, &m.GrammarError{Offset: offset, Token: firstWord(s), Msg: "path must start with '::' or 'crate::'"}
}

func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if isWhitespace(s[i]) {
			return s[:i]
		}
	}

	return s
}

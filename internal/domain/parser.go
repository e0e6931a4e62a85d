package domain

import (
	"fmt"

	"typepath.dev/pkg/typepath/internal/domain/grammars"
	m "typepath.dev/pkg/typepath/internal/model"
)

// PathParser turns the text of a path expression into a TypePath.
type PathParser interface {
	Name() string
	Parse(src string) (m.TypePath, error)
}

// DefaultGrammar is used when no grammar is configured.
const DefaultGrammar = grammars.Lexical

// NewPathParser returns the parser registered under grammar.
func NewPathParser(grammar string) (PathParser, error) {
	switch grammar {
	case "", grammars.Lexical:
		return grammars.NewLexicalParser(), nil
	case grammars.Restricted:
		return grammars.NewRestrictedParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownGrammar, grammar, grammars.Lexical, grammars.Restricted)
	}
}

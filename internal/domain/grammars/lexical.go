package grammars

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strings"

	m "typepath.dev/pkg/typepath/internal/model"
)

// Lexical names the scanner-backed grammar.
const Lexical = "lexical"

// LexicalParser tokenizes the path with go/scanner. Go has no "::" token, so a
// separator arrives as two adjacent COLON tokens and the parser looks up to
// three tokens ahead to tell "::ident" from "::*" from a stray ':'.
type LexicalParser struct{}

// NewLexicalParser constructs a LexicalParser.
func NewLexicalParser() *LexicalParser {
	return &LexicalParser{}
}

// Name returns the grammar name.
func (p *LexicalParser) Name() string {
	return Lexical
}

type lexeme struct {
	tok    token.Token
	lit    string
	offset int
}

func (l lexeme) text() string {
	if l.lit != "" {
		return l.lit
	}

	if l.tok == token.EOF {
		return ""
	}

	return l.tok.String()
}

// Parse turns src into a TypePath.
func (p *LexicalParser) Parse(src string) (m.TypePath, error) {
	lexemes, err := tokenize(src)
	if err != nil {
		return m.TypePath{}, err
	}

	c := &cursor{lexemes: lexemes}

	prefix, err := c.prefix()
	if err != nil {
		return m.TypePath{}, err
	}

	segments, wildcard, err := c.segments()
	if err != nil {
		return m.TypePath{}, err
	}

	return m.NewTypePath(prefix, segments, wildcard)
}

// byteOrderMark is skipped by go/scanner at offset 0 but is not whitespace
// in a path.
const byteOrderMark = "\ufeff"

func tokenize(src string) ([]lexeme, error) {
	if strings.HasPrefix(src, byteOrderMark) {
		return nil, &m.GrammarError{Offset: 0, Token: byteOrderMark, Msg: "path must start with '::' or 'crate::'"}
	}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var (
		s        scanner.Scanner
		firstErr error
	)

	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = &m.GrammarError{Offset: pos.Offset, Msg: msg}
		}
	}, scanner.ScanComments)

	var lexemes []lexeme

	for {
		pos, tok, lit := s.Scan()
		if firstErr != nil {
			return nil, firstErr
		}

		// The scanner inserts semicolons after identifiers at newlines and EOF.
		// Comments stay in the stream so they are rejected like any other
		// unexpected token.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		lexemes = append(lexemes, lexeme{tok: tok, lit: lit, offset: file.Offset(pos)})

		if tok == token.EOF {
			return lexemes, nil
		}
	}
}

type cursor struct {
	lexemes []lexeme
	pos     int
}

// peek returns the lexeme n positions ahead, EOF when past the end.
func (c *cursor) peek(n int) lexeme {
	if c.pos+n < len(c.lexemes) {
		return c.lexemes[c.pos+n]
	}

	return c.lexemes[len(c.lexemes)-1]
}

func (c *cursor) advance(n int) {
	c.pos += n
}

// separator reports whether the next two lexemes form an unbroken "::".
func (c *cursor) separator() bool {
	first, second := c.peek(0), c.peek(1)

	return first.tok == token.COLON && second.tok == token.COLON && second.offset == first.offset+1
}

func (c *cursor) fail(l lexeme, format string, args ...any) error {
	return &m.GrammarError{Offset: l.offset, Token: l.text(), Msg: fmt.Sprintf(format, args...)}
}

func (c *cursor) prefix() (m.PathPrefix, error) {
	if c.separator() {
		c.advance(2)
		return m.PrefixRoot, nil
	}

	head := c.peek(0)
	if head.tok == token.IDENT && head.lit == m.CrateMarker {
		c.advance(1)

		if !c.separator() {
			return 0, c.fail(c.peek(0), "expected '::' after 'crate'")
		}

		c.advance(2)

		return m.PrefixCrate, nil
	}

	return 0, c.fail(head, "path must start with '::' or 'crate::'")
}

func (c *cursor) segments() ([]string, bool, error) {
	var segments []string

	for {
		ident := c.peek(0)
		if ident.tok != token.IDENT {
			return nil, false, c.fail(ident, "expected identifier")
		}

		segments = append(segments, ident.lit)
		c.advance(1)

		next := c.peek(0)

		switch {
		case next.tok == token.EOF:
			return segments, false, nil
		case !c.separator():
			return nil, false, c.fail(next, "expected '::' or end of path")
		}

		// Separator, wildcard suffix or a dangling "::".
		after := c.peek(2)

		switch after.tok {
		case token.IDENT:
			c.advance(2)
		case token.MUL:
			c.advance(3)

			if end := c.peek(0); end.tok != token.EOF {
				return nil, false, c.fail(end, "wildcard must end the path")
			}

			return segments, true, nil
		case token.EOF:
			return nil, false, c.fail(after, "expected identifier or '*' after '::'")
		default:
			return nil, false, c.fail(after, "expected identifier")
		}
	}
}

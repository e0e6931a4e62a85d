package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	m "typepath.dev/pkg/typepath/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can focus
// on path semantics while delegating comment discovery to an infrastructure
// component.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// ExtractDirectives returns the typepath directives written in the file's
	// comments, in source order.
	ExtractDirectives(ctx context.Context, fileSet *token.FileSet, file *ast.File, source *m.File) ([]m.Directive, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// ExtractDirectives scans every comment of file for a typepath directive.
func (a *LocalGoFileAdapter) ExtractDirectives(ctx context.Context, fileSet *token.FileSet, file *ast.File, source *m.File) ([]m.Directive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var directives []m.Directive

	for _, group := range file.Comments {
		for _, comment := range group.List {
			directive, ok, err := parseDirective(comment.Text)
			if !ok {
				continue
			}

			pos := fileSet.Position(comment.Pos())
			if err != nil {
				return nil, &m.DirectiveError{Pos: pos, Err: err}
			}

			directive.Pos = pos
			directive.RawPos = advance(pos, comment.Text[:directive.RawOffset])
			directive.File = source
			directives = append(directives, directive)
		}
	}

	return directives, nil
}

// parseDirective splits a raw comment ("//typepath:array name ::a::b" or the
// /* */ form) into its kind, binding and path text. ok is false when the
// comment is not a directive at all.
func parseDirective(text string) (m.Directive, bool, error) {
	body, start := commentBody(text)
	if !strings.HasPrefix(body, m.DirectivePrefix) {
		return m.Directive{}, false, nil
	}

	offset := start + len(m.DirectivePrefix)
	rest := body[len(m.DirectivePrefix):]

	kind, rest, skipped := nextWord(rest)
	offset += skipped

	directive := m.Directive{Kind: m.DirectiveKind(kind)}

	switch directive.Kind {
	case m.DirectiveArray:
		binding, remainder, skipped := nextWord(rest)
		if binding == "" {
			return m.Directive{}, true, fmt.Errorf("typepath:array needs a binding name and a path")
		}

		if !token.IsIdentifier(binding) || binding == "_" {
			return m.Directive{}, true, fmt.Errorf("typepath:array binding %q is not a Go identifier", binding)
		}

		directive.Binding = binding
		offset += skipped
		rest = remainder
	case m.DirectiveConst:
	default:
		return m.Directive{}, true, fmt.Errorf("unknown typepath directive %q (want %q or %q)", kind, m.DirectiveArray, m.DirectiveConst)
	}

	directive.Raw = rest
	directive.RawOffset = offset

	return directive, true, nil
}

// advance returns the position reached after text, starting at pos.
func advance(pos token.Position, text string) token.Position {
	pos.Offset += len(text)

	if newline := strings.LastIndexByte(text, '\n'); newline >= 0 {
		pos.Line += strings.Count(text, "\n")
		pos.Column = len(text) - newline

		return pos
	}

	pos.Column += len(text)

	return pos
}

// commentBody strips the comment markers and returns the body with its offset
// inside text.
func commentBody(text string) (string, int) {
	if strings.HasPrefix(text, "/*") {
		return strings.TrimSuffix(text[2:], "*/"), 2
	}

	return strings.TrimPrefix(text, "//"), 2
}

// nextWord returns the first whitespace-delimited word of s, the text after
// it, and how many bytes of s precede the returned remainder.
func nextWord(s string) (string, string, int) {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}

	end := start
	for end < len(s) && !isSpace(s[end]) {
		end++
	}

	return s[start:end], s[end:], end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

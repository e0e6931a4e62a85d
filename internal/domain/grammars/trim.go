// Package grammars holds the two parsers of the type path grammar.
//
//	Path           := "::" Segments WildcardSuffix?
//	                | "crate" "::" Segments WildcardSuffix?
//	Segments       := Identifier ("::" Identifier)*
//	WildcardSuffix := "::" "*"
//
// Restricted splits the raw text on separators and normalizes each piece with
// Trim. Lexical runs the Go scanner and reports the offending token. Both
// accept the same language and produce identical segments.
package grammars

func isWhitespace(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

// TrimBytes returns b without leading and trailing tab, newline, carriage
// return and space bytes. The result shares b's backing array.
func TrimBytes(b []byte) []byte {
	for len(b) > 0 && isWhitespace(b[0]) {
		b = b[1:]
	}

	for len(b) > 0 && isWhitespace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}

	return b
}

// Trim is TrimBytes for strings. Only ASCII bytes are removed, so a valid
// UTF-8 input stays valid.
func Trim(s string) string {
	start, end := 0, len(s)

	for start < end && isWhitespace(s[start]) {
		start++
	}

	for end > start && isWhitespace(s[end-1]) {
		end--
	}

	return s[start:end]
}

// leadingWhitespace counts the whitespace bytes at the start of s.
func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && isWhitespace(s[n]) {
		n++
	}

	return n
}

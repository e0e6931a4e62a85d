package model

import (
	"errors"
	"strconv"
	"strings"
)

// PathPrefix selects the namespace a TypePath is rooted at.
type PathPrefix int

const (
	// PrefixRoot roots the path at the global namespace ("::").
	PrefixRoot PathPrefix = iota
	// PrefixCrate roots the path at the current module ("crate").
	PrefixCrate
)

const (
	// RootMarker is the rendered form of PrefixRoot.
	RootMarker = "::"
	// CrateMarker is the rendered form of PrefixCrate.
	CrateMarker = "crate"
	// WildcardMarker is the rendered form of the wildcard suffix.
	WildcardMarker = "*"
	// Separator joins segments in the source grammar.
	Separator = "::"
)

// ErrEmptyPath is returned when a TypePath would have no segments.
var ErrEmptyPath = errors.New("type path needs at least one segment")

func (p PathPrefix) String() string {
	if p == PrefixCrate {
		return CrateMarker
	}

	return RootMarker
}

// TypePath is a parsed path expression: a prefix, one or more identifier
// segments and an optional wildcard suffix.
type TypePath struct {
	prefix   PathPrefix
	segments []string
	wildcard bool
}

// NewTypePath builds a TypePath. The segments are copied.
func NewTypePath(prefix PathPrefix, segments []string, wildcard bool) (TypePath, error) {
	if len(segments) == 0 {
		return TypePath{}, ErrEmptyPath
	}

	return TypePath{
		prefix:   prefix,
		segments: append([]string(nil), segments...),
		wildcard: wildcard,
	}, nil
}

// Prefix returns the root marker kind.
func (tp TypePath) Prefix() PathPrefix { return tp.prefix }

// Segments returns a copy of the identifier segments, outermost first.
func (tp TypePath) Segments() []string { return append([]string(nil), tp.segments...) }

// Wildcard reports whether the path ends in "::*".
func (tp TypePath) Wildcard() bool { return tp.wildcard }

// Len is the number of rendered elements: prefix, segments and "*" if present.
func (tp TypePath) Len() int {
	n := len(tp.segments) + 1
	if tp.wildcard {
		n++
	}

	return n
}

// IsZero reports whether tp was never constructed.
func (tp TypePath) IsZero() bool { return len(tp.segments) == 0 }

// String returns the canonical, whitespace-free source form.
func (tp TypePath) String() string {
	var b strings.Builder

	if tp.prefix == PrefixCrate {
		b.WriteString(CrateMarker)
	}

	for _, segment := range tp.segments {
		b.WriteString(Separator)
		b.WriteString(segment)
	}

	if tp.wildcard {
		b.WriteString(Separator)
		b.WriteString(WildcardMarker)
	}

	return b.String()
}

// RenderedSegments is the ordered projection of a TypePath:
// [prefix, segment_1, ..., segment_n, ("*")?].
type RenderedSegments []string

// GoLiteral formats the segments as a fixed-length Go array literal,
// e.g. [3]string{"crate", "foo", "bar"}.
func (rs RenderedSegments) GoLiteral() string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(strconv.Itoa(len(rs)))
	b.WriteString("]string{")

	for i, segment := range rs {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Quote(segment))
	}

	b.WriteString("}")

	return b.String()
}

package model

import (
	"fmt"
	"go/token"
)

// DirectiveKind is the invocation form of a typepath directive.
type DirectiveKind string

const (
	// DirectiveArray binds the rendered segments to a caller-named variable and
	// lets the Go compiler validate the path.
	DirectiveArray DirectiveKind = "array"
	// DirectiveConst binds the rendered segments to a synthesized PATH_* name and
	// validates the path through the type checker.
	DirectiveConst DirectiveKind = "const"
)

// DirectivePrefix starts every directive comment.
const DirectivePrefix = "typepath:"

// Directive is one typepath comment found in a source file.
type Directive struct {
	Kind    DirectiveKind
	Binding string // only set for DirectiveArray
	Raw     string // path text exactly as written, whitespace included
	// RawOffset is the byte offset of Raw inside the comment text.
	RawOffset int
	// RawPos is the file position of the first byte of Raw.
	RawPos token.Position
	Pos    token.Position
	File   *File
}

// Invocation is a directive whose path parsed successfully.
type Invocation struct {
	Directive
	Path     TypePath
	Name     string
	Rendered RenderedSegments
}

// ObjectKind classifies what a path resolved to.
type ObjectKind string

const (
	ObjectUnknown ObjectKind = "unknown"
	ObjectPackage ObjectKind = "package"
	ObjectType    ObjectKind = "type"
	ObjectValue   ObjectKind = "value"
	ObjectGeneric ObjectKind = "generic"
)

// Resolution maps a TypePath onto a Go package and an object inside it.
type Resolution struct {
	ImportPath  string
	PackageName string
	// Local is set when the target package is the one being generated.
	Local bool
	// Object is the top-level name inside the package; empty for a package path.
	Object string
	// Members are field or method names selected from Object, outermost first.
	Members []string
	// Kind classifies Object, or the package itself when Object is empty.
	Kind ObjectKind
	// Found is set when the type checker located the object.
	Found bool
	// Exported is set when every name on the chain is reachable from another package.
	Exported bool
	// Cycle is set when the target package imports the package being
	// generated, directly or not.
	Cycle bool
}

// GenerateStatus is what happened to a package's generated file.
type GenerateStatus string

const (
	StatusNone      GenerateStatus = "none"
	StatusWrote     GenerateStatus = "wrote"
	StatusUnchanged GenerateStatus = "unchanged"
	StatusCached    GenerateStatus = "cached"
	StatusRemoved   GenerateStatus = "removed"
	StatusStale     GenerateStatus = "stale"
)

// GeneratedFile is the output of one package.
type GeneratedFile struct {
	Package     *Package
	Path        Path
	Content     []byte
	Invocations []Invocation
	Status      GenerateStatus
	Diff        string
}

// DirectiveError attaches a source position to an error.
type DirectiveError struct {
	Pos token.Position
	Err error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// GrammarError reports the token that broke the path grammar.
type GrammarError struct {
	Offset int
	Token  string
	Msg    string
}

func (e *GrammarError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
	}

	return fmt.Sprintf("offset %d: %s, found %q", e.Offset, e.Msg, e.Token)
}

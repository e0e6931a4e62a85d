package domain

import "errors"

var (
	// ErrUnknownGrammar is returned for an unsupported grammar name.
	ErrUnknownGrammar = errors.New("unknown grammar")
	// ErrUnresolved is returned when a named-constant path is not found by the type checker.
	ErrUnresolved = errors.New("path does not resolve")
	// ErrInaccessible is returned when an array-form path names an unexported
	// object the compiler cannot be made to check.
	ErrInaccessible = errors.New("path is not accessible from this package")
	// ErrImportCycle is returned when an array-form path names a package that
	// imports the package being generated.
	ErrImportCycle = errors.New("path would create an import cycle")
	// ErrInvalidName is returned when a binding is not a Go identifier.
	ErrInvalidName = errors.New("invalid binding name")
	// ErrStale is returned in check mode when a generated file is out of date.
	ErrStale = errors.New("generated file is out of date")
	// ErrBuild is returned when go build rejects a generated package.
	ErrBuild = errors.New("generated package does not build")
)

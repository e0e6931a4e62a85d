// Package model defines the data structures shared by the typepath generator.
package model

// Path represents a file system path.
type Path string

// File represents a Go source file that carries typepath directives.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Package is a directory of Go files compiled together.
type Package struct {
	Dir        Path
	Name       string
	ImportPath string
	Files      []*File
}

// Module describes the go.mod enclosing a package.
type Module struct {
	Root Path
	Path string
}

// ManifestVersion is the current cache manifest format.
const ManifestVersion = 2

// Manifest records the fingerprints of the last generation per package.
type Manifest struct {
	Version  int                      `yaml:"version"`
	Packages map[string]ManifestEntry `yaml:"packages"`
}

// ManifestEntry holds the input and output fingerprints of one package.
type ManifestEntry struct {
	Inputs string `yaml:"inputs"`
	Output string `yaml:"output"`
	// Lookups counts the typepath:const directives, which are re-resolved on
	// every run.
	Lookups int `yaml:"lookups,omitempty"`
}

// Package adapter contains the infrastructure adapters of the typepath generator.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"

	m "typepath.dev/pkg/typepath/internal/model"
)

// recursiveSuffix marks a Go-style recursive path pattern ("./...").
const recursiveSuffix = "..."

// ErrNoModule is returned when no go.mod encloses a path.
var ErrNoModule = errors.New("go.mod not found")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It intentionally hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get expands Go-style path patterns into packages of non-test Go files.
	// Files whose path matches any exclude regex are dropped.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]*m.Package, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// Remove deletes a single file.
	Remove(ctx context.Context, path m.Path) error

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// FindModule walks up from startPath to the enclosing go.mod.
	FindModule(ctx context.Context, startPath m.Path) (m.Module, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks every path pattern and groups matching Go files by directory.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]*m.Package, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{m.Path("." + string(filepath.Separator) + recursiveSuffix)}
	}

	byDir := make(map[string]*m.Package)

	for _, p := range paths {
		root, recursive := splitPattern(string(p))

		err := a.walk(ctx, root, recursive, func(path string) error {
			if matchesAny(excludes, path) {
				return nil
			}

			hash, err := a.HashFile(ctx, m.Path(path))
			if err != nil {
				return err
			}

			dir := filepath.Dir(path)

			pkg, ok := byDir[dir]
			if !ok {
				pkg = &m.Package{Dir: m.Path(dir)}
				byDir[dir] = pkg
			}

			for _, existing := range pkg.Files {
				if existing.FullPath == m.Path(path) {
					return nil
				}
			}

			pkg.Files = append(pkg.Files, &m.File{
				FullPath:  m.Path(path),
				ShortPath: m.Path(filepath.Base(path)),
				Hash:      hash,
			})

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
	}

	packages := make([]*m.Package, 0, len(byDir))
	for _, pkg := range byDir {
		sort.Slice(pkg.Files, func(i, j int) bool { return pkg.Files[i].FullPath < pkg.Files[j].FullPath })
		packages = append(packages, pkg)
	}

	sort.Slice(packages, func(i, j int) bool { return packages[i].Dir < packages[j].Dir })

	return packages, nil
}

func splitPattern(pattern string) (string, bool) {
	if !strings.HasSuffix(pattern, recursiveSuffix) {
		return pattern, false
	}

	root := strings.TrimSuffix(pattern, recursiveSuffix)
	root = strings.TrimSuffix(root, string(filepath.Separator))
	root = strings.TrimSuffix(root, "/")

	if root == "" {
		root = "."
	}

	return root, true
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(excludes []*regexp.Regexp, path string) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// walk visits the non-test Go files under root. Directories the go tool
// ignores (vendor, testdata, hidden and underscore-prefixed) are skipped.
func (a *LocalSourceFSAdapter) walk(ctx context.Context, root string, recursive bool, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		if isGoSource(root) {
			return fn(root)
		}

		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path == root {
				return nil
			}

			if !recursive || ignoredDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !isGoSource(path) {
			return nil
		}

		return fn(path)
	})
}

func ignoredDir(name string) bool {
	return name == "vendor" || name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isGoSource(path string) bool {
	return filepath.Ext(path) == ".go" && !strings.HasSuffix(path, "_test.go")
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Remove deletes the file at path.
func (a *LocalSourceFSAdapter) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.Remove(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// FindModule searches for go.mod walking up the directory tree and reads its
// module path.
func (a *LocalSourceFSAdapter) FindModule(ctx context.Context, startPath m.Path) (m.Module, error) {
	if err := ctx.Err(); err != nil {
		return m.Module{}, err
	}

	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return m.Module{}, err
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")

		// #nosec G304 - go.mod lookup inside the user's project
		data, err := os.ReadFile(goModPath)
		if err == nil {
			modulePath := modfile.ModulePath(data)
			if modulePath == "" {
				return m.Module{}, fmt.Errorf("%s: missing module directive", goModPath)
			}

			return m.Module{Root: m.Path(dir), Path: modulePath}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return m.Module{}, fmt.Errorf("%w in any parent directory of %s", ErrNoModule, startPath)
		}

		dir = parent
	}
}

// RelPath returns the slash-separated relative path from base to target.
// Both are made absolute first.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	absBase, err := filepath.Abs(string(base))
	if err != nil {
		return "", err
	}

	absTarget, err := filepath.Abs(string(target))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", err
	}

	return m.Path(filepath.ToSlash(rel)), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

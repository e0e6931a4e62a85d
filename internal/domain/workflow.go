// Package domain contains the typepath grammar, emitters and generation workflow.
package domain

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"typepath.dev/pkg/typepath/internal/adapter"
	"typepath.dev/pkg/typepath/internal/controller"
	m "typepath.dev/pkg/typepath/internal/model"
)

// DefaultOutput is the name of the generated file in each package.
const DefaultOutput = "typepath_gen.go"

// GenerateArgs contains the arguments for generating typepath files.
type GenerateArgs struct {
	Paths     []m.Path
	Exclude   []string
	Output    string
	CacheFile m.Path
	UseCache  bool
	// Check compares instead of writing and fails on stale files.
	Check bool
	// Verify builds every generated package afterwards.
	Verify  bool
	Threads int
}

// ListArgs contains the arguments for listing directives.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
}

// RenderArgs contains the arguments for rendering a single path.
type RenderArgs struct {
	Source string
	Format controller.OutputFormat
}

// Workflow defines the user-facing operations of the generator.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args ListArgs) error
	Render(ctx context.Context, args RenderArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.GoFileAdapter
	adapter.CacheStore
	adapter.BuildRunnerAdapter
	controller.UI
	Resolver
	parser PathParser
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	cacheStore adapter.CacheStore,
	buildAdapter adapter.BuildRunnerAdapter,
	ui controller.UI,
	resolver Resolver,
	parser PathParser,
) Workflow {
	return &workflow{
		SourceFSAdapter:    fsAdapter,
		GoFileAdapter:      goFileAdapter,
		CacheStore:         cacheStore,
		BuildRunnerAdapter: buildAdapter,
		UI:                 ui,
		Resolver:           resolver,
		parser:             parser,
	}
}

// Render parses one path and displays its segments and synthesized name.
func (w *workflow) Render(ctx context.Context, args RenderArgs) error {
	tp, err := w.parser.Parse(args.Source)
	if err != nil {
		return fmt.Errorf("parse %q: %w", args.Source, err)
	}

	inv := m.Invocation{
		Directive: m.Directive{Kind: m.DirectiveConst, Raw: args.Source},
		Path:      tp,
		Name:      ConstName(tp),
		Rendered:  Render(tp),
	}

	return w.DisplayRendered(ctx, inv, args.Format)
}

// List parses every directive under the given paths and displays them.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	packages, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return w.DisplayInvocations(ctx, nil, fmt.Errorf("get sources: %w", err))
	}

	var all []m.Invocation

	for _, pkg := range packages {
		_, invocations, err := w.collectInvocations(ctx, pkg, "")
		if err != nil {
			return w.DisplayInvocations(ctx, nil, err)
		}

		all = append(all, invocations...)
	}

	if err := w.DisplayInvocations(ctx, all, nil); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// Generate writes (or checks) the generated file of every package.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if args.Output == "" {
		args.Output = DefaultOutput
	}

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	packages, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	manifest, err := w.loadManifest(ctx, args)
	if err != nil {
		return err
	}

	files, err := w.generateAll(ctx, packages, manifest, args)
	if err != nil {
		return err
	}

	if err := w.DisplayGenerated(ctx, files); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Check {
		return w.reportStale(ctx, files)
	}

	var verifyErr error
	if args.Verify {
		verifyErr = w.verify(ctx, files, manifest)
	}

	if args.UseCache {
		if err := w.SaveManifest(ctx, args.CacheFile, manifest); err != nil {
			slog.Warn("Failed to save cache", "path", args.CacheFile, "error", err)
		}
	}

	return verifyErr
}

func (w *workflow) loadManifest(ctx context.Context, args GenerateArgs) (m.Manifest, error) {
	empty := m.Manifest{Version: m.ManifestVersion, Packages: map[string]m.ManifestEntry{}}

	if !args.UseCache || args.Check {
		return empty, nil
	}

	manifest, err := w.LoadManifest(ctx, args.CacheFile)
	if err != nil {
		slog.Warn("Ignoring unreadable cache", "path", args.CacheFile, "error", err)
		return empty, nil
	}

	return manifest, nil
}

// generateAll processes packages on a bounded worker pool. Results keep the
// package order, which the scanner sorts by directory.
func (w *workflow) generateAll(ctx context.Context, packages []*m.Package, manifest m.Manifest, args GenerateArgs) ([]m.GeneratedFile, error) {
	results := make([]m.GeneratedFile, len(packages))

	var manifestMu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, pkg := range packages {
		group.Go(func() error {
			manifestMu.Lock()
			cached, hasCached := manifest.Packages[string(pkg.Dir)]
			manifestMu.Unlock()

			file, entry, err := w.generatePackage(groupCtx, pkg, args, cached, hasCached)
			if err != nil {
				return err
			}

			results[i] = file

			manifestMu.Lock()
			if file.Status == m.StatusNone || file.Status == m.StatusRemoved {
				delete(manifest.Packages, string(pkg.Dir))
			} else {
				manifest.Packages[string(pkg.Dir)] = entry
			}
			manifestMu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	files := make([]m.GeneratedFile, 0, len(results))
	for _, file := range results {
		if file.Status != m.StatusNone {
			files = append(files, file)
		}
	}

	return files, nil
}

func (w *workflow) generatePackage(ctx context.Context, pkg *m.Package, args GenerateArgs, cached m.ManifestEntry, hasCached bool) (m.GeneratedFile, m.ManifestEntry, error) {
	outPath := w.JoinPath(ctx, string(pkg.Dir), args.Output)
	file := m.GeneratedFile{Package: pkg, Path: outPath, Status: m.StatusNone}
	entry := m.ManifestEntry{Inputs: w.inputsHash(pkg, args.Output)}

	existing, err := w.readExisting(ctx, outPath)
	if err != nil {
		return file, entry, err
	}

	if hasCached && cached.Inputs == entry.Inputs && cached.Output == contentHash(existing) && existing != nil {
		if cached.Lookups > 0 {
			if err := w.recheckLookups(ctx, pkg, args.Output); err != nil {
				return file, entry, err
			}
		}

		slog.Debug("Package unchanged since last run", "dir", pkg.Dir)

		file.Status = m.StatusCached

		return file, cached, nil
	}

	packageName, invocations, err := w.collectInvocations(ctx, pkg, args.Output)
	if err != nil {
		return file, entry, err
	}

	if len(invocations) == 0 {
		return w.dropStale(ctx, file, existing, args.Check)
	}

	content, err := w.render(ctx, pkg, packageName, invocations)
	if err != nil {
		return file, entry, err
	}

	file.Invocations = invocations
	file.Content = content
	entry.Output = contentHash(content)
	entry.Lookups = len(constInvocations(invocations))

	switch {
	case bytes.Equal(existing, content):
		file.Status = m.StatusUnchanged
	case args.Check:
		file.Status = m.StatusStale
		file.Diff = unifiedDiff(existing, content, string(outPath))
	default:
		if err := w.WriteFile(ctx, outPath, content, 0o644); err != nil {
			return file, entry, fmt.Errorf("write %s: %w", outPath, err)
		}

		slog.Info("Generated file", "path", outPath, "paths", len(invocations))

		file.Status = m.StatusWrote
	}

	return file, entry, nil
}

// dropStale removes a generated file whose package no longer has directives.
func (w *workflow) dropStale(ctx context.Context, file m.GeneratedFile, existing []byte, check bool) (m.GeneratedFile, m.ManifestEntry, error) {
	if !isGenerated(existing) {
		return file, m.ManifestEntry{}, nil
	}

	if check {
		file.Status = m.StatusStale
		file.Diff = unifiedDiff(existing, nil, string(file.Path))

		return file, m.ManifestEntry{}, nil
	}

	if err := w.Remove(ctx, file.Path); err != nil {
		return file, m.ManifestEntry{}, fmt.Errorf("remove %s: %w", file.Path, err)
	}

	slog.Info("Removed generated file", "path", file.Path)

	file.Status = m.StatusRemoved

	return file, m.ManifestEntry{}, nil
}

func (w *workflow) readExisting(ctx context.Context, path m.Path) ([]byte, error) {
	content, err := w.ReadFile(ctx, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, nil
}

func isGenerated(content []byte) bool {
	return bytes.HasPrefix(content, []byte(GeneratedHeader))
}

// collectInvocations parses the directives of every file of pkg except the
// generated output.
func (w *workflow) collectInvocations(ctx context.Context, pkg *m.Package, output string) (string, []m.Invocation, error) {
	var (
		packageName string
		invocations []m.Invocation
	)

	fset := token.NewFileSet()

	for _, source := range pkg.Files {
		if output != "" && string(source.ShortPath) == output {
			continue
		}

		content, err := w.ReadFile(ctx, source.FullPath)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read %s: %w", source.FullPath, err)
		}

		astFile, err := w.Parse(ctx, fset, string(source.FullPath), content)
		if err != nil {
			return "", nil, fmt.Errorf("failed to parse %s: %w", source.FullPath, err)
		}

		if packageName == "" {
			packageName = astFile.Name.Name
		}

		directives, err := w.ExtractDirectives(ctx, fset, astFile, source)
		if err != nil {
			return "", nil, err
		}

		for _, directive := range directives {
			inv, err := w.invocation(directive)
			if err != nil {
				return "", nil, err
			}

			invocations = append(invocations, inv)
		}
	}

	return packageName, invocations, nil
}

// invocation parses a directive's path and derives its rendered segments and
// binding name.
func (w *workflow) invocation(directive m.Directive) (m.Invocation, error) {
	tp, err := w.parser.Parse(directive.Raw)
	if err != nil {
		var grammarErr *m.GrammarError
		if errors.As(err, &grammarErr) {
			return m.Invocation{}, &m.DirectiveError{Pos: positionAt(directive, grammarErr.Offset), Err: err}
		}

		return m.Invocation{}, &m.DirectiveError{Pos: directive.Pos, Err: err}
	}

	name := directive.Binding
	if directive.Kind == m.DirectiveConst {
		name = ConstName(tp)
	}

	if !token.IsIdentifier(name) {
		return m.Invocation{}, &m.DirectiveError{Pos: directive.Pos, Err: fmt.Errorf("%w: %q", ErrInvalidName, name)}
	}

	return m.Invocation{
		Directive: directive,
		Path:      tp,
		Name:      name,
		Rendered:  Render(tp),
	}, nil
}

// positionAt maps a byte offset inside directive.Raw to a file position.
func positionAt(directive m.Directive, offset int) token.Position {
	if offset > len(directive.Raw) {
		offset = len(directive.Raw)
	}

	pos := directive.RawPos
	prefix := directive.Raw[:offset]
	pos.Offset += offset

	if newline := strings.LastIndexByte(prefix, '\n'); newline >= 0 {
		pos.Line += strings.Count(prefix, "\n")
		pos.Column = offset - newline

		return pos
	}

	pos.Column += offset

	return pos
}

// render resolves the invocations of pkg and produces its generated source.
func (w *workflow) render(ctx context.Context, pkg *m.Package, packageName string, invocations []m.Invocation) ([]byte, error) {
	resolutions, err := w.resolve(ctx, pkg, packageName, invocations)
	if err != nil {
		return nil, err
	}

	return GenerateFile(packageName, invocations, resolutions)
}

// resolve fills in the identity of pkg from its go.mod, resolves every
// invocation and rejects the ones the generated file cannot validate.
func (w *workflow) resolve(ctx context.Context, pkg *m.Package, packageName string, invocations []m.Invocation) ([]m.Resolution, error) {
	module, err := w.FindModule(ctx, pkg.Dir)
	if err != nil {
		return nil, err
	}

	rel, err := w.RelPath(ctx, module.Root, pkg.Dir)
	if err != nil {
		return nil, err
	}

	pkg.Name = packageName
	pkg.ImportPath = joinImportPath(module.Path, string(rel))

	if rel == "." {
		pkg.ImportPath = module.Path
	}

	paths := make([]m.TypePath, 0, len(invocations))
	for _, inv := range invocations {
		paths = append(paths, inv.Path)
	}

	resolutions, err := w.ResolveAll(ctx, pkg, module, paths)
	if err != nil {
		return nil, err
	}

	for i, inv := range invocations {
		if err := checkResolution(inv, resolutions[i]); err != nil {
			return nil, err
		}
	}

	return resolutions, nil
}

// recheckLookups repeats the type-checker lookup of the typepath:const paths
// of a cached package. The generated file does not reference them, so a
// cached build cannot notice a target that went away.
func (w *workflow) recheckLookups(ctx context.Context, pkg *m.Package, output string) error {
	packageName, invocations, err := w.collectInvocations(ctx, pkg, output)
	if err != nil {
		return err
	}

	consts := constInvocations(invocations)
	if len(consts) == 0 {
		return nil
	}

	_, err = w.resolve(ctx, pkg, packageName, consts)

	return err
}

func constInvocations(invocations []m.Invocation) []m.Invocation {
	var consts []m.Invocation

	for _, inv := range invocations {
		if inv.Kind == m.DirectiveConst {
			consts = append(consts, inv)
		}
	}

	return consts
}

// checkResolution enforces the type-checker lookup of the named-constant
// form. The array form is left to the compiler, except where the generated
// file cannot make the compiler see the path: generic objects, which are only
// blank-imported, and packages that import the generating package.
func checkResolution(inv m.Invocation, res m.Resolution) error {
	if inv.Kind == m.DirectiveConst {
		if !res.Found {
			return &m.DirectiveError{Pos: inv.Pos, Err: fmt.Errorf("%w: %s", ErrUnresolved, inv.Path)}
		}

		return nil
	}

	switch {
	case res.Cycle:
		return &m.DirectiveError{Pos: inv.Pos, Err: fmt.Errorf("%w: %s imports this package; use typepath:const", ErrImportCycle, res.ImportPath)}
	case res.Kind == m.ObjectGeneric && !res.Found:
		return &m.DirectiveError{Pos: inv.Pos, Err: fmt.Errorf("%w: %s", ErrUnresolved, inv.Path)}
	case res.Kind == m.ObjectGeneric && !res.Exported && !res.Local:
		return &m.DirectiveError{Pos: inv.Pos, Err: fmt.Errorf("%w: %s; use typepath:const", ErrInaccessible, inv.Path)}
	case !res.Found:
		slog.Warn("Path not found; go build will reject it", "pos", inv.Pos.String(), "path", inv.Path.String())
	case !res.Exported && !res.Local:
		slog.Warn("Path is not accessible; go build will reject it, use typepath:const", "pos", inv.Pos.String(), "path", inv.Path.String())
	}

	return nil
}

// inputsHash fingerprints everything a package's output depends on locally.
func (w *workflow) inputsHash(pkg *m.Package, output string) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\x00%s\x00", w.parser.Name(), output)

	for _, source := range pkg.Files {
		if string(source.ShortPath) == output {
			continue
		}

		_, _ = fmt.Fprintf(h, "%s\x00%s\x00", source.FullPath, source.Hash)
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}

func contentHash(content []byte) string {
	if content == nil {
		return ""
	}

	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func (w *workflow) reportStale(ctx context.Context, files []m.GeneratedFile) error {
	var stale []string

	for _, file := range files {
		if file.Status != m.StatusStale {
			continue
		}

		w.DisplayDiff(ctx, file)
		stale = append(stale, string(file.Path))
	}

	if len(stale) == 0 {
		return nil
	}

	sort.Strings(stale)

	return fmt.Errorf("%w: %v", ErrStale, stale)
}

// verify builds every package that has a generated file, cached ones
// included, so path errors surface as the compiler reports them. Packages
// that fail are dropped from manifest.
func (w *workflow) verify(ctx context.Context, files []m.GeneratedFile, manifest m.Manifest) error {
	var errs []error

	for _, file := range files {
		if file.Status == m.StatusRemoved {
			continue
		}

		output, err := w.RunGoBuild(ctx, string(file.Package.Dir), ".")
		if err != nil {
			w.DisplayBuildOutput(ctx, file.Package, output)
			delete(manifest.Packages, string(file.Package.Dir))
			errs = append(errs, fmt.Errorf("%w: %s", ErrBuild, file.Package.Dir))
		}
	}

	return errors.Join(errs...)
}

package domain_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typepath.dev/pkg/typepath/internal/adapter"
	"typepath.dev/pkg/typepath/internal/controller"
	"typepath.dev/pkg/typepath/internal/domain"
	m "typepath.dev/pkg/typepath/internal/model"
)

// copyExample copies a fixture module from examples/ into a temporary
// directory so generated files never land in the repository.
func copyExample(t *testing.T, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	src := filepath.Join(filepath.Dir(file), "..", "..", "examples", name)
	dst := filepath.Join(t.TempDir(), name)

	require.NoError(t, os.CopyFS(dst, os.DirFS(src)))

	return dst
}

func newRealWorkflow(t *testing.T) (domain.Workflow, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	parser, err := domain.NewPathParser(domain.DefaultGrammar)
	require.NoError(t, err)

	wf := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGoFileAdapter(),
		adapter.NewCacheStore(),
		adapter.NewLocalBuildRunnerAdapter(),
		controller.NewSimpleUI(cmd),
		domain.NewResolver(adapter.NewLocalPackageAdapter()),
		parser,
	)

	return wf, &out
}

func TestWorkflow_Integration_GenerateAndBuild(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}

	dir := copyExample(t, "basic")
	wf, out := newRealWorkflow(t)
	ctx := context.Background()

	args := domain.GenerateArgs{
		Paths:     []m.Path{m.Path(dir + "/...")},
		CacheFile: m.Path(filepath.Join(dir, ".typepath-cache.yaml")),
		UseCache:  true,
		Verify:    true,
		Threads:   2,
	}

	require.NoError(t, wf.Generate(ctx, args), out.String())

	generated, err := os.ReadFile(filepath.Join(dir, domain.DefaultOutput))
	require.NoError(t, err)

	text := string(generated)
	assert.Contains(t, text, domain.GeneratedHeader)
	assert.Contains(t, text, `var clientPath = [4]string{"::", "net", "http", "Client"}`)
	assert.Contains(t, text, `var bufioAll = [3]string{"::", "bufio", "*"}`)
	assert.Contains(t, text, `var areaPath = [4]string{"crate", "shapes", "Widget", "Area"}`)
	assert.Contains(t, text, `var PATH_CRATE_SHAPES_INTERNAL_SECRET = [4]string{"crate", "shapes", "internal", "secret"}`)
	assert.Contains(t, text, `_ "bufio"`)
	assert.NotContains(t, text, `"example.com/basic/shapes/internal"`)
	assert.Contains(t, out.String(), "wrote")

	out.Reset()
	require.NoError(t, wf.Generate(ctx, args))
	assert.Contains(t, out.String(), "cached")

	args.Check = true
	args.Verify = false
	require.NoError(t, wf.Generate(ctx, args))

	// A cached package still fails once its const target disappears.
	secret := filepath.Join(dir, "shapes", "internal", "secret.go")
	require.NoError(t, os.WriteFile(secret, []byte("package internal\n"), 0o644))

	args.Check = false
	err = wf.Generate(ctx, args)
	require.ErrorIs(t, err, domain.ErrUnresolved)
	assert.Contains(t, err.Error(), "secret")
}

func TestWorkflow_Integration_BuildRejectsMissingPaths(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}

	dir := copyExample(t, "invalid")
	wf, out := newRealWorkflow(t)

	args := domain.GenerateArgs{
		Paths:     []m.Path{m.Path(dir + "/...")},
		CacheFile: m.Path(filepath.Join(dir, ".typepath-cache.yaml")),
		UseCache:  true,
		Verify:    true,
		Threads:   1,
	}

	err := wf.Generate(context.Background(), args)

	require.ErrorIs(t, err, domain.ErrBuild)
	assert.Contains(t, out.String(), "NoSuchClient")
	assert.Contains(t, out.String(), "hidden")

	generated, readErr := os.ReadFile(filepath.Join(dir, domain.DefaultOutput))
	require.NoError(t, readErr)
	assert.Contains(t, string(generated), `var PATH_CRATE_INNER_HIDDEN = [3]string{"crate", "inner", "hidden"}`)

	// The failed package is not remembered, so the next run fails the same way.
	out.Reset()
	err = wf.Generate(context.Background(), args)
	require.ErrorIs(t, err, domain.ErrBuild)
	assert.Contains(t, out.String(), "NoSuchClient")
}

func TestWorkflow_Integration_RejectsImportCycle(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}

	dir := copyExample(t, "cycle")
	wf, _ := newRealWorkflow(t)

	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:   []m.Path{m.Path(dir + "/...")},
		Threads: 1,
	})

	require.ErrorIs(t, err, domain.ErrImportCycle)
	assert.Contains(t, err.Error(), "example.com/cycle/registry")
	assert.Contains(t, err.Error(), "typepath:const")

	_, statErr := os.Stat(filepath.Join(dir, domain.DefaultOutput))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

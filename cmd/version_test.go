package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typepath.dev/pkg/typepath/internal/model"
)

func runVersion(t *testing.T) string {
	t.Helper()

	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestVersionCmd_StampedVersion(t *testing.T) {
	original := version
	version = "v1.4.0"
	t.Cleanup(func() { version = original })

	output := runVersion(t)

	assert.Contains(t, output, "typepath v1.4.0\n")
	assert.Contains(t, output, "go "+runtime.Version())
	assert.Contains(t, output, "grammar lexical (default)")
	assert.Contains(t, output, fmt.Sprintf("manifest v%d", m.ManifestVersion))
}

func TestVersionCmd_UnstampedBuild(t *testing.T) {
	original := version
	version = ""
	t.Cleanup(func() { version = original })

	// Test binaries carry no module version.
	assert.Equal(t, "devel", buildVersion())
	assert.Contains(t, runVersion(t), "typepath devel\n")
}

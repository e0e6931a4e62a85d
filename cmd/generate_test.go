package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"typepath.dev/pkg/typepath/internal/domain"
	domainmocks "typepath.dev/pkg/typepath/internal/domain/mocks"
	m "typepath.dev/pkg/typepath/internal/model"
)

// withMockWorkflow installs a mock workflow and a fresh root command holding sub.
func withMockWorkflow(t *testing.T, sub *cobra.Command) (*domainmocks.MockWorkflow, *cobra.Command) {
	t.Helper()
	useTestLog(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return mockWorkflow, cmd
}

func TestGenerateCmd_Parallel(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Threads == 2 &&
			args.Output == domain.DefaultOutput &&
			args.CacheFile == m.Path(".typepath-cache.yaml") &&
			!args.Check && !args.Verify
	})).Return(nil).Once()

	cmd.SetArgs([]string{"generate", "--parallel", "2", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_CheckAndVerify(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Check && args.Verify
	})).Return(nil).Once()

	cmd.SetArgs([]string{"generate", "--check", "--verify"})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_MultiplePaths(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return len(args.Paths) == 3 &&
			args.Paths[0] == m.Path("./cmd") &&
			args.Paths[1] == m.Path("./pkg") &&
			args.Paths[2] == m.Path("./internal")
	})).Return(nil).Once()

	cmd.SetArgs([]string{"generate", "./cmd", "./pkg", "./internal"})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return len(args.Exclude) == 2 &&
			args.Exclude[0] == "^generated_" &&
			args.Exclude[1] == "_mock\\.go$"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"generate", "-x", "^generated_", "-x", "_mock\\.go$", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_NoCacheFlag_DisablesCache(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return !args.UseCache
	})).Return(nil).Once()

	cmd.SetArgs([]string{"--no-cache", "generate", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_OutputFlag(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Output == "paths_gen.go"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"-o", "paths_gen.go", "generate"})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_PropagatesError(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.Anything).Return(domain.ErrStale).Once()

	cmd.SetArgs([]string{"generate", "--check"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrStale)
}

func TestNewGenerateCmd(t *testing.T) {
	cmd := newGenerateCmd()

	assert.Equal(t, "generate [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, generateLongDescription, cmd.Long)

	for _, name := range []string{"parallel", "check", "verify"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

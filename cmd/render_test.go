package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typepath.dev/pkg/typepath/internal/controller"
	"typepath.dev/pkg/typepath/internal/domain"
)

func TestRenderCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		format controller.OutputFormat
	}{
		{"default text", []string{"render", "::net::http::Client"}, controller.FormatText},
		{"yaml", []string{"render", "--format", "yaml", "::net::http::Client"}, controller.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow, cmd := withMockWorkflow(t, newRenderCmd())

			mockWorkflow.EXPECT().Render(t.Context(), domain.RenderArgs{
				Source: "::net::http::Client",
				Format: tt.format,
			}).Return(nil).Once()

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.ExecuteContext(t.Context()))
		})
	}
}

func TestRenderCmd_UnknownFormat(t *testing.T) {
	_, cmd := withMockWorkflow(t, newRenderCmd())

	cmd.SetArgs([]string{"render", "--format", "json", "::fmt"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
}

func TestRenderCmd_RequiresOnePath(t *testing.T) {
	_, cmd := withMockWorkflow(t, newRenderCmd())

	cmd.SetArgs([]string{"render"})
	require.Error(t, cmd.Execute())
}

// restoreGrammarBinding points the grammar key back at the shared root flag
// once a test has parsed its own copy.
func restoreGrammarBinding(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		bindFlagToConfig(rootCmd.PersistentFlags().Lookup(grammarFlagName), grammarConfigKey)
	})
}

func TestRenderCmd_GrammarFlag(t *testing.T) {
	restoreGrammarBinding(t)

	mockWorkflow, cmd := withMockWorkflow(t, newRenderCmd())

	mockWorkflow.EXPECT().Render(t.Context(), domain.RenderArgs{
		Source: "crate::a::b",
		Format: controller.FormatText,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"render", "--grammar", "restricted", "crate::a::b"})
	require.NoError(t, cmd.ExecuteContext(t.Context()))
	assert.Equal(t, "restricted", viper.GetString(grammarConfigKey))
}

func TestRenderCmd_UnknownGrammar(t *testing.T) {
	restoreGrammarBinding(t)
	useTestLog(t)

	originalWorkflow := workflow
	workflow = nil
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(newRenderCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"render", "--grammar", "pest", "::fmt"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrUnknownGrammar)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typepath.dev/pkg/typepath/internal/controller"
	"typepath.dev/pkg/typepath/internal/domain"
)

var renderFormatFlag string

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Print the segments and constant name of one path",
		Long: `Parse a single path and print its rendered segments and synthesized
PATH_* name. The path is not checked against any package.`,
		Example: `  typepath render '::net::http::Client'
  typepath render --format yaml 'crate::foo::*'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := controller.OutputFormat(renderFormatFlag)
			if format != controller.FormatText && format != controller.FormatYAML {
				return fmt.Errorf("unknown format %q (want %q or %q)", renderFormatFlag, controller.FormatText, controller.FormatYAML)
			}

			wf, err := newWorkflow(viper.GetString(grammarConfigKey))
			if err != nil {
				return err
			}

			return wf.Render(cmd.Context(), domain.RenderArgs{
				Source: args[0],
				Format: format,
			})
		},
	}

	cmd.Flags().StringVar(&renderFormatFlag, renderFormatFlagName, string(controller.FormatText), "output format (text or yaml)")

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

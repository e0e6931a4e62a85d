package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typepath.dev/pkg/typepath/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List typepath directives",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(viper.GetString(grammarConfigKey))
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

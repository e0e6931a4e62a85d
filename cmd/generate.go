package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typepath.dev/pkg/typepath/internal/domain"
	m "typepath.dev/pkg/typepath/internal/model"
)

var generateParallelFlag int
var generateCheckFlag bool
var generateVerifyFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Write the typepath file of every package",
		Long:  generateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(viper.GetString(grammarConfigKey))
			if err != nil {
				return err
			}

			return wf.Generate(cmd.Context(), domain.GenerateArgs{
				Paths:     parsePaths(args),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Output:    viper.GetString(outputFlagName),
				CacheFile: m.Path(viper.GetString(cacheFileConfigKey)),
				UseCache:  !viper.GetBool(noCacheFlagName),
				Check:     generateCheckFlag,
				Verify:    generateVerifyFlag,
				Threads:   viper.GetInt(generateParallelConfigKey),
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&generateParallelFlag, generateParallelFlagName, "p", viper.GetInt(generateParallelConfigKey), "number of packages generated in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(generateParallelFlagName), generateParallelConfigKey)

	cmd.Flags().BoolVar(&generateCheckFlag, generateCheckFlagName, false, "do not write; print a diff and fail if any file is out of date")
	cmd.Flags().BoolVar(&generateVerifyFlag, generateVerifyFlagName, false, "run go build on every generated package")
}

// Package cmd provides the root command and CLI setup for typepath.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"typepath.dev/pkg/typepath/internal/adapter"
	"typepath.dev/pkg/typepath/internal/controller"
	"typepath.dev/pkg/typepath/internal/domain"
	m "typepath.dev/pkg/typepath/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var packageAdapter adapter.PackageAdapter
var cacheStore adapter.CacheStore
var buildAdapter adapter.BuildRunnerAdapter
var resolver domain.Resolver
var workflow domain.Workflow
var ui controller.UI

// outputFileFlag is a root-level flag naming the generated file of each package.
var outputFileFlag string

// noCacheFlag disables incremental caching when set.
var noCacheFlag bool

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

// grammarFlag selects the path grammar of every command that parses paths.
var grammarFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	packageAdapter = adapter.NewLocalPackageAdapter()
	cacheStore = adapter.NewCacheStore()
	buildAdapter = adapter.NewLocalBuildRunnerAdapter()
	resolver = domain.NewResolver(packageAdapter)
}

// newWorkflow wires the shared dependencies with the configured grammar.
// Tests replace workflow before a command runs.
func newWorkflow(grammar string) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	parser, err := domain.NewPathParser(grammar)
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(
		fsAdapter,
		goFileAdapter,
		cacheStore,
		buildAdapter,
		ui,
		resolver,
		parser,
	), nil
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

const directivesHelp = `Directives:
  //typepath:array <name> <path>   var <name> = [N]string{...}, checked by the compiler
  //typepath:const <path>          var PATH_... = [N]string{...}, checked by the type checker

Paths are "::a::b::C" (import path a/b, symbol C) or "crate::a::C" (relative
to the module in go.mod), optionally ending in "::*".`

const rootLongDescription = `Typepath turns qualified item paths written in directive comments into
fixed-length string arrays, after checking that every path names something
that exists.

` + directivesHelp + `

` + pathPatternsHelp

const generateLongDescription = `Generate the typepath file of every package under the given paths
(default: current module).

` + pathPatternsHelp

const listLongDescription = `List the typepath directives found under the given paths.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "typepath",
		Short:         "Checked item paths as string arrays",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a fresh root command with its persistent flags, for
// tests that attach their own subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFileFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"name of the generated file in each package",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, viper.GetBool(noCacheFlagName), "disable cached incremental runs (regenerate everything)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")

	cmd.PersistentFlags().StringVar(&grammarFlag, grammarFlagName, viper.GetString(grammarConfigKey), "path grammar variant (lexical or restricted)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(grammarFlagName), grammarConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"typepath.dev/pkg/typepath/internal/domain"
	m "typepath.dev/pkg/typepath/internal/model"
)

// version is stamped by release builds with
// -ldflags "-X typepath.dev/pkg/typepath/cmd.version=<tag>".
var version string

// buildVersion reports the typepath version, preferring the linker stamp over
// the module version recorded by go install.
func buildVersion() string {
	if version != "" {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}

	return info.Main.Version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the typepath version",
		Long: `Print the typepath version, the Go toolchain it was built with, the
default path grammar and the cache manifest format.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("typepath %s\n", buildVersion())
			cmd.Printf("go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			cmd.Printf("grammar %s (default)\n", domain.DefaultGrammar)
			cmd.Printf("manifest v%d\n", m.ManifestVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

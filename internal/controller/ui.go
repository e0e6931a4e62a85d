// Package controller provides output adapters for displaying typepath results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "typepath.dev/pkg/typepath/internal/model"
)

// OutputFormat selects how a rendered path is printed.
type OutputFormat string

const (
	// FormatText prints a Go array literal and the synthesized name.
	FormatText OutputFormat = "text"
	// FormatYAML prints a YAML document.
	FormatYAML OutputFormat = "yaml"
)

// UI defines the interface for displaying generator output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayInvocations(ctx context.Context, invocations []m.Invocation, err error) error
	DisplayGenerated(ctx context.Context, files []m.GeneratedFile) error
	DisplayDiff(ctx context.Context, file m.GeneratedFile)
	DisplayBuildOutput(ctx context.Context, pkg *m.Package, output string)
	DisplayRendered(ctx context.Context, invocation m.Invocation, format OutputFormat) error
}

// NewUI picks the interactive UI when stdout is a terminal.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "typepath.dev/pkg/typepath/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayInvocations prints one table row per directive.
func (s *SimpleUI) DisplayInvocations(ctx context.Context, invocations []m.Invocation, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("list error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderInvocationTable(invocations))

	return nil
}

func renderInvocationTable(invocations []m.Invocation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Location", "Form", "Path", "Binding", "Len"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	for _, inv := range invocations {
		table.Append(invocationRow(inv))
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(invocations)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func invocationRow(inv m.Invocation) []string {
	return []string{
		location(inv.Directive),
		string(inv.Kind),
		inv.Path.String(),
		inv.Name,
		strconv.Itoa(len(inv.Rendered)),
	}
}

func location(d m.Directive) string {
	file := d.Pos.Filename
	if d.File != nil {
		file = string(d.File.FullPath)
	}

	return fmt.Sprintf("%s:%d", file, d.Pos.Line)
}

// DisplayGenerated summarizes the files written or skipped.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, files []m.GeneratedFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, file := range files {
		s.printf("%s\n", generatedLine(file))
	}

	return nil
}

func generatedLine(file m.GeneratedFile) string {
	if file.Status == m.StatusCached || file.Status == m.StatusRemoved {
		return fmt.Sprintf("%-9s %s", file.Status, file.Path)
	}

	return fmt.Sprintf("%-9s %s (%d paths)", file.Status, file.Path, len(file.Invocations))
}

// DisplayDiff prints the unified diff of a stale generated file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, file m.GeneratedFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", file.Diff)
}

// DisplayBuildOutput prints compiler output verbatim.
func (s *SimpleUI) DisplayBuildOutput(ctx context.Context, pkg *m.Package, output string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("go build %s:\n%s", pkg.Dir, output)

	if !strings.HasSuffix(output, "\n") {
		s.printf("\n")
	}
}

// renderedDocument is the YAML shape of a rendered path.
type renderedDocument struct {
	Path     string   `yaml:"path"`
	Name     string   `yaml:"name"`
	Length   int      `yaml:"length"`
	Segments []string `yaml:"segments"`
}

// DisplayRendered prints a single rendered path.
func (s *SimpleUI) DisplayRendered(ctx context.Context, inv m.Invocation, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := formatRendered(inv, format)
	if err != nil {
		return err
	}

	s.printf("%s", text)

	return nil
}

func formatRendered(inv m.Invocation, format OutputFormat) (string, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(renderedDocument{
			Path:     inv.Path.String(),
			Name:     inv.Name,
			Length:   len(inv.Rendered),
			Segments: inv.Rendered,
		})
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}

		return string(out), nil
	case FormatText, "":
		return fmt.Sprintf("%s\n%s\n", inv.Name, inv.Rendered.GoLiteral()), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

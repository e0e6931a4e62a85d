package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "typepath.dev/pkg/typepath/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	wroteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// footerLines is the height reserved below the pager viewport.
const footerLines = 2

// TUI implements UI for terminals: long listings open in a Bubble Tea pager
// and status lines are colored.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayInvocations shows the directive table, paging it when it does not
// fit the terminal.
func (t *TUI) DisplayInvocations(ctx context.Context, invocations []m.Invocation, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		return t.SimpleUI.DisplayInvocations(ctx, invocations, err)
	}

	title := titleStyle.Render(fmt.Sprintf("typepath directives (%d)", len(invocations)))
	content := renderInvocationTable(invocations)

	width, height := t.terminalSize()
	if height == 0 || strings.Count(content, "\n")+footerLines+1 <= height {
		_, err := fmt.Fprintf(t.output, "%s\n%s", title, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(title, content, width, height), tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayGenerated prints one colored status line per package.
func (t *TUI) DisplayGenerated(ctx context.Context, files []m.GeneratedFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, file := range files {
		line := generatedLine(file)

		switch file.Status {
		case m.StatusWrote:
			line = wroteStyle.Render(line)
		case m.StatusRemoved, m.StatusStale:
			line = removedStyle.Render(line)
		default:
			line = faintStyle.Render(line)
		}

		if _, err := fmt.Fprintln(t.output, line); err != nil {
			return err
		}
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel scrolls a pre-rendered table.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, height-footerLines-1)
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = msg.Height - footerLines - 1

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := faintStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100))

	return pm.title + "\n" + pm.viewport.View() + "\n\n" + footer
}

package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI reading keys from stdin.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// DisplayTargets opens an interactive target browser. Lists that fit on the
// screen are printed directly.
func (t *TUI) DisplayTargets(source m.Path, targets m.Targets) error {
	if len(targets) == 0 {
		_, err := fmt.Fprintf(t.output, "No targets found in %s\n", source)
		return err
	}

	model := newBrowseModel()
	if width, height, ok := terminalSize(t.output); ok {
		model.width = width
		model.height = height
	}

	model = model.handleTargetsMsg(targetsMsg{source: source, targets: targets})

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	return t.run(model)
}

// DisplayScan prints a styled summary of scanned Makefiles.
func (t *TUI) DisplayScan(makefiles []m.Makefile) error {
	if len(makefiles) == 0 {
		_, err := fmt.Fprintln(t.output, "No Makefiles found")
		return err
	}

	_, err := fmt.Fprint(t.output, renderScan(makefiles))

	return err
}

func (t *TUI) run(model tea.Model) error {
	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

func renderScan(makefiles []m.Makefile) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 1, 2)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(6).
		Align(lipgloss.Right)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	total := 0

	var rows strings.Builder

	for _, makefile := range makefiles {
		total += len(makefile.Targets)

		fmt.Fprintf(&rows, "%s  %s  %s\n",
			countStyle.Render(fmt.Sprintf("%d", len(makefile.Targets))),
			pathStyle.Render(string(makefile.Path)),
			dimStyle.Render("default: "+defaultName(makefile.Targets)+" · "+shortHash(makefile.Hash)),
		)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	title := titleStyle.Render(fmt.Sprintf("Scanned %d Makefiles · %d targets", len(makefiles), total))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		box.Render(strings.TrimSuffix(rows.String(), "\n")),
	) + "\n"
}

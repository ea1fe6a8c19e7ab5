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
	"golang.org/x/term"

	"mutavec.dev/pkg/mutavec/internal/domain"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	seedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayMutations shows the generated mutations in a scrollable pager.
func (t *TUI) DisplayMutations(ctx context.Context, mutations []m.Vector) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := fmt.Sprintf("mutavec: %d generated mutation(s)", len(mutations))

	return t.page(title, buildMutationLines(mutations))
}

// DisplayFormats shows the format combinations in a scrollable pager.
func (t *TUI) DisplayFormats(ctx context.Context, formats []m.Format, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(formats))
	for _, format := range formats {
		sample := domain.BuildInjection(payload, "<default>", format)
		lines = append(lines, fmt.Sprintf("%-16s %s", format.String(), printable(sample)))
	}

	return t.page("mutavec: format combinations", lines)
}

// DisplaySummary prints the closing totals line below the pager.
func (t *TUI) DisplaySummary(ctx context.Context, mutations, payloads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(t.output, "Generated %d mutation(s) from %d payload(s)\n", mutations, payloads)
}

func buildMutationLines(mutations []m.Vector) []string {
	lines := make([]string, 0, len(mutations))

	for i, mutation := range mutations {
		desc := mutation.Describe()
		lines = append(lines, fmt.Sprintf("%4d  %-4s %-24s %s = %s",
			i+1,
			desc["method"],
			desc["target"],
			desc["affected_input"],
			seedStyle.Render(printable(desc["affected_value"])),
		))
	}

	return lines
}

// page runs the pager, or just prints when the content fits on screen (or
// there is no screen).
func (t *TUI) page(title string, lines []string) error {
	content := strings.Join(lines, "\n")

	width, height := 0, 0
	if f, ok := t.output.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}

	if height == 0 || len(lines)+pagerChromeLines <= height {
		_, err := fmt.Fprintf(t.output, "%s\n%s\n", titleStyle.Render(title), content)
		return err
	}

	model := newPagerModel(title, content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerChromeLines is the vertical space the title and status bars occupy.
const pagerChromeLines = 2

// pagerModel is a minimal viewport pager around pre-rendered lines.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	model := pagerModel{title: title, content: content}

	if width > 0 && height > pagerChromeLines {
		model.viewport = viewport.New(width, height-pagerChromeLines)
		model.viewport.SetContent(content)
		model.ready = true
	}

	return model
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-pagerChromeLines)
			p.viewport.SetContent(p.content)
			p.ready = true

			return p, nil
		}

		p.viewport.Width = msg.Width
		p.viewport.Height = msg.Height - pagerChromeLines

		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading..."
	}

	status := fmt.Sprintf("%3.0f%% | up/down scroll, q quit", p.viewport.ScrollPercent()*100)

	return titleStyle.Render(p.title) + "\n" +
		p.viewport.View() + "\n" +
		statusStyle.Render(status)
}

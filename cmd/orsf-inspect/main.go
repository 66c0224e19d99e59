// orsf-inspect is a terminal viewer for setup documents: it loads a
// file, runs the validator, and presents the findings in a scrollable
// view.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005F87")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	filename string
	doc      *orsf.Document
	findings []orsf.Finding
	err      error
	vp       viewport.Model
	ready    bool
}

type loadedMsg struct {
	doc      *orsf.Document
	findings []orsf.Finding
	err      error
}

func newInspectModel(filename string) *inspectModel {
	return &inspectModel{filename: filename}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *inspectModel) loadDocument() tea.Msg {
	raw, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	doc, err := orsf.Decode(raw)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{doc: doc, findings: orsf.Validate(doc)}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		m.vp.SetContent(m.renderFindings())

	case loadedMsg:
		m.doc = msg.doc
		m.findings = msg.findings
		m.err = msg.err
		if m.ready {
			m.vp.SetContent(m.renderFindings())
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *inspectModel) renderFindings() string {
	if m.err != nil {
		return errStyle.Render(m.err.Error())
	}
	if m.doc == nil {
		return "loading..."
	}
	if len(m.findings) == 0 {
		return okStyle.Render("no findings, setup looks clean")
	}

	var b strings.Builder
	for _, f := range m.findings {
		line := f.String()
		switch f.Severity {
		case orsf.SeverityError:
			line = errStyle.Render(line)
		case orsf.SeverityWarning:
			line = warnStyle.Render(line)
		default:
			line = infoStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *inspectModel) View() string {
	title := m.filename
	if m.doc != nil {
		title = fmt.Sprintf("%s  [%s %s]", m.doc.Metadata.Name, m.doc.Car.Make, m.doc.Car.Model)
	}

	header := titleStyle.Render("orsf-inspect") + " " + title + "\n\n"
	footer := "\n" + helpStyle.Render("↑/↓ scroll · q quit")

	if !m.ready {
		return header + m.renderFindings() + footer
	}
	return header + m.vp.View() + footer
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: orsf-inspect <file>")
		os.Exit(1)
	}

	p := tea.NewProgram(newInspectModel(os.Args[1]), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		zap.S().Fatalf("inspect: %v", err)
	}
}

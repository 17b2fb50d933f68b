// Package tui provides the Bubble Tea live editor.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/hemingway/internal/analyzer"
	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/output"
	"github.com/verte-zerg/hemingway/internal/readability"
	"github.com/verte-zerg/hemingway/internal/store"
)

// Model implements the Bubble Tea editor.
type Model struct {
	analyzer *analyzer.Analyzer
	settings model.Settings
	store    *store.Store
	path     string
	log      zerolog.Logger

	editor     textarea.Model
	result     model.AnalysisResult
	annotation analyzer.Annotation
	status     string

	width  int
	height int
}

var (
	plainStyle     = lipgloss.NewStyle()
	adverbStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#2F5BA8")).Foreground(lipgloss.Color("#F0F0F0"))
	qualifierStyle = lipgloss.NewStyle().Background(lipgloss.Color("#3A78C8")).Foreground(lipgloss.Color("#F0F0F0"))
	passiveStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#3D7A3D")).Foreground(lipgloss.Color("#F0F0F0"))
	hardStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#8A7A2A"))
	veryHardStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#8C3A3A"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	sidebarStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Options configures a new editor.
type Options struct {
	Analyzer *analyzer.Analyzer
	Settings model.Settings
	// Store receives saved analyses. Nil disables history.
	Store *store.Store
	// Path is written back on save when set.
	Path string
	Text string
	Log  zerolog.Logger
}

// NewModel constructs the editor with the initial text analyzed.
func NewModel(opts Options) *Model {
	a := opts.Analyzer
	if a == nil {
		a = analyzer.Default()
	}
	editor := textarea.New()
	editor.Placeholder = "Start writing..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetValue(opts.Text)
	editor.Focus()

	m := &Model{
		analyzer: a,
		settings: opts.Settings,
		store:    opts.Store,
		path:     opts.Path,
		log:      opts.Log,
		editor:   editor,
	}
	m.reanalyze()
	return m
}

type savedMsg struct {
	id  int64
	err error
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			m.log.Error().Err(msg.err).Msg("failed to save analysis")
		} else {
			m.status = m.savedStatus(msg.id)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.status = "saving..."
			return m, m.saveCmd()
		}
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.status = ""
		m.reanalyze()
	}
	return m, cmd
}

func (m *Model) reanalyze() {
	text := m.editor.Value()
	m.result = m.analyzer.Analyze(text, m.settings)
	m.annotation = m.analyzer.Annotate(text, m.settings)
}

// layout splits the screen into the text column and the sidebar.
func (m *Model) layout() {
	textWidth, _ := m.columns()
	m.editor.SetWidth(textWidth)
	m.editor.SetHeight(max((m.height-1)/2, 1))
}

func (m *Model) columns() (textWidth, sideWidth int) {
	sideWidth = max(m.width*3/10, 24)
	textWidth = max(m.width-sideWidth-1, 1)
	return textWidth, sideWidth
}

// View implements tea.Model.
func (m *Model) View() string {
	text := m.editor.Value()
	if m.width == 0 || m.height == 0 {
		preview := renderStyledRunes(buildStyledRunes(text, m.annotation))
		return m.editor.View() + "\n\n" + preview + "\n\n" + m.renderSidebar() + "\n" + m.renderFooter()
	}
	textWidth, sideWidth := m.columns()
	previewHeight := max(m.height-m.editor.Height()-2, 1)
	wrapped := wrapStyledRunes(buildStyledRunes(text, m.annotation), textWidth)
	wrapped = lastLines(wrapped, previewHeight)
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(),
		lipgloss.NewStyle().Width(textWidth).Height(previewHeight).Render(wrapped),
	)
	right := sidebarStyle.Width(max(sideWidth-4, 1)).Render(m.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footer
}

// lastLines keeps the final n lines so the preview follows the end of the text.
func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

func (m *Model) renderSidebar() string {
	s := m.result.Stats
	hard, veryHard := 0, 0
	for _, sm := range m.annotation.Sentences {
		switch sm.Class {
		case readability.ClassHard:
			hard++
		case readability.ClassVeryHard:
			veryHard++
		}
	}
	lines := []string{
		titleStyle.Render("Readability"),
		fmt.Sprintf("Grade %d", s.ReadingLevel),
		output.ClassLabel(s.Readability),
		"",
		fmt.Sprintf("Words: %d", s.Words),
		fmt.Sprintf("Sentences: %d", s.Sentences),
		fmt.Sprintf("Paragraphs: %d", s.Paragraphs),
		fmt.Sprintf("Reading time: %.0fs", s.ReadingTimeInSecs),
		"",
		adverbStyle.Render(plural(s.Highlights.Adverbs, "adverb", "adverbs")),
		qualifierStyle.Render(plural(s.Highlights.Qualifiers, "qualifier", "qualifiers")),
		passiveStyle.Render(plural(s.Highlights.PassiveVoices, "use of passive voice", "uses of passive voice")),
		hardStyle.Render(fmt.Sprintf("%d of %d sentences hard to read", hard, len(m.annotation.Sentences))),
		veryHardStyle.Render(fmt.Sprintf("%d of %d sentences very hard to read", veryHard, len(m.annotation.Sentences))),
	}
	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("Target %s", m.settings.Target()), "ctrl+s save", "esc quit"}
	if m.status != "" {
		segments = append(segments, m.status)
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) savedStatus(id int64) string {
	var parts []string
	if m.path != "" {
		parts = append(parts, "wrote "+m.path)
	}
	if id > 0 {
		parts = append(parts, fmt.Sprintf("saved analysis #%d", id))
	}
	if len(parts) == 0 {
		return "nothing to save (no file, history disabled)"
	}
	return strings.Join(parts, ", ")
}

// saveCmd writes the file and records the analysis off the update loop.
func (m *Model) saveCmd() tea.Cmd {
	text := m.editor.Value()
	result := m.result
	path := m.path
	st := m.store
	target := m.settings.Target()
	return func() tea.Msg {
		if path != "" {
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return savedMsg{err: fmt.Errorf("failed to write %s: %w", path, err)}
			}
		}
		if st == nil {
			return savedMsg{}
		}
		source := path
		if source == "" {
			source = "editor"
		}
		rec := model.AnalysisRecord{CreatedAt: time.Now(), Source: source, Target: target, Stats: result.Stats}
		id, err := st.InsertAnalysis(context.Background(), rec, result.ParagraphStats)
		if err != nil {
			return savedMsg{err: fmt.Errorf("failed to save analysis: %w", err)}
		}
		return savedMsg{id: id}
	}
}

// Run starts the editor on the terminal and blocks until it quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}

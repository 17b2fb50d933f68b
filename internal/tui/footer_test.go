package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"
	"github.com/verte-zerg/hemingway/internal/store"
)

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestSidebarReflectsAnalysis(t *testing.T) {
	m := NewModel(Options{Text: "He actually ran quickly. The ball was thrown by John.", Settings: model.DefaultSettings()})
	out := m.renderSidebar()
	if !containsAll(out, []string{"Grade", "Words: 10", "Sentences: 2", "1 adverb", "1 use of passive voice", "0 qualifiers"}) {
		t.Fatalf("sidebar missing expected segments: %s", out)
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := NewModel(Options{Settings: model.Settings{ReadingLevelTarget: readability.Technical}})
	m.status = "saved analysis #3"
	if out := m.renderFooter(); !containsAll(out, []string{"Target TECHNICAL", "ctrl+s save", "saved analysis #3"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestTypingReanalyzes(t *testing.T) {
	m := NewModel(Options{Settings: model.DefaultSettings()})
	for _, r := range "I think so." {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.result.Stats.Highlights.Qualifiers != 1 {
		t.Fatalf("expected 1 qualifier after typing, got %+v", m.result.Stats.Highlights)
	}
	if m.annotation.Count("qualifier") != 1 {
		t.Fatalf("expected annotation to follow the text")
	}
}

func TestSaveWritesFileAndHistory(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "hemingway.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	path := filepath.Join(dir, "draft.txt")
	m := NewModel(Options{Text: "It was written.", Store: st, Path: path, Settings: model.DefaultSettings()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	msg := cmd()
	m.Update(msg)
	if !strings.Contains(m.status, "saved analysis #1") || !strings.Contains(m.status, "wrote") {
		t.Fatalf("unexpected status %q", m.status)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "It was written." {
		t.Fatalf("expected file to be written, got %q %v", data, err)
	}
	records, err := st.ListAnalyses(context.Background(), model.HistoryConfig{})
	if err != nil || len(records) != 1 || records[0].Stats.Highlights.PassiveVoices != 1 {
		t.Fatalf("expected stored analysis, got %+v %v", records, err)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(Options{})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestViewWithSize(t *testing.T) {
	m := NewModel(Options{Text: "One line.\n\nAnother paragraph here.", Settings: model.DefaultSettings()})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if out := m.View(); !strings.Contains(out, "Readability") {
		t.Fatalf("expected sidebar in view")
	}
}

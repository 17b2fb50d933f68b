package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/hemingway/internal/analyzer"
	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"
	"github.com/verte-zerg/hemingway/internal/store"
)

var texts = []string{
	"The cat sat. The dog ran.",
	"I think we should strategically realign our organizational infrastructure immediately.\n\nIt was done.",
	"Actually, the implementation of these strategically formulated initiatives has been demonstrated to facilitate a substantial amelioration in operational efficiency.",
}

func seedStore(t *testing.T) (*store.Store, []int64) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "hemingway.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i, text := range texts {
		result := analyzer.Analyze(text, model.DefaultSettings())
		rec := model.AnalysisRecord{
			CreatedAt: time.Unix(0, 0).Add(time.Duration(i) * time.Minute),
			Source:    "doc.md",
			Target:    readability.Normal,
			Stats:     result.Stats,
		}
		id, err := st.InsertAnalysis(ctx, rec, result.ParagraphStats)
		if err != nil {
			t.Fatalf("insert analysis: %v", err)
		}
		ids = append(ids, id)
	}
	return st, ids
}

func TestBuildReport(t *testing.T) {
	st, ids := seedStore(t)
	report, err := BuildReport(context.Background(), st, model.HistoryConfig{Last: 2, Window: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Analyses) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(report.Analyses))
	}
	if report.Analyses[0].ID != ids[1] || report.Analyses[1].ID != ids[2] {
		t.Fatalf("unexpected analysis ids: %+v", report.Analyses)
	}
	if len(report.Sources) != 1 || report.Sources[0].Analyses != 2 {
		t.Fatalf("unexpected sources: %+v", report.Sources)
	}
	if len(report.Paragraphs) != 1 || report.Paragraphs[0].AnalysisID != ids[2] {
		t.Fatalf("expected paragraphs of the latest analysis, got %+v", report.Paragraphs)
	}
}

func TestRenderReport(t *testing.T) {
	st, _ := seedStore(t)
	report, err := BuildReport(context.Background(), st, model.HistoryConfig{Window: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "Analyses: 3", "Trends", "Hardest", "Per-Source", "Latest: doc.md", "Paragraph levels"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Report{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No analyses found." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

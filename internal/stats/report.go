package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/store"
)

// hardestCount is how many analyses the hardest list shows.
const hardestCount = 3

// Report contains precomputed data for history rendering.
type Report struct {
	Analyses   []model.AnalysisRecord
	Sources    []model.SourceAggregate
	Paragraphs []model.ParagraphRecord
	Window     int
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	analyses, err := st.ListAnalyses(ctx, cfg)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list analyses: %w", err)
	}
	sources, err := st.ListSources(ctx, cfg)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list sources: %w", err)
	}
	report := Report{Analyses: analyses, Sources: sources, Window: cfg.Window}
	if len(analyses) == 0 {
		return report, nil
	}
	latest := analyses[len(analyses)-1].ID
	paragraphs, err := st.ListParagraphs(ctx, []int64{latest})
	if err != nil {
		return Report{}, fmt.Errorf("failed to list paragraphs: %w", err)
	}
	report.Paragraphs = paragraphs[latest]
	return report, nil
}

// Render writes the full history report.
func Render(w io.Writer, r Report) error {
	if err := RenderSummary(w, r.Analyses); err != nil {
		return err
	}
	if len(r.Analyses) == 0 {
		return nil
	}
	if err := RenderCurves(w, r.Analyses, r.Window); err != nil {
		return err
	}
	if err := RenderTable(w, "Analyses", r.Analyses); err != nil {
		return err
	}
	if err := RenderTable(w, "Hardest", Hardest(r.Analyses, hardestCount)); err != nil {
		return err
	}
	if err := RenderSources(w, r.Sources); err != nil {
		return err
	}
	return RenderParagraphs(w, r.Analyses[len(r.Analyses)-1], r.Paragraphs)
}

package analyzer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/hemingway/internal/model"
)

// AnalyzeBatch analyzes texts concurrently with at most workers goroutines.
// Results are index-aligned with texts. A non-positive workers value uses
// one worker per CPU.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string, settings model.Settings, workers int) ([]model.AnalysisResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]model.AnalysisResult, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(text, settings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

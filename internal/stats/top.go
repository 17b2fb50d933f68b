package stats

import (
	"sort"

	"github.com/verte-zerg/hemingway/internal/model"
)

// Hardest returns up to n analyses with the highest reading level. Ties go
// to the more recent analysis.
func Hardest(records []model.AnalysisRecord, n int) []model.AnalysisRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	items := make([]model.AnalysisRecord, len(records))
	copy(items, records)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Stats.ReadingLevel == items[j].Stats.ReadingLevel {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].Stats.ReadingLevel > items[j].Stats.ReadingLevel
	})
	return items[:min(n, len(items))]
}

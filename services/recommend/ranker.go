// File: services/recommend/ranker.go
package recommend

import (
	"sort"

	"sprout/models"
)

// RankedCourse is a catalog course decorated for display.
type RankedCourse struct {
	models.RecommendedCourse
	CategoryRank    int    `json:"categoryRank"`
	Urgency         string `json:"urgency"`
	HasAlternatives bool   `json:"hasAlternatives"`
}

// Rank orders courses by category rank, then by priority score, both
// ascending. Ties keep their input order, so equal courses render in the
// order the catalog returned them.
func Rank(courses []models.RecommendedCourse) []RankedCourse {
	ranked := make([]RankedCourse, len(courses))
	for i, c := range courses {
		ranked[i] = RankedCourse{
			RecommendedCourse: c,
			CategoryRank:      models.CategoryRank(c.Category),
			Urgency:           models.UrgencyLabel(c.Priority),
			HasAlternatives:   c.HasAlternatives(),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CategoryRank != ranked[j].CategoryRank {
			return ranked[i].CategoryRank < ranked[j].CategoryRank
		}
		return ranked[i].Priority < ranked[j].Priority
	})
	return ranked
}

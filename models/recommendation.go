// File: models/recommendation.go
package models

// RecommendedCourse is one course suggested toward graduation, as stored in the
// remote requirements catalog.
type RecommendedCourse struct {
	CourseName string `json:"courseName" firestore:"courseName"`
	Category   string `json:"category" firestore:"category"` // 전공필수, 교양필수, ...
	Credits    int    `json:"credits" firestore:"credits"`
	Priority   int    `json:"priority" firestore:"priority"` // lower is more urgent
	Reason     string `json:"reason" firestore:"reason"`
	Semester   string `json:"semester" firestore:"semester"` // 1학기, 2학기, 연중, ...
	// AlternativeCourses lists courses that satisfy the same requirement slot
	// (the catalog's oneOf group).
	AlternativeCourses []string `json:"alternativeCourses,omitempty" firestore:"alternativeCourses,omitempty"`
}

// UnknownCategoryRank is the rank assigned to categories missing from the fixed
// ordering. It sorts after every known category.
const UnknownCategoryRank = 99

// CategoryRank converts a requirement category into its fixed sort rank.
// Total over all inputs: unrecognized or empty categories rank last, never error.
func CategoryRank(category string) int {
	switch category {
	case "교양필수":
		return 1
	case "전공필수":
		return 2
	case "학부공통", "전공심화":
		return 3
	case "전공선택":
		return 4
	case "소양":
		return 5
	case "교양선택":
		return 6
	default:
		return UnknownCategoryRank
	}
}

// Urgency labels derived from the numeric priority score.
const (
	UrgencyUrgent = "urgent"
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// UrgencyLabel buckets a priority score into a four-level display label.
// Band upper bounds are inclusive.
func UrgencyLabel(priority int) string {
	switch {
	case priority <= 10:
		return UrgencyUrgent
	case priority <= 20:
		return UrgencyHigh
	case priority <= 30:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// HasAlternatives reports whether the course carries a non-empty oneOf group.
func (c RecommendedCourse) HasAlternatives() bool {
	return len(c.AlternativeCourses) > 0
}

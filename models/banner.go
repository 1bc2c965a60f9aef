// File: models/banner.go
package models

// Banner link behaviors.
const (
	BannerTypeInternal = "INTERNAL"
	BannerTypeExternal = "EXTERNAL"
	BannerTypeNone     = "NONE"
)

// Banner is a home-screen banner managed through the admin console.
type Banner struct {
	ID       string `json:"id" firestore:"-"`
	ImageURL string `json:"imageUrl" firestore:"imageUrl"`
	Title    string `json:"title" firestore:"title"`

	Type         string `json:"type" firestore:"type"`                 // INTERNAL, EXTERNAL, NONE
	TargetScreen string `json:"targetScreen" firestore:"targetScreen"` // graduation, recommendation, certificate, documents, meal, timetable
	TargetURL    string `json:"targetUrl" firestore:"targetUrl"`

	Priority         int    `json:"priority" firestore:"priority"` // lower shows first, default 99
	Active           bool   `json:"active" firestore:"active"`
	StartDate        int64  `json:"startDate" firestore:"startDate"` // unix millis, 0 = no bound
	EndDate          int64  `json:"endDate" firestore:"endDate"`     // unix millis, 0 = no bound
	TargetDepartment string `json:"targetDepartment" firestore:"targetDepartment"`
}

// VisibleAt reports whether the banner should be shown to the given department
// at the given time (unix millis).
func (b Banner) VisibleAt(nowMillis int64, department string) bool {
	if !b.Active {
		return false
	}
	if b.StartDate != 0 && nowMillis < b.StartDate {
		return false
	}
	if b.EndDate != 0 && nowMillis > b.EndDate {
		return false
	}
	if b.TargetDepartment != "" && b.TargetDepartment != "ALL" && b.TargetDepartment != department {
		return false
	}
	return true
}

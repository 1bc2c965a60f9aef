// File: models/timetable.go
package models

import "time"

// SavedTimetable is a named, finalized snapshot of a weekly schedule.
type SavedTimetable struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`      // e.g. "2024-2학기 시간표"
	UserID    string          `json:"userId"`    // owner
	SavedAt   int64           `json:"savedDate"` // unix millis
	Schedules []ScheduleEntry `json:"schedules"`
	// CourseCount is derived from Schedules; use ReplaceSchedules to keep it in sync.
	CourseCount int `json:"courseCount"`
}

// NewSavedTimetable builds an unsaved timetable snapshot. The ID is assigned by
// the store at save time.
func NewSavedTimetable(name, userID string, schedules []ScheduleEntry) SavedTimetable {
	return SavedTimetable{
		Name:        name,
		UserID:      userID,
		SavedAt:     time.Now().UnixMilli(),
		Schedules:   schedules,
		CourseCount: len(schedules),
	}
}

// ReplaceSchedules swaps the entry list and recomputes the derived course count.
func (t *SavedTimetable) ReplaceSchedules(schedules []ScheduleEntry) {
	t.Schedules = schedules
	t.CourseCount = len(schedules)
}

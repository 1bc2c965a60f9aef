// File: models/schedule.go
package models

import "fmt"

// ScheduleEntry is one timed class occurrence on the weekly timetable.
type ScheduleEntry struct {
	DayIndex    int    `json:"dayIndex" firestore:"dayIndex"` // 0=Mon .. 4=Fri
	StartHour   int    `json:"startHour" firestore:"startHour"`
	StartMinute int    `json:"startMinute" firestore:"startMinute"`
	EndHour     int    `json:"endHour" firestore:"endHour"`
	EndMinute   int    `json:"endMinute" firestore:"endMinute"`
	SubjectName string `json:"subjectName" firestore:"subjectName"`
	Professor   string `json:"professorName" firestore:"professorName"`
	Room        string `json:"location" firestore:"location"`
	// CatalogID references the remote catalog document this entry came from.
	// Empty for entries the user typed in by hand.
	CatalogID string `json:"catalogId,omitempty" firestore:"catalogId,omitempty"`
}

// Validate checks the entry invariants: weekday range and start before end.
func (e ScheduleEntry) Validate() error {
	if e.DayIndex < 0 || e.DayIndex > 4 {
		return fmt.Errorf("day index %d out of range (0=Mon .. 4=Fri)", e.DayIndex)
	}
	start := e.StartHour*60 + e.StartMinute
	end := e.EndHour*60 + e.EndMinute
	if start >= end {
		return fmt.Errorf("start time %02d:%02d is not before end time %02d:%02d",
			e.StartHour, e.StartMinute, e.EndHour, e.EndMinute)
	}
	return nil
}

package models

import "testing"

func validEntry() ScheduleEntry {
	return ScheduleEntry{
		DayIndex:    0,
		StartHour:   9,
		StartMinute: 0,
		EndHour:     10,
		EndMinute:   30,
		SubjectName: "자료구조",
		Professor:   "김교수",
		Room:        "IT관 301",
	}
}

func TestScheduleEntryValidate(t *testing.T) {
	if err := validEntry().Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	e := validEntry()
	e.DayIndex = 5
	if err := e.Validate(); err == nil {
		t.Error("expected error for day index 5")
	}

	e = validEntry()
	e.DayIndex = -1
	if err := e.Validate(); err == nil {
		t.Error("expected error for negative day index")
	}

	e = validEntry()
	e.StartHour, e.StartMinute = 10, 30
	e.EndHour, e.EndMinute = 10, 30
	if err := e.Validate(); err == nil {
		t.Error("expected error when start equals end")
	}

	e = validEntry()
	e.StartHour, e.EndHour = 11, 9
	if err := e.Validate(); err == nil {
		t.Error("expected error when start is after end")
	}
}

func TestSavedTimetableCourseCount(t *testing.T) {
	entries := []ScheduleEntry{validEntry(), validEntry(), validEntry()}

	tt := NewSavedTimetable("2024-2학기 시간표", "user-1", entries)
	if tt.CourseCount != 3 {
		t.Fatalf("CourseCount = %d, want 3", tt.CourseCount)
	}
	if tt.SavedAt == 0 {
		t.Error("SavedAt not set")
	}

	tt.ReplaceSchedules(entries[:1])
	if tt.CourseCount != 1 {
		t.Errorf("CourseCount after replace = %d, want 1", tt.CourseCount)
	}

	tt.ReplaceSchedules(nil)
	if tt.CourseCount != 0 {
		t.Errorf("CourseCount after nil replace = %d, want 0", tt.CourseCount)
	}
}

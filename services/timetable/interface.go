package timetable

import (
	"sprout/database/localstore"
	"sprout/models"
)

// TimetableService covers the working-set schedule being assembled and the
// collection of saved timetables with its active pointer.
type TimetableService interface {
	// Working set
	CurrentSchedule() ([]models.ScheduleEntry, error)
	ReplaceSchedule(entries []models.ScheduleEntry) error
	ClearSchedule() error
	AddClass(entry models.ScheduleEntry) error
	RemoveClass(catalogID string) error

	// Saved timetables
	SaveTimetable(name, userID string, entries []models.ScheduleEntry) (models.SavedTimetable, error)
	ListSaved() ([]models.SavedTimetable, error)
	GetSaved(id string) (models.SavedTimetable, bool, error)
	RenameSaved(id, newName string) (bool, error)
	DeleteSaved(id string) (bool, error)
	SetActive(id string) error
	ActiveID() (string, bool, error)
	ResetSaved() error
}

// DefaultTimetableService is the production implementation.
type DefaultTimetableService struct {
	WorkingSet *localstore.WorkingSetStore
	Saved      *localstore.TimetableStore
}

package timetable

import (
	"errors"
	"fmt"

	"sprout/models"
)

// CurrentSchedule returns the working-set entries in insertion order.
func (s *DefaultTimetableService) CurrentSchedule() ([]models.ScheduleEntry, error) {
	return s.WorkingSet.Load()
}

// ReplaceSchedule overwrites the working set with the given entries. Entry
// invariants are checked; overlapping class times are not.
func (s *DefaultTimetableService) ReplaceSchedule(entries []models.ScheduleEntry) error {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return s.WorkingSet.Save(entries)
}

// ClearSchedule empties the working set.
func (s *DefaultTimetableService) ClearSchedule() error {
	return s.WorkingSet.Clear()
}

// AddClass appends one entry to the working set.
func (s *DefaultTimetableService) AddClass(entry models.ScheduleEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.WorkingSet.Add(entry)
}

// RemoveClass drops working-set entries referencing the given catalog entry.
func (s *DefaultTimetableService) RemoveClass(catalogID string) error {
	if catalogID == "" {
		return errors.New("catalog id is required")
	}
	return s.WorkingSet.Remove(catalogID)
}

// SaveTimetable snapshots the given entries as a named timetable and returns
// the stored record with its generated ID.
func (s *DefaultTimetableService) SaveTimetable(name, userID string, entries []models.ScheduleEntry) (models.SavedTimetable, error) {
	if name == "" {
		return models.SavedTimetable{}, errors.New("timetable name is required")
	}
	return s.Saved.Save(models.NewSavedTimetable(name, userID, entries))
}

// ListSaved returns every saved timetable.
func (s *DefaultTimetableService) ListSaved() ([]models.SavedTimetable, error) {
	return s.Saved.ListAll()
}

// GetSaved returns one saved timetable by ID.
func (s *DefaultTimetableService) GetSaved(id string) (models.SavedTimetable, bool, error) {
	return s.Saved.Get(id)
}

// RenameSaved updates a saved timetable's display name.
func (s *DefaultTimetableService) RenameSaved(id, newName string) (bool, error) {
	if newName == "" {
		return false, errors.New("timetable name is required")
	}
	return s.Saved.Rename(id, newName)
}

// DeleteSaved removes a saved timetable. The active pointer is not cleared
// when it references the deleted record; the client detects and handles that.
func (s *DefaultTimetableService) DeleteSaved(id string) (bool, error) {
	return s.Saved.Delete(id)
}

// SetActive marks the given ID as the in-use timetable.
func (s *DefaultTimetableService) SetActive(id string) error {
	return s.Saved.SetActive(id)
}

// ActiveID returns the in-use timetable ID, if one is set.
func (s *DefaultTimetableService) ActiveID() (string, bool, error) {
	return s.Saved.GetActive()
}

// ResetSaved erases the saved collection and the active pointer.
func (s *DefaultTimetableService) ResetSaved() error {
	return s.Saved.ClearAll()
}

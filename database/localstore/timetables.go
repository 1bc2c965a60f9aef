// File: database/localstore/timetables.go
package localstore

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"sprout/models"

	"go.uber.org/zap"
)

const (
	timetableNamespace = "saved_timetables"
	timetablesKey      = "timetables"
	activeIDKey        = "active_timetable_id"
)

// TimetableStore persists the collection of saved timetables plus the active
// record pointer. The collection is a single serialized blob rewritten on
// every mutation; the active pointer is an independent scalar with no
// existence check against the collection.
type TimetableStore struct {
	mu sync.Mutex
	kv KV
}

// NewTimetableStore returns a saved-timetable store over the given blob layer.
func NewTimetableStore(kv KV) *TimetableStore {
	return &TimetableStore{kv: kv}
}

// Save appends the timetable to the collection, assigning a time-based ID when
// none is set, and returns the stored record.
func (s *TimetableStore) Save(timetable models.SavedTimetable) (models.SavedTimetable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timetables, err := s.load()
	if err != nil {
		return models.SavedTimetable{}, err
	}

	if timetable.ID == "" {
		timetable.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	// Course count is derived; never trust what the caller set.
	timetable.CourseCount = len(timetable.Schedules)

	timetables = append(timetables, timetable)
	if err := s.persist(timetables); err != nil {
		return models.SavedTimetable{}, err
	}
	return timetable, nil
}

// ListAll returns every saved timetable, oldest first. A missing or unreadable
// blob yields an empty slice.
func (s *TimetableStore) ListAll() ([]models.SavedTimetable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the timetable with the given ID, reporting whether it exists.
func (s *TimetableStore) Get(id string) (models.SavedTimetable, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timetables, err := s.load()
	if err != nil {
		return models.SavedTimetable{}, false, err
	}
	for _, t := range timetables {
		if t.ID == id {
			return t, true, nil
		}
	}
	return models.SavedTimetable{}, false, nil
}

// Delete removes the timetable with the given ID and reports whether anything
// was removed. The active pointer is deliberately left untouched even when it
// references the deleted record.
func (s *TimetableStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timetables, err := s.load()
	if err != nil {
		return false, err
	}

	kept := make([]models.SavedTimetable, 0, len(timetables))
	for _, t := range timetables {
		if t.ID == id {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(timetables) {
		return false, nil
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Rename updates the display name of the first timetable matching the ID and
// reports whether an update occurred.
func (s *TimetableStore) Rename(id, newName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timetables, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range timetables {
		if timetables[i].ID == id {
			timetables[i].Name = newName
			if err := s.persist(timetables); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// SetActive records the given ID as the active timetable. No existence check
// is performed against the collection.
func (s *TimetableStore) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Set(timetableNamespace, activeIDKey, id)
}

// GetActive returns the active timetable ID, reporting whether one is set.
func (s *TimetableStore) GetActive() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Get(timetableNamespace, activeIDKey)
}

// ClearAll erases the collection and the active pointer. Debug/reset operation.
func (s *TimetableStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Clear(timetableNamespace)
}

func (s *TimetableStore) load() ([]models.SavedTimetable, error) {
	raw, ok, err := s.kv.Get(timetableNamespace, timetablesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.SavedTimetable{}, nil
	}

	var timetables []models.SavedTimetable
	if err := json.Unmarshal([]byte(raw), &timetables); err != nil {
		zap.L().Warn("saved timetables blob unreadable, treating as empty", zap.Error(err))
		return []models.SavedTimetable{}, nil
	}
	if timetables == nil {
		timetables = []models.SavedTimetable{}
	}
	return timetables, nil
}

func (s *TimetableStore) persist(timetables []models.SavedTimetable) error {
	data, err := json.Marshal(timetables)
	if err != nil {
		return err
	}
	return s.kv.Set(timetableNamespace, timetablesKey, string(data))
}

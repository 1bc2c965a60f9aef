// File: database/localstore/working_set.go
package localstore

import (
	"encoding/json"
	"sync"

	"sprout/models"

	"go.uber.org/zap"
)

const (
	workingSetNamespace = "current_timetable"
	workingSetKey       = "schedules"
)

// WorkingSetStore persists the single schedule currently being assembled,
// independent of the saved-timetable collection. Every mutation rewrites the
// whole serialized blob; the mutex keeps concurrent callers from losing
// updates to each other.
type WorkingSetStore struct {
	mu sync.Mutex
	kv KV
}

// NewWorkingSetStore returns a working-set store over the given blob layer.
func NewWorkingSetStore(kv KV) *WorkingSetStore {
	return &WorkingSetStore{kv: kv}
}

// Save replaces the persisted schedule with the given entries.
func (s *WorkingSetStore) Save(entries []models.ScheduleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(entries)
}

// Load returns the persisted schedule. A missing or unreadable blob yields an
// empty slice, never nil and never an error; only a storage fault errors.
func (s *WorkingSetStore) Load() ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Clear removes the persisted schedule entirely.
func (s *WorkingSetStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(workingSetNamespace, workingSetKey)
}

// Add appends one entry to the persisted schedule.
func (s *WorkingSetStore) Add(entry models.ScheduleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	return s.persist(append(entries, entry))
}

// Remove drops every entry whose catalog ID equals the given value. Entries
// without a catalog ID are never matched.
func (s *WorkingSetStore) Remove(catalogID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := make([]models.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.CatalogID != "" && e.CatalogID == catalogID {
			continue
		}
		kept = append(kept, e)
	}
	return s.persist(kept)
}

func (s *WorkingSetStore) load() ([]models.ScheduleEntry, error) {
	raw, ok, err := s.kv.Get(workingSetNamespace, workingSetKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.ScheduleEntry{}, nil
	}

	var entries []models.ScheduleEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Malformed stored data is treated as empty, not surfaced.
		zap.L().Warn("working set blob unreadable, treating as empty", zap.Error(err))
		return []models.ScheduleEntry{}, nil
	}
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	return entries, nil
}

func (s *WorkingSetStore) persist(entries []models.ScheduleEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(workingSetNamespace, workingSetKey, string(data))
}

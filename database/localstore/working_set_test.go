package localstore

import (
	"reflect"
	"testing"

	"sprout/models"
)

func entry(subject, catalogID string) models.ScheduleEntry {
	return models.ScheduleEntry{
		DayIndex:    1,
		StartHour:   9,
		EndHour:     10,
		SubjectName: subject,
		CatalogID:   catalogID,
	}
}

func TestWorkingSetLoadEmpty(t *testing.T) {
	store := NewWorkingSetStore(newMemoryKV())

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries == nil {
		t.Fatal("Load returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Fatalf("Load returned %d entries, want 0", len(entries))
	}
}

func TestWorkingSetAddRemoveSequence(t *testing.T) {
	store := NewWorkingSetStore(newMemoryKV())

	a := entry("자료구조", "cat-a")
	b := entry("운영체제", "cat-b")
	c := entry("직접입력 과목", "") // no catalog reference
	d := entry("알고리즘", "cat-a")  // same catalog entry as a

	for _, e := range []models.ScheduleEntry{a, b, c, d} {
		if err := store.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	// Removing cat-a drops a and d, keeps b and the manual entry.
	if err := store.Remove("cat-a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []models.ScheduleEntry{b, c}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Load = %+v, want %+v", entries, want)
	}
}

func TestWorkingSetRemoveNeverMatchesManualEntries(t *testing.T) {
	store := NewWorkingSetStore(newMemoryKV())

	manual := entry("직접입력 과목", "")
	if err := store.Add(manual); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// An empty catalog ID must not match entries that have no catalog ID.
	if err := store.Remove(""); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("manual entry was removed; got %d entries, want 1", len(entries))
	}
}

func TestWorkingSetRemoveUnknownIDIsNoop(t *testing.T) {
	store := NewWorkingSetStore(newMemoryKV())

	a := entry("자료구조", "cat-a")
	if err := store.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Remove("no-such-id"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
}

func TestWorkingSetSaveReplacesPriorContent(t *testing.T) {
	store := NewWorkingSetStore(newMemoryKV())

	if err := store.Add(entry("자료구조", "cat-a")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	replacement := []models.ScheduleEntry{entry("운영체제", "cat-b")}
	if err := store.Save(replacement); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(entries, replacement) {
		t.Errorf("Load = %+v, want %+v", entries, replacement)
	}
}

func TestWorkingSetClear(t *testing.T) {
	store := NewWorkingSetStore(newMemoryKV())

	if err := store.Add(entry("자료구조", "cat-a")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries after Clear, want 0", len(entries))
	}
}

func TestWorkingSetCorruptBlobTreatedAsEmpty(t *testing.T) {
	kv := newMemoryKV()
	if err := kv.Set("current_timetable", "schedules", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewWorkingSetStore(kv)
	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load on corrupt blob: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries from corrupt blob, want 0", len(entries))
	}
}

func TestWorkingSetStorageFaultSurfaced(t *testing.T) {
	kv := newMemoryKV()
	kv.fail = true

	store := NewWorkingSetStore(kv)
	if _, err := store.Load(); err == nil {
		t.Error("Load: expected storage fault error")
	}
	if err := store.Add(entry("자료구조", "cat-a")); err == nil {
		t.Error("Add: expected storage fault error")
	}
}

package localstore

import (
	"encoding/json"
	"reflect"
	"testing"

	"sprout/models"
)

func sampleTimetable(name string, entryCount int) models.SavedTimetable {
	entries := make([]models.ScheduleEntry, entryCount)
	for i := range entries {
		entries[i] = entry("과목", "")
		entries[i].DayIndex = i % 5
	}
	return models.NewSavedTimetable(name, "user-1", entries)
}

func TestTimetableSaveAssignsIDAndCount(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	tt := sampleTimetable("2024-2학기 시간표", 3)
	tt.CourseCount = 42 // must be recomputed, never trusted

	saved, err := store.Save(tt)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Error("Save did not assign an ID")
	}
	if saved.CourseCount != 3 {
		t.Errorf("CourseCount = %d, want 3", saved.CourseCount)
	}
}

func TestTimetableSaveKeepsExistingID(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	tt := sampleTimetable("이름", 1)
	tt.ID = "fixed-id"

	saved, err := store.Save(tt)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != "fixed-id" {
		t.Errorf("ID = %q, want fixed-id", saved.ID)
	}
}

func TestTimetableRoundTrip(t *testing.T) {
	for _, count := range []int{0, 1, 4} {
		kv := newMemoryKV()
		store := NewTimetableStore(kv)

		var want []models.SavedTimetable
		for i := 0; i < count; i++ {
			tt := sampleTimetable("시간표", i+1)
			if i%2 == 0 {
				tt.Schedules[0].CatalogID = "cat-1" // optional field set
			}
			saved, err := store.Save(tt)
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			want = append(want, saved)
		}

		// Re-open over the same blob to force a fresh deserialization.
		reopened := NewTimetableStore(kv)
		got, err := reopened.ListAll()
		if err != nil {
			t.Fatalf("ListAll: %v", err)
		}
		if count == 0 {
			if len(got) != 0 {
				t.Fatalf("ListAll = %d records, want 0", len(got))
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip mismatch (%d records):\ngot  %+v\nwant %+v", count, got, want)
		}
	}
}

func TestTimetableGet(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	saved, err := store.Save(sampleTimetable("이름", 2))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := store.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("Get did not find the saved record")
	}
	if !reflect.DeepEqual(got, saved) {
		t.Errorf("Get = %+v, want %+v", got, saved)
	}

	if _, found, err := store.Get("missing"); err != nil || found {
		t.Errorf("Get(missing) = found=%v err=%v, want found=false err=nil", found, err)
	}
}

func TestTimetableDeleteMissing(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	if _, err := store.Save(sampleTimetable("이름", 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	deleted, err := store.Delete("missing")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Error("Delete(missing) = true, want false")
	}

	all, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("collection changed by failed delete: %d records, want 1", len(all))
	}
}

func TestTimetableRename(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	saved, err := store.Save(sampleTimetable("처음 이름", 1))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated, err := store.Rename(saved.ID, "바꾼 이름")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if !updated {
		t.Fatal("Rename = false, want true")
	}

	got, _, err := store.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "바꾼 이름" {
		t.Errorf("Name = %q, want 바꾼 이름", got.Name)
	}

	if updated, err := store.Rename("missing", "이름"); err != nil || updated {
		t.Errorf("Rename(missing) = %v err=%v, want false err=nil", updated, err)
	}
}

func TestTimetableActivePointerIndependent(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	// SetActive succeeds with no record collection at all.
	if err := store.SetActive("ghost-id"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	id, set, err := store.GetActive()
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if !set || id != "ghost-id" {
		t.Errorf("GetActive = (%q, %v), want (ghost-id, true)", id, set)
	}
}

func TestTimetableEndToEnd(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	saved, err := store.Save(sampleTimetable("Fall-2024", 3))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("generated ID is empty")
	}

	all, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 || all[0].CourseCount != 3 {
		t.Fatalf("ListAll = %+v, want one record with CourseCount 3", all)
	}

	if err := store.SetActive(saved.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if id, _, _ := store.GetActive(); id != saved.ID {
		t.Fatalf("GetActive = %q, want %q", id, saved.ID)
	}

	deleted, err := store.Delete(saved.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("Delete = false, want true")
	}

	all, err = store.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("ListAll after delete = %d records, want 0", len(all))
	}

	// The pointer dangles on purpose; deletion does not cascade into it.
	id, set, err := store.GetActive()
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if !set || id != saved.ID {
		t.Errorf("GetActive after delete = (%q, %v), want dangling %q", id, set, saved.ID)
	}
}

func TestTimetableClearAll(t *testing.T) {
	store := NewTimetableStore(newMemoryKV())

	saved, err := store.Save(sampleTimetable("이름", 1))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.SetActive(saved.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	all, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("ListAll after ClearAll = %d records, want 0", len(all))
	}
	if _, set, _ := store.GetActive(); set {
		t.Error("active pointer survived ClearAll")
	}
}

func TestTimetableCorruptBlobTreatedAsEmpty(t *testing.T) {
	kv := newMemoryKV()
	if err := kv.Set("saved_timetables", "timetables", "[broken"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewTimetableStore(kv)
	all, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll on corrupt blob: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("ListAll = %d records from corrupt blob, want 0", len(all))
	}
}

func TestTimetableBlobIsJSONArray(t *testing.T) {
	kv := newMemoryKV()
	store := NewTimetableStore(kv)

	if _, err := store.Save(sampleTimetable("이름", 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, ok, err := kv.Get("saved_timetables", "timetables")
	if err != nil || !ok {
		t.Fatalf("blob missing: ok=%v err=%v", ok, err)
	}
	var decoded []models.SavedTimetable
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("blob is not a JSON array of records: %v", err)
	}
}

package models

import "testing"

func TestBannerVisibleAt(t *testing.T) {
	now := int64(1_700_000_000_000)

	base := Banner{
		Active:           true,
		TargetDepartment: "ALL",
	}

	if !base.VisibleAt(now, "IT학부") {
		t.Error("active ALL banner should be visible")
	}

	b := base
	b.Active = false
	if b.VisibleAt(now, "IT학부") {
		t.Error("inactive banner should be hidden")
	}

	b = base
	b.StartDate = now + 1
	if b.VisibleAt(now, "IT학부") {
		t.Error("banner before start date should be hidden")
	}

	b = base
	b.EndDate = now - 1
	if b.VisibleAt(now, "IT학부") {
		t.Error("banner past end date should be hidden")
	}

	b = base
	b.StartDate, b.EndDate = 0, 0
	if !b.VisibleAt(now, "IT학부") {
		t.Error("zero date bounds should mean no restriction")
	}

	b = base
	b.TargetDepartment = "경찰행정학부"
	if b.VisibleAt(now, "IT학부") {
		t.Error("banner for another department should be hidden")
	}
	if !b.VisibleAt(now, "경찰행정학부") {
		t.Error("banner for the matching department should be visible")
	}
}

package banner

import (
	"context"
	"errors"
	"testing"
	"time"

	"sprout/models"
)

type mockBannerRepo struct {
	banners []models.Banner
	err     error
}

func (m *mockBannerRepo) List(ctx context.Context) ([]models.Banner, error) {
	return m.banners, m.err
}

func fixedNow() time.Time {
	return time.UnixMilli(1_700_000_000_000)
}

func TestVisibleBannersFiltersByWindowAndDepartment(t *testing.T) {
	now := fixedNow().UnixMilli()
	repo := &mockBannerRepo{
		banners: []models.Banner{
			{ID: "all", Active: true, TargetDepartment: "ALL"},
			{ID: "it-only", Active: true, TargetDepartment: "IT학부"},
			{ID: "police-only", Active: true, TargetDepartment: "경찰행정학부"},
			{ID: "expired", Active: true, TargetDepartment: "ALL", EndDate: now - 1},
			{ID: "upcoming", Active: true, TargetDepartment: "ALL", StartDate: now + 1},
			{ID: "inactive", Active: false, TargetDepartment: "ALL"},
		},
	}
	svc := &DefaultBannerService{Repo: repo, Now: fixedNow}

	visible, err := svc.VisibleBanners(context.Background(), "IT학부")
	if err != nil {
		t.Fatalf("VisibleBanners: %v", err)
	}

	got := make([]string, len(visible))
	for i, b := range visible {
		got[i] = b.ID
	}
	want := []string{"all", "it-only"}
	if len(got) != len(want) {
		t.Fatalf("VisibleBanners = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("VisibleBanners = %v, want %v", got, want)
		}
	}
}

func TestVisibleBannersEmptyIsNotNil(t *testing.T) {
	svc := &DefaultBannerService{Repo: &mockBannerRepo{}, Now: fixedNow}

	visible, err := svc.VisibleBanners(context.Background(), "IT학부")
	if err != nil {
		t.Fatalf("VisibleBanners: %v", err)
	}
	if visible == nil {
		t.Error("VisibleBanners returned nil, want empty slice")
	}
}

func TestVisibleBannersPropagatesRepoError(t *testing.T) {
	wantErr := errors.New("firestore unavailable")
	svc := &DefaultBannerService{Repo: &mockBannerRepo{err: wantErr}, Now: fixedNow}

	if _, err := svc.VisibleBanners(context.Background(), "IT학부"); !errors.Is(err, wantErr) {
		t.Errorf("VisibleBanners error = %v, want %v", err, wantErr)
	}
}

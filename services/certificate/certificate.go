// File: services/certificate/certificate.go
package certificate

import (
	"context"

	certificateRepo "sprout/database/repository/certificate"
	"sprout/models"
)

// CertificateService exposes the certificate board and per-user bookmarks.
type CertificateService interface {
	Board(ctx context.Context, department string) ([]models.Certificate, error)
	Bookmarks(ctx context.Context, userID string) ([]models.Certificate, error)
	ToggleBookmark(ctx context.Context, certID, userID string) (bool, error)
	RecordView(ctx context.Context, certID string) error
}

// DefaultCertificateService is the production implementation.
type DefaultCertificateService struct {
	Repo certificateRepo.CertificateRepository
}

// Board lists postings, most-bookmarked first, optionally for one department.
func (s *DefaultCertificateService) Board(ctx context.Context, department string) ([]models.Certificate, error) {
	return s.Repo.List(ctx, department)
}

// Bookmarks lists the user's bookmarked postings.
func (s *DefaultCertificateService) Bookmarks(ctx context.Context, userID string) ([]models.Certificate, error) {
	return s.Repo.ListBookmarked(ctx, userID)
}

// ToggleBookmark flips the user's bookmark and returns the new state.
func (s *DefaultCertificateService) ToggleBookmark(ctx context.Context, certID, userID string) (bool, error) {
	return s.Repo.ToggleBookmark(ctx, certID, userID)
}

// RecordView bumps a posting's view counter.
func (s *DefaultCertificateService) RecordView(ctx context.Context, certID string) error {
	return s.Repo.IncrementViewCount(ctx, certID)
}

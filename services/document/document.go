// File: services/document/document.go
package document

import (
	"context"

	documentRepo "sprout/database/repository/document"
	"sprout/models"
)

// DocumentService lists document folders and their files for browsing.
type DocumentService interface {
	Folders(ctx context.Context) ([]models.DocumentFolder, error)
	Files(ctx context.Context, folderID string) ([]models.DocumentFile, error)
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo documentRepo.DocumentRepository
}

// Folders returns every folder in catalog order.
func (s *DefaultDocumentService) Folders(ctx context.Context) ([]models.DocumentFolder, error) {
	return s.Repo.Folders(ctx)
}

// Files returns a folder's files in catalog order.
func (s *DefaultDocumentService) Files(ctx context.Context, folderID string) ([]models.DocumentFile, error) {
	return s.Repo.Files(ctx, folderID)
}

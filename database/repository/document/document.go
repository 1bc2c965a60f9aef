// File: database/repository/document/document.go
package documentRepo

import (
	"context"
	"fmt"

	"sprout/models"
	"sprout/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// DocumentRepository lists downloadable document folders and their files.
type DocumentRepository interface {
	Folders(ctx context.Context) ([]models.DocumentFolder, error)
	Files(ctx context.Context, folderID string) ([]models.DocumentFile, error)
}

type firestoreDocumentRepo struct {
	client *firestore.Client
}

// NewFirestoreDocumentRepo returns a DocumentRepository backed by Firestore.
func NewFirestoreDocumentRepo() DocumentRepository {
	return &firestoreDocumentRepo{client: utils.GetFirestoreClient()}
}

// Folders returns every document folder, ordered by the catalog's order field.
func (r *firestoreDocumentRepo) Folders(ctx context.Context) ([]models.DocumentFolder, error) {
	iter := r.client.Collection("document_folders").
		OrderBy("order", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	folders := []models.DocumentFolder{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate folders: %w", err)
		}

		var folder models.DocumentFolder
		if err := snap.DataTo(&folder); err != nil {
			return nil, fmt.Errorf("decode folder %s: %w", snap.Ref.ID, err)
		}
		folder.ID = snap.Ref.ID
		folders = append(folders, folder)
	}
	return folders, nil
}

// Files returns the files inside a folder, ordered by the catalog's order field.
func (r *firestoreDocumentRepo) Files(ctx context.Context, folderID string) ([]models.DocumentFile, error) {
	iter := r.client.Collection("document_folders").Doc(folderID).
		Collection("files").
		OrderBy("order", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	files := []models.DocumentFile{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate files of %s: %w", folderID, err)
		}

		var file models.DocumentFile
		if err := snap.DataTo(&file); err != nil {
			return nil, fmt.Errorf("decode file %s: %w", snap.Ref.ID, err)
		}
		file.ID = snap.Ref.ID
		files = append(files, file)
	}
	return files, nil
}

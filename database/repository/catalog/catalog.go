// File: database/repository/catalog/catalog.go
package catalogRepo

import (
	"context"
	"fmt"

	"sprout/models"
	"sprout/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CatalogRepository supplies recommendation candidates from the remote
// graduation-requirements catalog.
type CatalogRepository interface {
	GetRecommendedCourses(ctx context.Context, department, cohort string) ([]models.RecommendedCourse, error)
}

type firestoreCatalogRepo struct {
	client *firestore.Client
}

// NewFirestoreCatalogRepo returns a CatalogRepository backed by Firestore.
func NewFirestoreCatalogRepo() CatalogRepository {
	return &firestoreCatalogRepo{client: utils.GetFirestoreClient()}
}

// requirementsDoc mirrors the catalog document for one department and cohort.
type requirementsDoc struct {
	RecommendedCourses []models.RecommendedCourse `firestore:"recommendedCourses"`
}

// GetRecommendedCourses reads the catalog document for the given department
// and entry cohort. A missing document yields an empty list, not an error.
func (r *firestoreCatalogRepo) GetRecommendedCourses(ctx context.Context, department, cohort string) ([]models.RecommendedCourse, error) {
	docID := fmt.Sprintf("%s_%s", department, cohort)
	snap, err := r.client.Collection("graduation_requirements").Doc(docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return []models.RecommendedCourse{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get requirements doc %s: %w", docID, err)
	}

	var doc requirementsDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode requirements doc %s: %w", docID, err)
	}
	if doc.RecommendedCourses == nil {
		return []models.RecommendedCourse{}, nil
	}
	return doc.RecommendedCourses, nil
}

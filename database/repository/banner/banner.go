// File: database/repository/banner/banner.go
package bannerRepo

import (
	"context"
	"fmt"

	"sprout/models"
	"sprout/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// BannerRepository lists home-screen banners from the remote store.
type BannerRepository interface {
	List(ctx context.Context) ([]models.Banner, error)
}

type firestoreBannerRepo struct {
	client *firestore.Client
}

// NewFirestoreBannerRepo returns a BannerRepository backed by Firestore.
func NewFirestoreBannerRepo() BannerRepository {
	return &firestoreBannerRepo{client: utils.GetFirestoreClient()}
}

// List returns all banners ordered by priority (lowest first). Visibility
// filtering happens in the service layer.
func (r *firestoreBannerRepo) List(ctx context.Context) ([]models.Banner, error) {
	iter := r.client.Collection("banners").
		OrderBy("priority", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	banners := []models.Banner{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate banners: %w", err)
		}

		var banner models.Banner
		if err := snap.DataTo(&banner); err != nil {
			return nil, fmt.Errorf("decode banner %s: %w", snap.Ref.ID, err)
		}
		banner.ID = snap.Ref.ID
		banners = append(banners, banner)
	}
	return banners, nil
}

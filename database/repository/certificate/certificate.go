// File: database/repository/certificate/certificate.go
package certificateRepo

import (
	"context"
	"fmt"

	"sprout/models"
	"sprout/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// CertificateRepository exposes the certificate board and per-user bookmarks.
type CertificateRepository interface {
	List(ctx context.Context, department string) ([]models.Certificate, error)
	ListBookmarked(ctx context.Context, userID string) ([]models.Certificate, error)
	ToggleBookmark(ctx context.Context, certID, userID string) (bool, error)
	IncrementViewCount(ctx context.Context, certID string) error
}

type firestoreCertificateRepo struct {
	client *firestore.Client
}

// NewFirestoreCertificateRepo returns a CertificateRepository backed by Firestore.
func NewFirestoreCertificateRepo() CertificateRepository {
	return &firestoreCertificateRepo{client: utils.GetFirestoreClient()}
}

func (r *firestoreCertificateRepo) coll() *firestore.CollectionRef {
	return r.client.Collection("certificates")
}

// List returns board postings ordered by bookmark count, optionally filtered
// to one department.
func (r *firestoreCertificateRepo) List(ctx context.Context, department string) ([]models.Certificate, error) {
	query := r.coll().OrderBy("bookmarkCount", firestore.Desc)
	if department != "" {
		query = r.coll().Where("department", "==", department).OrderBy("bookmarkCount", firestore.Desc)
	}
	return collectCertificates(query.Documents(ctx))
}

// ListBookmarked returns the certificates the given user has bookmarked.
func (r *firestoreCertificateRepo) ListBookmarked(ctx context.Context, userID string) ([]models.Certificate, error) {
	query := r.coll().Where("bookmarks."+userID, "==", true)
	return collectCertificates(query.Documents(ctx))
}

// ToggleBookmark flips the user's bookmark on a certificate inside a
// transaction, keeping bookmarkCount in step with the bookmark map. Returns
// whether the certificate is bookmarked after the call.
func (r *firestoreCertificateRepo) ToggleBookmark(ctx context.Context, certID, userID string) (bool, error) {
	docRef := r.coll().Doc(certID)

	var bookmarked bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var cert models.Certificate
		if err := snap.DataTo(&cert); err != nil {
			return err
		}

		bookmarks := cert.Bookmarks
		if bookmarks == nil {
			bookmarks = map[string]bool{}
		}

		delta := int64(1)
		if bookmarks[userID] {
			delete(bookmarks, userID)
			delta = -1
			bookmarked = false
		} else {
			bookmarks[userID] = true
			bookmarked = true
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "bookmarks", Value: bookmarks},
			{Path: "bookmarkCount", Value: firestore.Increment(delta)},
		})
	})
	if err != nil {
		return false, fmt.Errorf("toggle bookmark %s: %w", certID, err)
	}
	return bookmarked, nil
}

// IncrementViewCount bumps the posting's view counter.
func (r *firestoreCertificateRepo) IncrementViewCount(ctx context.Context, certID string) error {
	_, err := r.coll().Doc(certID).Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("increment view count %s: %w", certID, err)
	}
	return nil
}

func collectCertificates(iter *firestore.DocumentIterator) ([]models.Certificate, error) {
	defer iter.Stop()

	certs := []models.Certificate{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate certificates: %w", err)
		}

		var cert models.Certificate
		if err := snap.DataTo(&cert); err != nil {
			return nil, fmt.Errorf("decode certificate %s: %w", snap.Ref.ID, err)
		}
		cert.ID = snap.Ref.ID
		certs = append(certs, cert)
	}
	return certs, nil
}

// File: models/certificate.go
package models

// Certificate is one posting on the certificate board.
type Certificate struct {
	ID         string `json:"id" firestore:"-"`
	Title      string `json:"title" firestore:"title"`
	Issuer     string `json:"issuer" firestore:"issuer"`
	DDay       string `json:"dDay" firestore:"dDay"` // e.g. "D-10", "접수중"
	ViewCount  int    `json:"viewCount" firestore:"viewCount"`
	Department string `json:"department" firestore:"department"` // "IT학부", "경찰행정학부", ...

	// Bookmarks maps user IDs to true; BookmarkCount is kept in step by the
	// bookmark transaction.
	Bookmarks     map[string]bool `json:"-" firestore:"bookmarks"`
	BookmarkCount int             `json:"bookmarkCount" firestore:"bookmarkCount"`
}

// BookmarkedBy reports whether the given user has bookmarked this certificate.
func (c Certificate) BookmarkedBy(userID string) bool {
	return c.Bookmarks[userID]
}

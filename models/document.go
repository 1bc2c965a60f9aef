// File: models/document.go
package models

// DocumentFolder groups downloadable files on the documents screen.
type DocumentFolder struct {
	ID       string `json:"id" firestore:"-"`
	Name     string `json:"name" firestore:"name"`
	Category string `json:"category" firestore:"category"` // major, education, general
	Order    int    `json:"order" firestore:"order"`
}

// DocumentFile is one downloadable file inside a folder.
type DocumentFile struct {
	ID    string `json:"id" firestore:"-"`
	Name  string `json:"name" firestore:"name"`
	URL   string `json:"url" firestore:"url"`
	Order int    `json:"order" firestore:"order"`
}

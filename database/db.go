package database

import (
	"database/sql"
	"log"

	"sprout/config"

	_ "github.com/mattn/go-sqlite3"
)

// LocalDB is the handle to the on-device sqlite store backing the blob layer.
var LocalDB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS blobs (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

// InitLocalDB opens the local sqlite store and ensures the schema exists.
func InitLocalDB() {
	db, err := sql.Open("sqlite3", config.AppConfig.LocalDBPath)
	if err != nil {
		log.Fatalf("failed to open local store: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("failed to init local store schema: %v", err)
	}
	LocalDB = db
	log.Println("Local store ready")
}

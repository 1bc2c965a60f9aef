// File: database/localstore/kv.go
package localstore

import (
	"database/sql"
	"errors"
	"fmt"
)

// KV is the namespace/key addressed text-blob store the timetable stores
// persist into. Values are opaque serialized snapshots; the layer below never
// inspects them.
type KV interface {
	Get(namespace, key string) (string, bool, error)
	Set(namespace, key, value string) error
	Delete(namespace, key string) error
	Clear(namespace string) error
}

type sqliteKV struct {
	db *sql.DB
}

// NewSQLiteKV returns a KV backed by the given sqlite handle.
func NewSQLiteKV(db *sql.DB) KV {
	return &sqliteKV{db: db}
}

func (s *sqliteKV) Get(namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM blobs WHERE namespace = ? AND key = ?",
		namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob: %w", err)
	}
	return value, true, nil
}

func (s *sqliteKV) Set(namespace, key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO blobs (namespace, key, value) VALUES (?, ?, ?) "+
			"ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value",
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("set blob: %w", err)
	}
	return nil
}

func (s *sqliteKV) Delete(namespace, key string) error {
	_, err := s.db.Exec(
		"DELETE FROM blobs WHERE namespace = ? AND key = ?",
		namespace, key,
	)
	if err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

func (s *sqliteKV) Clear(namespace string) error {
	_, err := s.db.Exec("DELETE FROM blobs WHERE namespace = ?", namespace)
	if err != nil {
		return fmt.Errorf("clear namespace: %w", err)
	}
	return nil
}

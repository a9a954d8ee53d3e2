package index

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PutRender stores rendered body HTML for a document at a given content
// checksum, replacing any previous render.
func (db *DB) PutRender(path, checksum, html string) error {
	_, err := db.conn.Exec(`
		INSERT INTO renders (path, checksum, html, rendered_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			checksum    = excluded.checksum,
			html        = excluded.html,
			rendered_at = excluded.rendered_at
	`, path, checksum, html, time.Now())
	if err != nil {
		return fmt.Errorf("index: put render: %w", err)
	}
	return nil
}

// GetRender returns the cached render for a document. A cache miss returns
// ok=false with no error.
func (db *DB) GetRender(path string) (checksum, html string, ok bool, err error) {
	err = db.conn.QueryRow(`SELECT checksum, html FROM renders WHERE path = ?`, path).
		Scan(&checksum, &html)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, fmt.Errorf("index: get render: %w", err)
	}
	return checksum, html, true, nil
}

// DeleteRender drops the cached render for a document, if any.
func (db *DB) DeleteRender(path string) error {
	if _, err := db.conn.Exec(`DELETE FROM renders WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete render: %w", err)
	}
	return nil
}

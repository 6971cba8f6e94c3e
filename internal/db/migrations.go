package db

import "fmt"

// migrate creates the blocks table. Existing rows are never modified.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS blocks (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			block_date  DATE NOT NULL,
			start_time  TEXT NOT NULL,
			end_time    TEXT NOT NULL,
			color       TEXT DEFAULT '',
			completed   INTEGER NOT NULL DEFAULT 0,
			category    TEXT DEFAULT 'other'
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_date ON blocks(block_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating blocks table: %w", err)
	}

	return nil
}

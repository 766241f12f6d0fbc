package database

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS columns (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		column_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		thumbnail TEXT NOT NULL DEFAULT '',
		scheduled_date TEXT NOT NULL DEFAULT '',
		scheduled_time TEXT NOT NULL DEFAULT '',
		assignee_name TEXT NOT NULL DEFAULT '',
		assignee_avatar TEXT NOT NULL DEFAULT '',
		comments INTEGER NOT NULL DEFAULT 0 CHECK (comments >= 0),
		status TEXT NOT NULL,
		content_type TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS item_platforms (
		item_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		platform TEXT NOT NULL,
		PRIMARY KEY (item_id, position),
		FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_column ON items(column_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_items_date ON items(scheduled_date)`,
}

// runMigrations creates the snapshot schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// snapshotTables are deleted in this order so no row outlives its parent
var snapshotTables = []string{"item_platforms", "items", "columns"}

// withTx runs fn inside one transaction so a snapshot is written whole or not
// at all. Errors are prefixed with op.
func withTx(ctx context.Context, db *sql.DB, op string, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to roll back snapshot", "op", op, "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}
	return nil
}

// clearSnapshot deletes every saved column, item and platform row
func clearSnapshot(ctx context.Context, tx *sql.Tx) error {
	for _, table := range snapshotTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

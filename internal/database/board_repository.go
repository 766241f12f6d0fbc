package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/plano/internal/models"
)

// BoardReader loads the saved board
type BoardReader interface {
	LoadBoard(ctx context.Context) (models.Board, error)
}

// BoardWriter replaces or clears the saved board
type BoardWriter interface {
	SaveBoard(ctx context.Context, b models.Board) error
	ClearBoard(ctx context.Context) error
}

// BoardRepository combines all board snapshot operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}

// BoardRepo stores the working board as a relational snapshot.
type BoardRepo struct {
	db *sql.DB
}

// NewBoardRepo creates a BoardRepo over an initialized database
func NewBoardRepo(db *sql.DB) *BoardRepo {
	return &BoardRepo{db: db}
}

// LoadBoard reads the saved board, returning ErrNoSnapshot when nothing has
// been saved yet
func (r *BoardRepo) LoadBoard(ctx context.Context) (models.Board, error) {
	columns, err := r.loadColumns(ctx)
	if err != nil {
		return models.Board{}, err
	}
	if len(columns) == 0 {
		return models.Board{}, ErrNoSnapshot
	}

	platforms, err := r.loadPlatforms(ctx)
	if err != nil {
		return models.Board{}, err
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col.ID] = i
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, column_id, title, description, thumbnail, scheduled_date,
		       scheduled_time, assignee_name, assignee_avatar, comments, status,
		       content_type
		FROM items
		ORDER BY column_id, position`)
	if err != nil {
		return models.Board{}, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.ContentItem
		var columnID string
		if err := rows.Scan(
			&item.ID, &columnID, &item.Title, &item.Description, &item.Thumbnail,
			&item.ScheduledDate, &item.ScheduledTime, &item.Assignee.Name,
			&item.Assignee.Avatar, &item.Comments, &item.Status, &item.ContentType,
		); err != nil {
			return models.Board{}, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Platforms = platforms[item.ID]

		ci, ok := index[columnID]
		if !ok {
			return models.Board{}, fmt.Errorf("item %q references column %q: %w", item.ID, columnID, models.ErrColumnNotFound)
		}
		columns[ci].Items = append(columns[ci].Items, item)
	}
	if err := rows.Err(); err != nil {
		return models.Board{}, fmt.Errorf("failed to iterate items: %w", err)
	}

	return models.Board{Columns: columns}, nil
}

func (r *BoardRepo) loadColumns(ctx context.Context) ([]models.Column, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title FROM columns ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		col := models.Column{Items: []models.ContentItem{}}
		if err := rows.Scan(&col.ID, &col.Title); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func (r *BoardRepo) loadPlatforms(ctx context.Context) (map[string][]models.Platform, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_id, platform FROM item_platforms ORDER BY item_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query platforms: %w", err)
	}
	defer rows.Close()

	platforms := make(map[string][]models.Platform)
	for rows.Next() {
		var itemID string
		var p models.Platform
		if err := rows.Scan(&itemID, &p); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms[itemID] = append(platforms[itemID], p)
	}
	return platforms, rows.Err()
}

// SaveBoard replaces the saved snapshot with b in a single transaction
func (r *BoardRepo) SaveBoard(ctx context.Context, b models.Board) error {
	return withTx(ctx, r.db, "save board", func(tx *sql.Tx) error {
		if err := clearSnapshot(ctx, tx); err != nil {
			return err
		}

		for cp, col := range b.Columns {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO columns (id, title, position) VALUES (?, ?, ?)`,
				col.ID, col.Title, cp,
			); err != nil {
				return fmt.Errorf("failed to insert column %q: %w", col.ID, err)
			}

			for ip, item := range col.Items {
				if err := insertItem(ctx, tx, col.ID, ip, item); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ClearBoard removes the saved snapshot
func (r *BoardRepo) ClearBoard(ctx context.Context) error {
	return withTx(ctx, r.db, "clear board", func(tx *sql.Tx) error {
		return clearSnapshot(ctx, tx)
	})
}

func insertItem(ctx context.Context, tx *sql.Tx, columnID string, position int, item models.ContentItem) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO items (
			id, column_id, position, title, description, thumbnail,
			scheduled_date, scheduled_time, assignee_name, assignee_avatar,
			comments, status, content_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, columnID, position, item.Title, item.Description, item.Thumbnail,
		item.ScheduledDate, item.ScheduledTime, item.Assignee.Name, item.Assignee.Avatar,
		item.Comments, string(item.Status), item.ContentType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item %q: %w", item.ID, err)
	}

	for i, p := range item.Platforms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_platforms (item_id, position, platform) VALUES (?, ?, ?)`,
			item.ID, i, string(p),
		); err != nil {
			return fmt.Errorf("failed to insert platform %q for item %q: %w", p, item.ID, err)
		}
	}
	return nil
}

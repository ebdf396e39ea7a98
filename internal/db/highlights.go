package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// GetHighlights returns the manual highlights for a writing sample in saved order.
func (db *DB) GetHighlights(ctx context.Context, writingID string) ([]types.Highlight, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT text, color, tooltip FROM writing_highlights
		 WHERE writing_id = $1 ORDER BY position`,
		writingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query highlights: %w", err)
	}
	defer rows.Close()

	highlights := []types.Highlight{}
	for rows.Next() {
		var h types.Highlight
		if err := rows.Scan(&h.Text, &h.Color, &h.Tooltip); err != nil {
			return nil, fmt.Errorf("failed to scan highlight: %w", err)
		}
		highlights = append(highlights, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating highlights: %w", err)
	}
	return highlights, nil
}

// PutHighlights replaces every highlight for a writing sample in one transaction.
func (db *DB) PutHighlights(ctx context.Context, writingID string, highlights []types.Highlight) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM writing_highlights WHERE writing_id = $1`, writingID); err != nil {
		return fmt.Errorf("failed to clear highlights: %w", err)
	}

	if len(highlights) > 0 {
		rows := make([][]any, len(highlights))
		for i, h := range highlights {
			rows[i] = []any{writingID, i, h.Text, h.Color, h.Tooltip}
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"writing_highlights"},
			[]string{"writing_id", "position", "text", "color", "tooltip"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("failed to insert highlights: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit highlights: %w", err)
	}
	return nil
}

// HighlightStore adapts DB to the highlights.Store interface
type HighlightStore struct {
	db *DB
}

// Highlights returns a highlight store backed by this database.
func (db *DB) Highlights() *HighlightStore {
	return &HighlightStore{db: db}
}

func (s *HighlightStore) Get(ctx context.Context, writingID string) ([]types.Highlight, error) {
	return s.db.GetHighlights(ctx, writingID)
}

func (s *HighlightStore) Put(ctx context.Context, writingID string, highlights []types.Highlight) error {
	return s.db.PutHighlights(ctx, writingID, highlights)
}

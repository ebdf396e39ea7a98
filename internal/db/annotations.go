package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// SaveAnnotation archives a rendered annotation for its writing sample.
func (db *DB) SaveAnnotation(ctx context.Context, ann *types.AnnotateResponse) error {
	spans, err := json.Marshal(ann.Spans)
	if err != nil {
		return fmt.Errorf("failed to marshal spans: %w", err)
	}
	criteria, err := json.Marshal(ann.Criteria)
	if err != nil {
		return fmt.Errorf("failed to marshal criteria reports: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO writing_annotations (id, writing_id, html, spans, criteria, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ann.ID, ann.WritingID, ann.HTML, spans, criteria, ann.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save annotation: %w", err)
	}
	return nil
}

// GetAnnotation returns the latest annotation saved for a writing sample, or nil if none.
func (db *DB) GetAnnotation(ctx context.Context, writingID string) (*types.AnnotateResponse, error) {
	var ann types.AnnotateResponse
	var spans, criteria []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, writing_id, html, spans, criteria, created_at
		 FROM writing_annotations WHERE writing_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		writingID,
	).Scan(&ann.ID, &ann.WritingID, &ann.HTML, &spans, &criteria, &ann.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get annotation: %w", err)
	}

	if err := json.Unmarshal(spans, &ann.Spans); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spans: %w", err)
	}
	if err := json.Unmarshal(criteria, &ann.Criteria); err != nil {
		return nil, fmt.Errorf("failed to unmarshal criteria reports: %w", err)
	}
	return &ann, nil
}

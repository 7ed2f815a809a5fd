package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sheetwise/internal/worksheet"
)

// ErrNotFound is returned when a worksheet id has no stored snapshot.
var ErrNotFound = errors.New("worksheet not found")

// WorksheetSummary is the listing view of a stored worksheet.
type WorksheetSummary struct {
	ID               string
	Title            string
	Topic            string
	EducationalLevel string
	SavedAt          time.Time
}

// WorksheetRepo stores whole-document snapshots keyed by id. There are
// no partial updates: Save always replaces the full snapshot.
type WorksheetRepo interface {
	// Save upserts the document. A document without an id gets one.
	Save(ctx context.Context, doc *worksheet.Document) error

	// Get loads the snapshot for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*worksheet.Document, error)

	// List returns summaries, most recently saved first.
	List(ctx context.Context, limit int) ([]WorksheetSummary, error)

	// Delete removes the snapshot and its attempt history.
	Delete(ctx context.Context, id string) error
}

type worksheetRepo struct {
	db *sql.DB
}

func (r *worksheetRepo) Save(ctx context.Context, doc *worksheet.Document) error {
	if doc.ID == "" {
		doc.ID = worksheet.NewID()
	}
	doc.SavedAt = time.Now().UTC()

	blob, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal worksheet: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO worksheets (id, title, topic, educational_level, saved_at, document)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   title = excluded.title,
		   topic = excluded.topic,
		   educational_level = excluded.educational_level,
		   saved_at = excluded.saved_at,
		   document = excluded.document`,
		doc.ID, doc.Title, doc.Topic, doc.EducationalLevel, doc.SavedAt, string(blob),
	)
	if err != nil {
		return fmt.Errorf("save worksheet: %w", err)
	}
	return nil
}

func (r *worksheetRepo) Get(ctx context.Context, id string) (*worksheet.Document, error) {
	var blob string
	err := r.db.QueryRowContext(ctx,
		`SELECT document FROM worksheets WHERE id = ?`, id,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query worksheet: %w", err)
	}

	var doc worksheet.Document
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal worksheet %s: %w", id, err)
	}
	return &doc, nil
}

func (r *worksheetRepo) List(ctx context.Context, limit int) ([]WorksheetSummary, error) {
	q := `SELECT id, title, topic, educational_level, saved_at
	      FROM worksheets ORDER BY saved_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list worksheets: %w", err)
	}
	defer rows.Close()

	var out []WorksheetSummary
	for rows.Next() {
		var s WorksheetSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Topic, &s.EducationalLevel, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("scan worksheet summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *worksheetRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quiz_attempts WHERE worksheet_id = ?`, id); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM worksheets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete worksheet: %w", err)
	}
	return nil
}

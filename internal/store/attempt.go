package store

import (
	"context"
	"database/sql"
	"fmt"

	"sheetwise/internal/quiz"
)

// AttemptRepo persists quiz attempt records. It satisfies quiz.Recorder
// and enforces the same retention cap the in-memory history uses: only
// the quiz.MaxHistory most recent attempts per worksheet are kept.
type AttemptRepo struct {
	db *sql.DB
}

var _ quiz.Recorder = (*AttemptRepo)(nil)

// AppendAttempt stores one attempt and prunes old records past the cap.
func (r *AttemptRepo) AppendAttempt(ctx context.Context, worksheetID string, a quiz.Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (worksheet_id, score, total, attempted_at) VALUES (?, ?, ?, ?)`,
		worksheetID, a.Score, a.Total, a.At.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`DELETE FROM quiz_attempts WHERE worksheet_id = ? AND id NOT IN (
			SELECT id FROM quiz_attempts WHERE worksheet_id = ?
			ORDER BY attempted_at DESC, id DESC LIMIT ?
		)`,
		worksheetID, worksheetID, quiz.MaxHistory,
	)
	if err != nil {
		return fmt.Errorf("prune attempts: %w", err)
	}
	return nil
}

// Recent returns the retained attempts for a worksheet, most recent
// first.
func (r *AttemptRepo) Recent(ctx context.Context, worksheetID string) ([]quiz.Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT score, total, attempted_at FROM quiz_attempts
		 WHERE worksheet_id = ?
		 ORDER BY attempted_at DESC, id DESC LIMIT ?`,
		worksheetID, quiz.MaxHistory,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []quiz.Attempt
	for rows.Next() {
		var a quiz.Attempt
		if err := rows.Scan(&a.Score, &a.Total, &a.At); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

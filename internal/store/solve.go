package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// solveRepo implements SolveRepo on the solves table.
type solveRepo struct {
	db *sql.DB
}

func (r *solveRepo) SaveSolve(ctx context.Context, rec SolveRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO solves
			(id, timestamp, problem, questions, answers, events, solution, feedback)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		ts.Unix(),
		rec.Problem,
		rec.Questions,
		rec.Answers,
		rec.Events,
		rec.Solution,
		rec.Feedback,
	)
	if err != nil {
		return fmt.Errorf("save solve: %w", err)
	}
	return nil
}

func (r *solveRepo) RecentSolves(ctx context.Context, limit int) ([]SolveRecord, error) {
	query := `
		SELECT id, timestamp, problem, questions, answers, events, solution, feedback
		FROM solves
		ORDER BY timestamp DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	var out []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var ts int64
		if err := rows.Scan(
			&rec.ID, &ts, &rec.Problem, &rec.Questions, &rec.Answers,
			&rec.Events, &rec.Solution, &rec.Feedback,
		); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

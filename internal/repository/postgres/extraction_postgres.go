package postgres

import (
	"context"
	"database/sql"

	"resumeparser/internal/model"
	"resumeparser/internal/repository"
)

// ExtractionPostgres is a PostgreSQL implementation of repository.ExtractionRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ExtractionPostgres struct {
	db *sql.DB
}

// NewExtractionPostgres creates a new ExtractionPostgres repository.
func NewExtractionPostgres(db *sql.DB) *ExtractionPostgres {
	return &ExtractionPostgres{db: db}
}

var _ repository.ExtractionRepository = (*ExtractionPostgres)(nil)

const extractionColumns = `id, request_id, filename, kind, outcome, text_length, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(s scanner) (model.Extraction, error) {
	var e model.Extraction
	err := s.Scan(
		&e.ID,
		&e.RequestID,
		&e.Filename,
		&e.Kind,
		&e.Outcome,
		&e.TextLength,
		&e.DurationMs,
		&e.CreatedAt,
	)
	return e, err
}

// Create inserts a new extraction row and returns the stored record.
func (r *ExtractionPostgres) Create(ctx context.Context, e *model.Extraction) (*model.Extraction, error) {
	const q = `
		INSERT INTO extractions (` + extractionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + extractionColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.RequestID,
		e.Filename,
		string(e.Kind),
		string(e.Outcome),
		e.TextLength,
		e.DurationMs,
		e.CreatedAt,
	)
	out, err := scanExtraction(row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns extractions using LIMIT/OFFSET pagination and a total count.
func (r *ExtractionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Extraction], error) {
	const qCount = `SELECT COUNT(*) FROM extractions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + extractionColumns + `
		FROM extractions
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Extraction, 0)
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Extraction]{
		Items: items,
		Total: total,
	}, nil
}

// Ping verifies the database connection is alive.
func (r *ExtractionPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"resumeparser/internal/model"
)

// ExtractionRepository persists the audit trail of parse requests using SQL queries only.
// No business logic here, only persistence.
type ExtractionRepository interface {
	// Create inserts a new extraction record and returns the stored row.
	Create(ctx context.Context, e *model.Extraction) (*model.Extraction, error)

	// List returns a page of extraction records, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Extraction], error)

	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

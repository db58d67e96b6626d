// Package repo contains the persistence layer for the goal tracker.
// Each store backend implements GoalRepo; the service layer only ever sees the
// interface, so handlers and services are unit-tested with mocks.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/goal-tracker/internal/domain"
)

// GoalRepo defines the persistence operations for Goals.
type GoalRepo interface {
	// List returns every goal in the store's natural (insertion) order.
	// It returns an empty, non-nil slice when no goals exist.
	List(ctx context.Context) ([]domain.Goal, error)

	// Create persists a new goal with the given text and returns it with the
	// store-generated ID. The text is stored exactly as given.
	Create(ctx context.Context, text string) (domain.Goal, error)

	// DeleteByID removes the goal with the given ID. Deleting an ID that does
	// not exist is not an error. An ID the store cannot parse yields
	// domain.ErrInvalidID.
	DeleteByID(ctx context.Context, id string) error
}

// db is the subset of pgx methods used by the Postgres repos.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so integration tests can run each
// case inside a rolled-back transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/goal-tracker/internal/domain"
)

// pgGoalRepo is the Postgres implementation of GoalRepo.
type pgGoalRepo struct {
	db db
}

// NewPgGoalRepo constructs a GoalRepo backed by the provided db connection.
func NewPgGoalRepo(db db) GoalRepo {
	return &pgGoalRepo{db: db}
}

// List returns all goals ordered by insertion position.
func (r *pgGoalRepo) List(ctx context.Context) ([]domain.Goal, error) {
	const q = `
		SELECT id, text
		FROM goals
		ORDER BY position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.GoalRepo.List: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.GoalRepo.List: scan: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.GoalRepo.List: rows: %w", err)
	}
	return goals, nil
}

// Create inserts a goal and returns it with the database-generated UUID.
func (r *pgGoalRepo) Create(ctx context.Context, text string) (domain.Goal, error) {
	const q = `
		INSERT INTO goals (text)
		VALUES (@text)
		RETURNING id, text`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"text": text})
	g, err := scanGoal(row)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("repo.GoalRepo.Create: %w", err)
	}
	return g, nil
}

// DeleteByID removes a goal by UUID. Zero affected rows is still success.
func (r *pgGoalRepo) DeleteByID(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("repo.GoalRepo.DeleteByID: %w: %q", domain.ErrInvalidID, id)
	}

	const q = `DELETE FROM goals WHERE id = @id`
	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": parsed}); err != nil {
		return fmt.Errorf("repo.GoalRepo.DeleteByID: %w", err)
	}
	return nil
}

// scanGoal maps a single database row into a domain.Goal.
func scanGoal(s scanner) (domain.Goal, error) {
	var (
		g  domain.Goal
		id pgtype.UUID
	)
	if err := s.Scan(&id, &g.Text); err != nil {
		return domain.Goal{}, err
	}
	g.ID = uuid.UUID(id.Bytes).String()
	return g, nil
}

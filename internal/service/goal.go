// Package service contains the business logic for the goal tracker.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No store access lives here; services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkordes/goal-tracker/internal/domain"
	"github.com/pkordes/goal-tracker/internal/repo"
)

// GoalService implements business logic for Goal operations.
type GoalService struct {
	goals repo.GoalRepo
}

// NewGoalService constructs a GoalService backed by the provided GoalRepo.
func NewGoalService(goals repo.GoalRepo) *GoalService {
	return &GoalService{goals: goals}
}

// List returns every stored goal. The result is never nil.
func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GoalService.List: %w", err)
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return goals, nil
}

// Create validates text and persists a new goal.
// Text that is blank (see IsBlank) is rejected with
// domain.ErrValidation before the store is touched. The untrimmed text is what
// gets stored and returned.
func (s *GoalService) Create(ctx context.Context, text string) (domain.Goal, error) {
	if IsBlank(text) {
		return domain.Goal{}, fmt.Errorf("service.GoalService.Create: %w: goal text is required", domain.ErrValidation)
	}

	goal, err := s.goals.Create(ctx, text)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("service.GoalService.Create: %w", err)
	}
	return goal, nil
}

// IsBlank reports whether text is empty once leading and trailing whitespace
// is removed. Whitespace is the set browsers strip with String.prototype.trim:
// Unicode White_Space plus the byte order mark U+FEFF, minus NEXT LINE U+0085.
func IsBlank(text string) bool {
	return strings.TrimFunc(text, isTrimSpace) == ""
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// Delete removes a goal by ID. A missing goal is not an error.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	if err := s.goals.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("service.GoalService.Delete: %w", err)
	}
	return nil
}

// Package handler implements the HTTP handlers for the goal tracker API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by concern (health.go, goal.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/pkordes/goal-tracker/internal/domain"
)

// GoalServicer defines the business operations the goal handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or service layer.
type GoalServicer interface {
	List(ctx context.Context) ([]domain.Goal, error)
	Create(ctx context.Context, text string) (domain.Goal, error)
	Delete(ctx context.Context, id string) error
}

// Pinger reports whether the goal store is reachable. repo.Conn satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// It holds no per-request state; every request runs independently.
type Server struct {
	goals GoalServicer
	store Pinger
	log   *zap.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger is replaced with a no-op logger.
func NewServer(goals GoalServicer, store Pinger, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{goals: goals, store: store, log: log}
}

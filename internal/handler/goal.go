package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pkordes/goal-tracker/internal/domain"
	"github.com/pkordes/goal-tracker/internal/handler/gen"
)

// ListGoals handles GET /goals.
func (s *Server) ListGoals(ctx context.Context, _ gen.ListGoalsRequestObject) (gen.ListGoalsResponseObject, error) {
	log := s.logger(ctx)

	goals, err := s.goals.List(ctx)
	if err != nil {
		log.Error("failed to fetch goals", zap.Error(err))
		return gen.ListGoals500JSONResponse(messageBody(msgLoadFailed)), nil
	}

	data := make([]gen.Goal, len(goals))
	for i, g := range goals {
		data[i] = goalToResponse(g)
	}
	log.Debug("fetched goals", zap.Int("count", len(data)))
	return gen.ListGoals200JSONResponse{Goals: data}, nil
}

// CreateGoal handles POST /goals.
// A missing body or text field is rejected here; blank text is rejected by
// the service. The text is stored and echoed without trimming.
func (s *Server) CreateGoal(ctx context.Context, req gen.CreateGoalRequestObject) (gen.CreateGoalResponseObject, error) {
	log := s.logger(ctx)

	if req.Body == nil || req.Body.Text == nil {
		log.Info("invalid goal input", zap.String("reason", "no text"))
		return gen.CreateGoal422JSONResponse(messageBody(msgInvalidGoalText)), nil
	}

	goal, err := s.goals.Create(ctx, *req.Body.Text)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			log.Info("invalid goal input", zap.String("reason", unwrapMessage(err)))
			return gen.CreateGoal422JSONResponse(messageBody(msgInvalidGoalText)), nil
		}
		log.Error("failed to save goal", zap.Error(err))
		return gen.CreateGoal500JSONResponse(messageBody(msgSaveFailed)), nil
	}

	log.Debug("stored new goal", zap.String("goal_id", goal.ID))
	return gen.CreateGoal201JSONResponse{
		Message: msgGoalSaved,
		Goal:    goalToResponse(goal),
	}, nil
}

// DeleteGoal handles DELETE /goals/{id}.
// Deleting an id that does not exist still returns 200: callers cannot tell
// "deleted" from "never present". A malformed id is a store failure (500).
func (s *Server) DeleteGoal(ctx context.Context, req gen.DeleteGoalRequestObject) (gen.DeleteGoalResponseObject, error) {
	log := s.logger(ctx)

	if err := s.goals.Delete(ctx, req.Id); err != nil {
		log.Error("failed to delete goal", zap.String("goal_id", req.Id), zap.Error(err))
		return gen.DeleteGoal500JSONResponse(messageBody(msgDeleteFailed)), nil
	}

	log.Debug("deleted goal", zap.String("goal_id", req.Id))
	return gen.DeleteGoal200JSONResponse(messageBody(msgGoalDeleted)), nil
}

// goalToResponse converts a domain.Goal into the generated gen.Goal type.
func goalToResponse(g domain.Goal) gen.Goal {
	return gen.Goal{Id: g.ID, Text: g.Text}
}

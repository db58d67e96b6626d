package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pkordes/goal-tracker/internal/handler/gen"
)

// Client-facing messages. Store error causes are logged, never returned.
const (
	msgServerRunning    = "Server is running."
	msgGoalSaved        = "Goal saved"
	msgGoalDeleted      = "Deleted goal!"
	msgInvalidGoalText  = "Invalid goal text."
	msgLoadFailed       = "Failed to load goals."
	msgSaveFailed       = "Failed to save goal."
	msgDeleteFailed     = "Failed to delete goal."
	msgStoreUnavailable = "Store unavailable."
	msgMalformedBody    = "Malformed request body."
	msgBodyTooLarge     = "Request body too large."
	msgInternal         = "Internal server error."
)

// messageBody returns the {"message": ...} envelope used by every response
// that carries no data.
func messageBody(message string) gen.MessageResponse {
	return gen.MessageResponse{Message: message}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.GoalService.Create: validation error: goal text is required" → "goal text is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, "validation error: "); ok {
		return after
	}
	return msg
}

// logger returns the server logger annotated with the chi request ID, if any.
func (s *Server) logger(ctx context.Context) *zap.Logger {
	if id := chimiddleware.GetReqID(ctx); id != "" {
		return s.log.With(zap.String("request_id", id))
	}
	return s.log
}

// writeMessage writes a JSON message envelope with the given status.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(messageBody(message))
}

// requestErrorHandler replaces the generated plain-text 400 for bodies that
// cannot be decoded. Bodies cut off by http.MaxBytesReader get 413.
func requestErrorHandler(log *zap.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		log.Info("rejected request", zap.String("path", r.URL.Path), zap.Error(err))
		writeMessage(w, http.StatusBadRequest, msgMalformedBody)
	}
}

// responseErrorHandler handles errors a strict handler returns instead of a
// typed response. Handlers map every expected failure themselves, so reaching
// this is a bug; the client still gets a JSON envelope.
func responseErrorHandler(log *zap.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("unhandled handler error", zap.String("path", r.URL.Path), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

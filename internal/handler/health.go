package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pkordes/goal-tracker/internal/handler/gen"
)

// readyTimeout bounds the store ping made by GET /readyz.
const readyTimeout = time.Second

// GetRoot handles GET /.
func (s *Server) GetRoot(_ context.Context, _ gen.GetRootRequestObject) (gen.GetRootResponseObject, error) {
	return gen.GetRoot200JSONResponse(messageBody(msgServerRunning)), nil
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} whenever the process is serving.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetReady handles GET /readyz. It pings the store and reports 503 when the
// ping fails, so a load balancer can stop routing to an instance whose store
// connection has gone away.
func (s *Server) GetReady(ctx context.Context, _ gen.GetReadyRequestObject) (gen.GetReadyResponseObject, error) {
	if s.store == nil {
		return gen.GetReady200JSONResponse{Status: "ready"}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger(ctx).Warn("store ping failed", zap.Error(err))
		return gen.GetReady503JSONResponse(messageBody(msgStoreUnavailable)), nil
	}
	return gen.GetReady200JSONResponse{Status: "ready"}, nil
}

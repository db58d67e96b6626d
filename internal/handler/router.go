package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pkordes/goal-tracker/internal/handler/gen"
	"github.com/pkordes/goal-tracker/internal/metrics"
	"github.com/pkordes/goal-tracker/internal/middleware"
	"github.com/pkordes/goal-tracker/spec"
)

// RouterOptions configures the middleware stack built by NewRouter.
type RouterOptions struct {
	// Logger receives one line per request. Nil disables request logging.
	Logger *zap.Logger

	// CORSOrigins is passed to middleware.NewCORSHandler. Defaults to ["*"].
	CORSOrigins []string

	// MaxBodyBytes limits request bodies. <= 0 disables the limit.
	MaxBodyBytes int64

	// Metrics, when set, instruments every request and serves GET /metrics.
	Metrics *metrics.Metrics
}

// NewAPIHandler adapts srv to the generated chi router, replacing the
// generated plain-text error responses with JSON envelopes.
func NewAPIHandler(srv *Server) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler(srv.log),
		ResponseErrorHandlerFunc: responseErrorHandler(srv.log),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: requestErrorHandler(srv.log),
	})
}

// NewRouter assembles the full HTTP surface: middleware, the API routes, the
// embedded OpenAPI contract and, optionally, Prometheus metrics.
//
// Middleware is applied in order: CORS → RequestID → RealIP → Logger →
// Metrics → recoverer → MaxBodySize. CORS sits outermost so that every
// response, including recovered panics and 404s, carries its headers.
func NewRouter(srv *Server, opts RouterOptions) http.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.NewCORSHandler(origins))
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if opts.Logger != nil {
		r.Use(middleware.NewRequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Instrument)
	}
	r.Use(recoverer(srv.log))
	r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Mount("/", NewAPIHandler(srv))
	return r
}

// recoverer turns a handler panic into a 500 with the usual JSON envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("handler panic",
					zap.String("path", r.URL.Path),
					zap.String("request_id", chimiddleware.GetReqID(r.Context())),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				if r.Header.Get("Connection") != "Upgrade" {
					writeMessage(w, http.StatusInternalServerError, msgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rsnyderaustin/poe-craftsim/docs"
	"github.com/rsnyderaustin/poe-craftsim/internal/crafting"
	"github.com/rsnyderaustin/poe-craftsim/internal/handler"
	"github.com/rsnyderaustin/poe-craftsim/internal/logger"
	"github.com/rsnyderaustin/poe-craftsim/internal/metrics"
	"github.com/rsnyderaustin/poe-craftsim/internal/simulation"
)

// Catalog is what the server needs from the loaded mod catalog beyond the
// crafting service: readiness and version reporting.
type Catalog interface {
	handler.HealthChecker
	handler.CatalogInfo
}

// Options configures a Server
type Options struct {
	Addr         string
	Version      string
	MaxBodyBytes int64
	// BaseSeed starts the seed sequence for requests that omit a seed
	BaseSeed uint64
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, craftingService crafting.Service, runner *simulation.Runner, catalog Catalog) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts, craftingService, runner, catalog),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the HTTP routing tree
//
// @title Crafting Simulation API
// @version 1.0
// @description Enumerates and samples the outcomes of item crafting actions.
// @BasePath /
func NewRouter(opts Options, craftingService crafting.Service, runner *simulation.Runner, catalog Catalog) http.Handler {
	r := chi.NewRouter()
	seeds := handler.NewSeedSource(opts.BaseSeed)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(catalog))

	r.Get("/version", handler.HandleVersion(opts.Version, catalog))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/actions", handler.HandleListActions(craftingService))

		r.Route("/craft", func(r chi.Router) {
			r.Post("/enumerate", handler.HandleEnumerate(craftingService, seeds))
			r.Post("/simulate", handler.HandleSimulate(craftingService, seeds))
			r.Post("/batch", handler.HandleBatch(runner, seeds))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags every request with an id, echoed in X-Request-ID,
// and logs its start and completion. A caller-supplied X-Request-ID is kept.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It blocks until the server stops and returns
// http.ErrServerClosed after a graceful Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

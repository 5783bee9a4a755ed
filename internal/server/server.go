package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PvPTrack_Go/internal/builder"
	"github.com/osse101/PvPTrack_Go/internal/handler"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/metrics"
)

// Snapshot holds the latest published build. Safe for concurrent use.
type Snapshot struct {
	res atomic.Pointer[builder.Result]
}

// Publish replaces the served build.
func (s *Snapshot) Publish(ctx context.Context, res *builder.Result) {
	s.res.Store(res)
	if res != nil {
		logger.FromContext(ctx).Info(LogMsgBuildPublished, logger.AttrKeyRunID, res.RunID)
	}
}

// Result returns the latest build, or nil.
func (s *Snapshot) Result() *builder.Result {
	return s.res.Load()
}

type Server struct {
	httpServer *http.Server
	snapshot   *Snapshot
}

// NewRouter builds the HTTP routes over src.
func NewRouter(src handler.TrackSource, trustedProxies []string) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, NewDefaultRateLimiter()))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(src))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(src))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Front end data script
	r.Get("/data.js", handler.HandleDataJS(src))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/levels/{level}", handler.HandleGetLevel(src))
		r.Get("/rewards/{id}", handler.HandleGetReward(src))

		r.Route("/loot-tables/{id}", func(r chi.Router) {
			r.Get("/", handler.HandleGetLootTable(src))
			r.Get("/effective", handler.HandleGetEffectiveLootTable(src))
		})

		r.Get("/buckets/{name}", handler.HandleGetBucket(src))
	})

	return r
}

// NewServer creates a new Server instance serving snapshot
func NewServer(port int, trustedProxies []string, snapshot *Snapshot) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(snapshot, trustedProxies),
			ReadHeaderTimeout: 5 * time.Second,
		},
		snapshot: snapshot,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		log := logger.FromContext(r.Context())

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

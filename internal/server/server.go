package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/database"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
	"github.com/osse101/Lockbox_Go/internal/handler"
	"github.com/osse101/Lockbox_Go/internal/identity"
	"github.com/osse101/Lockbox_Go/internal/lockbox"
	"github.com/osse101/Lockbox_Go/internal/logger"
	"github.com/osse101/Lockbox_Go/internal/metrics"
	"github.com/osse101/Lockbox_Go/internal/sse"
)

// Options configures the HTTP front end
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	Clock          clock.Clock
}

// Dependencies are the services the routes call into. DBPool may be nil when
// the ledger runs on in-memory storage; Events may be nil to disable streaming.
type Dependencies struct {
	DBPool   database.Pool
	Lockbox  lockbox.Service
	Journal  eventlog.Service
	Verifier *identity.Verifier
	Events   *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(opts Options, deps Dependencies) http.Handler {
	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(clk)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	lb := handler.NewLockboxHandler(deps.Lockbox)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/rewards", func(r chi.Router) {
			r.Get("/claimable", lb.HandleClaimable)
			r.Get("/entries", lb.HandleEntries)
			r.Get("/history", handler.HandleHistory(deps.Journal))

			r.With(identity.RequireCaller(deps.Verifier)).Post("/claim", lb.HandleClaim)
		})

		if deps.Events != nil {
			r.Get("/events/stream", sse.Handler(deps.Events))
			r.Get("/events/ws", sse.WebSocketHandler(deps.Events))
		}

		r.Get("/policy/expiration", lb.HandleGetExpiration)
		r.Get("/audit", lb.HandleAudit)

		// Administrator checks happen in the ledger; the token only names the caller
		r.Route("/admin", func(r chi.Router) {
			r.Use(identity.RequireCaller(deps.Verifier))
			r.Post("/grant", lb.HandleGrant)
			r.Post("/reclaim", lb.HandleReclaim)
			r.Put("/expiration", lb.HandleSetExpiration)
			r.Post("/custody/deposit", lb.HandleDeposit)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

var errHijackUnsupported = errors.New("response writer does not support hijacking")

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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets websocket upgrades pass through the wrapper
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errHijackUnsupported
	}
	return h.Hijack()
}

var quietPrefixes = []string{"/healthz", "/readyz", "/metrics"}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPrefixes {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
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

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

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

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

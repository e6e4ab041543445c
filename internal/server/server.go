// Package server wires the HTTP middleware chain and routes onto chi.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/JackpotEngine_Go/internal/betqueue"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/handler"
	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router. bets receives POST /bets; store answers /readyz.
// events may be nil when the store backend keeps no event log.
func NewServer(port int, apiKey string, trustedProxies []string, store handler.Pinger, service jackpot.Service, bets betqueue.Publisher, events eventlog.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, store, service, bets, events),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter returns the full handler tree with middleware applied
func NewRouter(apiKey string, trustedProxies []string, store handler.Pinger, service jackpot.Service, bets betqueue.Publisher, events eventlog.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	tracker := NewClientTracker()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, tracker))
	r.Use(RateLimitMiddleware(trustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	betHandler := handler.NewBetHandler(service, bets)
	jackpotHandler := handler.NewJackpotHandler(service)
	userHandler := handler.NewUserHandler(service)
	eventHandler := handler.NewEventHandler(events)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/bets", func(r chi.Router) {
			r.Post("/", betHandler.HandlePlaceBet)
			r.Post("/sync", betHandler.HandlePlaceBetSync)
			r.Get("/{betId}/contribution", betHandler.HandleGetContribution)
		})

		r.Route("/jackpots", func(r chi.Router) {
			r.Get("/", jackpotHandler.HandleListJackpots)
			r.Get("/{jackpotId}", jackpotHandler.HandleGetJackpot)
			r.Post("/{jackpotId}/evaluate-reward", jackpotHandler.HandleEvaluateReward)
			r.Get("/{jackpotId}/rewards/{betId}", jackpotHandler.HandleGetReward)
			r.Get("/{jackpotId}/events", eventHandler.HandleListJackpotEvents)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.HandleRegisterUser)
			r.Get("/{userId}/contributions", userHandler.HandleListContributions)
			r.Get("/{userId}/rewards", userHandler.HandleListRewards)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

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

// loggingMiddleware tags the request with an ID (reusing a sane inbound X-Request-ID)
// and logs its start and completion
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasAnyPrefix(r.URL.Path, quietPaths) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
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
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

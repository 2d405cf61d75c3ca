package server

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"github.com/oggyb/portfolio-inbox/internal/middleware"
	routes "github.com/oggyb/portfolio-inbox/internal/router"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Options struct {
	Addr           string
	AllowedOrigins []string
	// TrustProxy applies the proxy's forwarding headers to RemoteAddr.
	TrustProxy bool
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
}

// Server owns the underlying http.Server instance.
type Server struct {
	http *http.Server
}

// New creates a new HTTP server bound to opts.Addr serving the application
// routes behind the middleware chain.
func New(opts Options, deps routes.AppDeps) *Server {
	return &Server{
		http: &http.Server{
			Addr:              opts.Addr,
			Handler:           Handler(opts, deps),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Handler builds the routed handler with the middleware chain applied.
func Handler(opts Options, deps routes.AppDeps) http.Handler {
	mux := http.NewServeMux()
	routes.Register(mux, deps)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", "admin-password", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:         600,
	})

	return Chain(
		mux,
		middleware.Recover(opts.Logger),
		middleware.RealIP(opts.TrustProxy),
		middleware.RequestLogger(opts.Logger),
		middleware.Metrics(opts.Metrics),
		c.Handler,
	)
}

// Start runs the HTTP server and blocks until ListenAndServe returns.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests to complete until the given context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

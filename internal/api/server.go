package api

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lox/agrimind/internal/imagegen"
)

type Server struct {
	log             *zap.Logger
	port            int
	metrics         bool
	shutdownTimeout time.Duration
	tmpl            *template.Template
	ogCache         *imagegen.OGImageCache
}

// Config holds configuration for the dashboard server.
type Config struct {
	Port            int
	Logger          *zap.Logger
	Metrics         bool
	ShutdownTimeout time.Duration
	OGImageTTL      time.Duration
}

func NewServer(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.OGImageTTL == 0 {
		cfg.OGImageTTL = 10 * time.Minute
	}
	return &Server{
		log:             log,
		port:            cfg.Port,
		metrics:         cfg.Metrics,
		shutdownTimeout: cfg.ShutdownTimeout,
		tmpl:            newTemplates(),
		ogCache:         imagegen.NewOGImageCache(cfg.OGImageTTL),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		s.requestLogger,
		middleware.Recoverer,
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})
	r.Get("/health", s.handleHealth)
	r.Get("/og-image.png", s.handleOGImage)
	if s.metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", s.handleOverview)
		r.Get("/precision", s.handlePrecision)
		r.Get("/crops", s.handleCrops)
		r.Get("/{module}", s.handlePlaceholder)
	})

	r.Route("/actions", func(r chi.Router) {
		r.Post("/shell/collapse", s.handleShellCollapse)
		r.Post("/shell/mobile/open", s.handleShellMobileOpen)
		r.Post("/shell/mobile/close", s.handleShellMobileClose)
		r.Post("/shell/select", s.handleShellSelect)
		r.Post("/precision/{control}", s.handlePrecisionAction)
		r.Post("/crops/{control}", s.handleCropAction)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/sensors", s.handleAPISensors)
		r.Get("/alerts", s.handleAPIAlerts)
		r.Get("/overlays", s.handleAPIOverlays)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		s.log.Info("starting dashboard server", zap.String("addr", fmt.Sprintf("http://localhost:%d", s.port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.log.Debug("shutting down dashboard server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// requestLogger logs one line per request with zap.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

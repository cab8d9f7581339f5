package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/config"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/football"
	httpserver "github.com/lacerdaedaniella-eng/goalmind-backend/internal/http"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/http/handlers"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/http/middleware"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/metrics"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *football.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured upstream provider.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithFetcher(cfg, logger, nil)
}

func newServerWithFetcher(cfg config.Config, logger *slog.Logger, fetcher upstream.Fetcher) *Server {
	return newServerWithMetrics(cfg, logger, fetcher, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, fetcher upstream.Fetcher, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	redact := upstream.NewRedactor(cfg.Upstream.APIKey)
	logger = logging.WithRedaction(logger, redact)
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newFetcherFactory(logger, recorder)
	if fetcher == nil {
		fetcher = factory.build(cfg)
	} else {
		fetcher = factory.wrap(cfg, fetcher)
	}

	svc := football.NewService(fetcher, football.Options{
		Season:  cfg.Upstream.Season,
		Metrics: recorder,
		Logger:  logger,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       svc,
		httpServer:    buildHTTPServer(cfg, svc, logger, recorder, redact),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc *football.Service, logger *slog.Logger, recorder *metrics.Recorder, redact upstream.Redactor) httpServer {
	handler := handlers.NewHandler(svc, logger, redact, readiness(cfg))
	router := httpserver.NewRouter(handler)

	budget := requestBudget(cfg)
	var chain http.Handler = router
	chain = middleware.Deadline(budget)(chain)
	chain = middleware.CORS(cfg.CORSOrigins)(chain)
	chain = middleware.Recovery(logger, http.HandlerFunc(handler.InternalError))(chain)
	chain = middleware.LoggingMiddleware(logger, recorder, chain)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      chain,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(budget),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop accepting requests first so in-flight upstream calls can still be counted.
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", logging.FieldError, err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil || rec == nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", logging.FieldError, err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", logging.FieldError, err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/config"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "goalmind-backend"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	envErr := loadDotEnv()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
	if envErr != nil {
		logging.Warn(logger, "failed to load .env file", "error", envErr)
	}
	if cfg.Upstream.Provider != "fixture" && !cfg.Upstream.HasCredential() {
		logging.Warn(logger, "upstream credential not configured; football endpoints will fail",
			logging.FieldProvider, cfg.Upstream.Provider,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// loadDotEnv populates the environment from .env when present; a missing file is not an error.
func loadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

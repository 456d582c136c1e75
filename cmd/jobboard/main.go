package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/authn"
	"jobboard/internal/config"
	"jobboard/internal/observability/logging"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/service"
	"jobboard/internal/storage"
	"jobboard/internal/store"
	httpx "jobboard/internal/transport/http"
	"jobboard/pkg/db"

	"github.com/joho/godotenv"
)

const serviceName = "jobboard"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)
	if err := st.AutoMigrate(); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	files, err := storage.New(cfg.MediaRoot)
	if err != nil {
		logger.Error("media root", "error", err, "path", cfg.MediaRoot)
		os.Exit(1)
	}

	metrics.MustRegister(serviceName)

	srvr := httpx.NewServer(httpx.Deps{
		Identity: service.NewIdentityService(st),
		Profiles: service.NewProfileService(st),
		Catalog:  service.NewCatalogService(st),
		Jobs:     service.NewJobService(st),
		Pipeline: service.NewPipelineService(st),
		Files:    files,
		Verifier: authn.NewVerifier(cfg.SigningKey, cfg.Issuer),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpx.NewRouter(srvr, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "issuer", cfg.Issuer)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}

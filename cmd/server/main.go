package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/midoshouse/midos.house-sub000/internal/config"
	"github.com/midoshouse/midos.house-sub000/internal/httpapi"
	"github.com/midoshouse/midos.house-sub000/internal/hub"
	"github.com/midoshouse/midos.house-sub000/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	envFile = flag.String("env", ".env", "optional dotenv file")
	version = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped")
}

func run(cfg config.Config, logger *zap.Logger) error {
	logger.Info("starting draft server", zap.String("version", version), zap.String("addr", cfg.HTTP.Addr))
	if cfg.Auth.TokenHash == "" {
		logger.Warn("api token not configured; mutating routes are open")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	if cfg.Database.Migrate {
		if err := st.Migrate(ctx); err != nil {
			return err
		}
	}

	h := hub.NewHub(context.Background(), logger)
	api := &httpapi.API{
		Hub:         h,
		Store:       st,
		Log:         logger,
		IdleTimeout: cfg.Room.IdleTimeout,
	}
	if cfg.Auth.TokenHash != "" {
		api.TokenHash = []byte(cfg.Auth.TokenHash)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.SetupRoutes(api),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		h.Shutdown()
		return err
	})
	return g.Wait()
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

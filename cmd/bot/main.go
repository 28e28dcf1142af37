package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-net-bot/internal/adapter/discord"
	httpadapter "github.com/couchcryptid/weather-net-bot/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/weather-net-bot/internal/adapter/kafka"
	"github.com/couchcryptid/weather-net-bot/internal/adapter/nws"
	"github.com/couchcryptid/weather-net-bot/internal/adapter/openmeteo"
	"github.com/couchcryptid/weather-net-bot/internal/config"
	"github.com/couchcryptid/weather-net-bot/internal/domain"
	"github.com/couchcryptid/weather-net-bot/internal/observability"
	"github.com/couchcryptid/weather-net-bot/internal/pipeline"
)

func main() {
	// .env is for local development only; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	catalog, err := domain.DefaultCatalog()
	if err != nil {
		logger.Error("invalid region catalog", "error", err)
		os.Exit(1)
	}

	forecasts := openmeteo.NewClient(cfg.RequestTimeout, logger)
	alerts := nws.NewClient(cfg.NWSUserAgent, cfg.NWSArea, cfg.RequestTimeout, logger)
	publisher := discord.NewClient(cfg.DiscordToken, cfg.DiscordChannelID, cfg.RequestTimeout, logger)

	// Kafka mirroring is feature-flagged via KAFKA_BROKERS / KAFKA_MIRROR_ENABLED.
	var mirror pipeline.BulletinMirror
	var mirrorWriter *kafkaadapter.Mirror
	if cfg.KafkaMirrorEnabled {
		mirrorWriter = kafkaadapter.NewMirror(cfg, logger)
		mirror = mirrorWriter
		logger.Info("kafka bulletin mirror enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaMirrorTopic)
	} else {
		logger.Info("kafka bulletin mirror disabled")
	}

	composer := pipeline.NewComposer(catalog, forecasts, alerts, clock, cfg.FetchPacing, logger, metrics)
	scheduler := pipeline.NewScheduler(composer, publisher, mirror, clock, cfg.UpdateInterval, cfg.MaxChunkLen, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.RunOnce {
		if err := scheduler.RunOnce(ctx); err != nil {
			logger.Error("single bulletin cycle failed", "error", err)
			closeMirror(mirrorWriter, logger)
			os.Exit(1)
		}
		closeMirror(mirrorWriter, logger)
		logger.Info("single bulletin cycle complete")
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, scheduler, logger)

	// Start operational HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the bulletin loop.
	runErr := make(chan error, 1)
	go func() {
		runErr <- scheduler.Run(ctx)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-runErr:
		if err != nil {
			logger.Error("scheduler error", "error", err)
			exitCode = 1
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	closeMirror(mirrorWriter, logger)

	logger.Info("shutdown complete")
	os.Exit(exitCode)
}

func closeMirror(m *kafkaadapter.Mirror, logger *slog.Logger) {
	if m == nil {
		return
	}
	if err := m.Close(); err != nil {
		logger.Error("kafka mirror close error", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/weather-widget-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/weather-widget-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-widget-service/internal/adapter/weatherapi"
	"github.com/couchcryptid/weather-widget-service/internal/config"
	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/couchcryptid/weather-widget-service/internal/observability"
	"github.com/couchcryptid/weather-widget-service/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := weatherapi.NewClient(cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL, cfg.WeatherAPITimeout, metrics, logger)

	// Lookup events are feature-flagged via KAFKA_BROKERS / LOOKUP_EVENTS_ENABLED.
	var sink domain.LookupSink
	var writer *kafkaadapter.Writer
	if cfg.LookupEventsEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		metrics.LookupEventsEnabled.Set(1)
		logger.Info("lookup events enabled", "topic", cfg.KafkaLookupTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("lookup events disabled")
	}

	clock := clockwork.NewRealClock()
	ctl := search.New(client, sink, logger, metrics, search.WithClock(clock))
	presenter := domain.NewPresenter(clock, cfg.Location)

	srv := httpadapter.NewServer(cfg.HTTPAddr, ctl, presenter, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	ctl.Close()
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// Command weather-tui runs the weather widget in the terminal.
//
// It reads the same environment as the HTTP service (WEATHER_API_KEY is
// required) and writes logs to WIDGET_LOG_FILE because the terminal belongs
// to the widget.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	kafkaadapter "github.com/couchcryptid/weather-widget-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-widget-service/internal/adapter/weatherapi"
	"github.com/couchcryptid/weather-widget-service/internal/config"
	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/couchcryptid/weather-widget-service/internal/observability"
	"github.com/couchcryptid/weather-widget-service/internal/search"
	"github.com/couchcryptid/weather-widget-service/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weather-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := observability.NewLoggerTo(logOut, cfg.LogLevel, cfg.LogFormat)
	// The terminal widget serves no /metrics; the instruments stay unregistered.
	metrics := observability.NewMetricsForTesting()

	client := weatherapi.NewClient(cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL, cfg.WeatherAPITimeout, metrics, logger)

	var sink domain.LookupSink
	if cfg.LookupEventsEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer writer.Close() //nolint:errcheck // best-effort flush on exit
		sink = writer
		metrics.LookupEventsEnabled.Set(1)
	}

	clock := clockwork.NewRealClock()
	ctl := search.New(client, sink, logger, metrics, search.WithClock(clock))
	defer ctl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	model := tui.NewModel(ctx, ctl, domain.NewPresenter(clock, cfg.Location))
	p := tea.NewProgram(model, tea.WithContext(ctx))

	logger.Info("starting terminal widget")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run widget: %w", err)
	}
	logger.Info("terminal widget exited")
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all widget settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	LogFile         string
	ShutdownTimeout time.Duration

	// Weather provider configuration.
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	WeatherAPITimeout time.Duration

	// Location is the viewer's time zone for day/night phrasing.
	Location *time.Location

	// Lookup event publishing.
	KafkaBrokers        []string
	KafkaLookupTopic    string
	LookupEventsEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	apiTimeoutStr := sharedcfg.EnvOrDefault("WEATHER_API_TIMEOUT", "10s")
	apiTimeout, err := time.ParseDuration(apiTimeoutStr)
	if err != nil || apiTimeout <= 0 {
		return nil, errors.New("invalid WEATHER_API_TIMEOUT")
	}

	loc, err := parseTimezone(sharedcfg.EnvOrDefault("WIDGET_TIMEZONE", "Local"))
	if err != nil {
		return nil, err
	}

	var brokers []string
	if s := os.Getenv("KAFKA_BROKERS"); s != "" {
		brokers = sharedcfg.ParseBrokers(s)
	}
	eventsEnabled := len(brokers) > 0
	if v := os.Getenv("LOOKUP_EVENTS_ENABLED"); v != "" {
		eventsEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		LogFile:         sharedcfg.EnvOrDefault("WIDGET_LOG_FILE", "weather-tui.log"),
		ShutdownTimeout: shutdownTimeout,

		WeatherAPIKey:     strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
		WeatherAPIBaseURL: strings.TrimRight(sharedcfg.EnvOrDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1"), "/"),
		WeatherAPITimeout: apiTimeout,

		Location: loc,

		KafkaBrokers:        brokers,
		KafkaLookupTopic:    sharedcfg.EnvOrDefault("KAFKA_LOOKUP_TOPIC", "weather-lookups"),
		LookupEventsEnabled: eventsEnabled,
	}

	if cfg.WeatherAPIKey == "" {
		return nil, errors.New("WEATHER_API_KEY is required")
	}
	if cfg.WeatherAPIBaseURL == "" {
		return nil, errors.New("WEATHER_API_BASE_URL must not be empty")
	}
	if cfg.LookupEventsEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("LOOKUP_EVENTS_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.LookupEventsEnabled && cfg.KafkaLookupTopic == "" {
		return nil, errors.New("KAFKA_LOOKUP_TOPIC is required when lookup events are enabled")
	}

	return cfg, nil
}

func parseTimezone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid WIDGET_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

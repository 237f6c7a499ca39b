//go:build weatherapi

package weatherapi

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/weather-widget-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real weatherapi.com API and require WEATHER_API_KEY.
// Run with: go test -tags=weatherapi ./internal/adapter/weatherapi/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	key := os.Getenv("WEATHER_API_KEY")
	if key == "" {
		t.Fatal("WEATHER_API_KEY must be set to run smoke tests")
	}
	return NewClient(key, DefaultBaseURL, 10*time.Second,
		observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_CurrentWeather(t *testing.T) {
	c := smokeClient(t)

	rec, err := c.CurrentWeather(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", rec.Location)
	assert.Equal(t, "C", rec.Unit)
	assert.NotEmpty(t, rec.Condition)
	assert.Greater(t, rec.Temperature, -60.0)
	assert.Less(t, rec.Temperature, 60.0)
}

func TestSmoke_UnknownLocation(t *testing.T) {
	c := smokeClient(t)

	_, err := c.CurrentWeather(context.Background(), "zzzzqqqqxxxx-no-such-place")
	require.Error(t, err)
}

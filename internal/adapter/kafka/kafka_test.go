package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/couchcryptid/weather-widget-service/internal/config"
	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	temp := 22.0
	event := domain.LookupEvent{
		RequestID:    "req-1",
		Query:        "Tokyo",
		Status:       domain.StatusSuccess,
		Location:     "Tokyo",
		TemperatureC: &temp,
		Condition:    "Partly Cloudy",
		OccurredAt:   now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("req-1"), msg.Key)
	assert.Equal(t, now, msg.Time)
	assert.Contains(t, string(msg.Value), `"status":"success"`)
	assert.Contains(t, string(msg.Value), `"temperature_c":22`)
	assert.NotContains(t, string(msg.Value), `"error"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "status", msg.Headers[0].Key)
	assert.Equal(t, []byte("success"), msg.Headers[0].Value)
	assert.Equal(t, "occurred_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_Failure(t *testing.T) {
	event := domain.LookupEvent{
		RequestID:  "req-2",
		Query:      "Atlantis",
		Status:     domain.StatusError,
		Error:      domain.ErrFetchFailure.Error(),
		OccurredAt: time.Date(2024, 4, 26, 15, 11, 0, 0, time.UTC),
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "City not found. Please try again.", decoded["error"])
	assert.NotContains(t, decoded, "temperature_c")
	assert.Equal(t, []byte("error"), msg.Headers[0].Value)
}

func TestNewWriter_UsesConfig(t *testing.T) {
	w := NewWriter(&config.Config{
		KafkaBrokers:     []string{"broker1:9092"},
		KafkaLookupTopic: "weather-lookups",
	}, nil)
	defer w.Close() //nolint:errcheck // nothing was written

	assert.Equal(t, "weather-lookups", w.writer.Topic)
	assert.Equal(t, "broker1:9092", w.writer.Addr.String())
}

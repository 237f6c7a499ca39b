//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/weather-widget-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-widget-service/internal/adapter/weatherapi"
	"github.com/couchcryptid/weather-widget-service/internal/config"
	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/couchcryptid/weather-widget-service/internal/observability"
	"github.com/couchcryptid/weather-widget-service/internal/search"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testLookupTopic = "test-weather-lookups"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka launches a single-node KRaft broker and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("weather-widget-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestLookupEventsReachKafka drives a real search against a fake provider and
// verifies the resulting lookup event lands on the topic.
func TestLookupEventsReachKafka(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testLookupTopic)

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"name":"Tokyo"},"current":{"temp_c":22,"condition":{"text":"Partly Cloudy"}}}`))
	}))
	defer provider.Close()

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaLookupTopic: testLookupTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	client := weatherapi.NewClient("test-key", provider.URL, 5*time.Second, metrics, discardLogger())
	ctl := search.New(client, writer, discardLogger(), metrics)

	state := ctl.Submit(ctx, "Tokyo")
	require.Equal(t, domain.StatusSuccess, state.Status)

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     testLookupTopic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()
	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read lookup event")

	var event domain.LookupEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))

	assert.Equal(t, state.RequestID, string(msg.Key))
	assert.Equal(t, state.RequestID, event.RequestID)
	assert.Equal(t, "Tokyo", event.Location)
	require.NotNil(t, event.TemperatureC)
	assert.InDelta(t, 22.0, *event.TemperatureC, 0)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "success", headers["status"])
}

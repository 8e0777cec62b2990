package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()

	p, err := newPublisher(ctx, nil, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)

	p, err = newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9/push"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, p)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "local"}, discardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "google", ProjectID: "p"}, discardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, discardLogger())
	assert.EqualError(t, err, "unknown pubsub provider: kafka")
}

func TestLocalHTTPPublisher_PushesOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.OrderEvent{
		EventID:     "evt-1",
		RequestID:   "req-1",
		Type:        service.OrderEventPlaced,
		OrderID:     12,
		UserID:      3,
		TotalAmount: "59.98",
		Status:      "pending",
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "12", received.Message.Attributes["order_id"])
	assert.Equal(t, localSubscription, received.Subscription)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{EventID: "e"})
	assert.EqualError(t, err, "push endpoint returned non-success status: 502")
}

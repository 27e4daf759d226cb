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

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))
	event := &service.OrderEvent{
		RequestID:   "req-1",
		Type:        constants.OrderEventPaid,
		OrderID:     "order-1",
		OwnerID:     "owner-1",
		Status:      "Paid",
		TotalAmount: "55",
		OccurredAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.OrderEventPaid, received.Message.Attributes["event_type"])
	assert.Equal(t, "order-1", received.Message.Attributes["order_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "o"})
	assert.ErrorContains(t, err, "500")
}

func TestLocalHTTPPublisher_NilEvent(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://localhost:9/push", slog.New(slog.DiscardHandler))

	assert.Error(t, publisher.PublishOrderEvent(context.Background(), nil))
}

func TestNewEnvelope(t *testing.T) {
	env, err := newEnvelope(&service.OrderEvent{Type: constants.OrderEventCreated, OrderID: "o-1", OwnerID: "u-1"})
	require.NoError(t, err)

	assert.Equal(t, "o-1", env.orderingKey)
	assert.Equal(t, map[string]string{"event_type": constants.OrderEventCreated, "order_id": "o-1", "owner_id": "u-1"}, env.attributes)
	assert.NotContains(t, string(env.data), "request_id")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("unconfigured uses noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "pubsub.topicId")
	})

	t.Run("local endpoint", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/push"}},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}

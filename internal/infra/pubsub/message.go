package pubsub

import (
	"encoding/json"
	"log/slog"

	"inventory/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published order event.
const (
	attrEventType = "event_type"
	attrOrderID   = "order_id"
	attrOwnerID   = "owner_id"
	attrRequestID = "request_id"
)

// envelope is the transport-neutral form of an order event.
type envelope struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps events of one order in commit order.
	orderingKey string
}

func newEnvelope(event *service.OrderEvent) (*envelope, error) {
	if event == nil {
		return nil, errors.New("order event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	attributes := map[string]string{
		attrEventType: event.Type,
		attrOrderID:   event.OrderID,
		attrOwnerID:   event.OwnerID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return &envelope{
		data:        data,
		attributes:  attributes,
		orderingKey: event.OrderID,
	}, nil
}

func eventAttrs(event *service.OrderEvent) []any {
	return []any{
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	}
}

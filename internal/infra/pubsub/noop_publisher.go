package pubsub

import (
	"context"
	"log/slog"

	"inventory/internal/domain/service"
)

// noopPublisher drops events; used when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event != nil {
		p.logger.DebugContext(ctx, "Event publishing disabled, dropping order event", eventAttrs(event)...)
	}

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

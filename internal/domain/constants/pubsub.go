package constants

// Pub/Sub provider names accepted in config.pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order event types published after a successful lifecycle change.
const (
	OrderEventCreated  = "order.created"
	OrderEventPaid     = "order.paid"
	OrderEventCanceled = "order.canceled"
)

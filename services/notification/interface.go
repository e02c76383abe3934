package notification

import "luxesalon/models"

// Sink receives one event per committed state change. Publishing is
// fire-and-forget and at-most-once: implementations must never block the
// caller or surface delivery failures to it, and events are emitted in
// trigger order.
type Sink interface {
	Publish(kind models.NotificationKind, date, timeOfDay string)
}

// EventLog is implemented by sinks that retain published events for display,
// most recent first.
type EventLog interface {
	Events() []models.Notification
}

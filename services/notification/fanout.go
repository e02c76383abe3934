package notification

import "luxesalon/models"

// FanoutSink publishes each event to every child sink in order. Used to
// drive the in-memory feed and the Kafka sink from one trigger.
type FanoutSink struct {
	Sinks []Sink
}

func NewFanoutSink(sinks ...Sink) *FanoutSink {
	return &FanoutSink{Sinks: sinks}
}

func (f *FanoutSink) Publish(kind models.NotificationKind, date, timeOfDay string) {
	for _, s := range f.Sinks {
		s.Publish(kind, date, timeOfDay)
	}
}

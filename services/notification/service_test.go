package notification

import (
	"fmt"
	"testing"
	"time"

	"luxesalon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink() *DefaultSink {
	s := NewDefaultSink()
	s.Now = func() time.Time { return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC) }
	seq := 0
	s.IDGen = func() string { seq++; return fmt.Sprintf("n-%d", seq) }
	return s
}

func TestPublishPrependsEvents(t *testing.T) {
	sink := newTestSink()

	sink.Publish(models.NotifyBookingCreated, "2025-06-10", "09:00")
	sink.Publish(models.NotifyBookingCancelled, "2025-06-10", "09:00")

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, models.NotifyBookingCancelled, events[0].Kind, "most recent first")
	assert.Equal(t, models.NotifyBookingCreated, events[1].Kind)
	assert.Equal(t, "n-2", events[0].ID)
	assert.Equal(t, "n-1", events[1].ID)
}

func TestPublishComposesMessages(t *testing.T) {
	sink := newTestSink()

	sink.Publish(models.NotifyBookingCreated, "2025-06-10", "09:00")
	created := sink.Events()[0]
	assert.Equal(t, "Booking Confirmed!", created.Title)
	assert.Equal(t, "Your appointment on 2025-06-10 at 09:00 is confirmed.", created.Message)

	sink.Publish(models.NotifyBookingCancelled, "2025-06-10", "09:00")
	cancelled := sink.Events()[0]
	assert.Equal(t, "Booking Cancelled", cancelled.Title)

	sink.Publish(models.NotifyBookingReminder, "2025-06-10", "09:00")
	reminder := sink.Events()[0]
	assert.Equal(t, "Upcoming Appointment", reminder.Title)
	assert.Equal(t, "Reminder: your appointment is on 2025-06-10 at 09:00.", reminder.Message)
}

func TestFanoutPublishesToAllSinks(t *testing.T) {
	a, b := newTestSink(), newTestSink()
	fan := NewFanoutSink(a, b)

	fan.Publish(models.NotifyBookingCreated, "2025-06-10", "09:00")

	require.Len(t, a.Events(), 1)
	require.Len(t, b.Events(), 1)
	assert.Equal(t, a.Events()[0].Kind, b.Events()[0].Kind)
}

package notification

import (
	"sync"
	"time"

	"luxesalon/models"
	"luxesalon/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSink keeps published events in memory, most recent first, and logs
// each one. It is the in-process counterpart of the app's notification feed.
type DefaultSink struct {
	mu     sync.Mutex
	events []models.Notification

	// IDGen and Now are injectable for deterministic tests.
	IDGen func() string
	Now   func() time.Time
}

// NewDefaultSink returns a sink with uuid identifiers and wall-clock time.
func NewDefaultSink() *DefaultSink {
	return &DefaultSink{
		IDGen: func() string { return uuid.New().String() },
		Now:   time.Now,
	}
}

func (s *DefaultSink) Publish(kind models.NotificationKind, date, timeOfDay string) {
	n := models.Notification{
		ID:        s.IDGen(),
		Kind:      kind,
		Date:      date,
		Time:      timeOfDay,
		CreatedAt: s.Now(),
	}

	switch kind {
	case models.NotifyBookingCreated:
		n.Title = "Booking Confirmed!"
		n.Message = "Your appointment on " + date + " at " + timeOfDay + " is confirmed."
	case models.NotifyBookingCancelled:
		n.Title = "Booking Cancelled"
		n.Message = "Your appointment has been successfully cancelled."
	case models.NotifyBookingReminder:
		n.Title = "Upcoming Appointment"
		n.Message = "Reminder: your appointment is on " + date + " at " + timeOfDay + "."
	}

	s.mu.Lock()
	s.events = append([]models.Notification{n}, s.events...)
	s.mu.Unlock()

	utils.GetLogger().Info("notification published",
		zap.String("kind", string(kind)),
		zap.String("date", date),
		zap.String("time", timeOfDay),
	)
}

// Events returns the published events, most recent first.
func (s *DefaultSink) Events() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.events))
	copy(out, s.events)
	return out
}

package booking

import (
	"context"
	"time"

	"luxesalon/models"
)

// BookingSessionService drives the multi-step reservation flow: a draft is
// started, an outlet is fixed, then provider, date, time and services are
// composed in any order until the draft is confirmed into a reservation or
// cancelled. Every domain-rule rejection is returned as a *FlowError with
// the draft left untouched.
type BookingSessionService interface {
	StartSession(ctx context.Context, userID string) (*models.BookingSession, error)
	SelectOutlet(ctx context.Context, sessionID, outletID string) (*models.BookingSession, error)
	SelectProvider(ctx context.Context, sessionID, providerID string) (*models.BookingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	SelectTime(ctx context.Context, sessionID, timeOfDay string) (*models.BookingSession, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error)
	SetCalendarView(ctx context.Context, sessionID string, month time.Month, year int) (*models.BookingSession, error)
	AvailableTimes(ctx context.Context, sessionID string) ([]string, error)
	TotalPrice(ctx context.Context, sessionID string) (float64, error)
	Confirm(ctx context.Context, sessionID string) (*models.Reservation, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler enqueues an appointment reminder for a confirmed
// reservation. Scheduling is best-effort at confirm time.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, r models.Reservation) error
}

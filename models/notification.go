package models

import "time"

// NotificationKind labels the event a notification was published for.
type NotificationKind string

const (
	NotifyBookingCreated   NotificationKind = "booking_created"
	NotifyBookingCancelled NotificationKind = "booking_cancelled"
	NotifyBookingReminder  NotificationKind = "booking_reminder"
)

// Notification is a one-way event emitted on committed state changes.
// Delivery is best-effort; the core never blocks on it.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Date      string           `json:"date,omitempty"` // reservation date, "2006-01-02"
	Time      string           `json:"time,omitempty"` // reservation time, "HH:MM"
	CreatedAt time.Time        `json:"createdAt"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	UserID        string `json:"userId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

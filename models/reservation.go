package models

import "time"

// ReservationStatus is the lifecycle state of a committed reservation.
type ReservationStatus string

const (
	StatusUpcoming  ReservationStatus = "upcoming"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a committed appointment. It is created by the booking
// session on confirmation and owned by the reservation service afterwards;
// the only permitted mutation is a status transition.
type Reservation struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	OutletID   string            `json:"outletId"`
	ProviderID string            `json:"providerId"` // may be ProviderNoPreference
	ServiceIDs []string          `json:"serviceIds"` // non-empty
	Date       string            `json:"date"`       // "2006-01-02"
	Time       string            `json:"time"`       // "HH:MM"
	Status     ReservationStatus `json:"status"`
	TotalPrice float64           `json:"totalPrice"`
	CreatedAt  time.Time         `json:"createdAt"`
}

package models

import "time"

// BookingStep identifies the stage of an in-progress booking session.
type BookingStep string

const (
	// StepOutlet: session created, nothing fixed yet.
	StepOutlet BookingStep = "outlet"
	// StepDetails: outlet fixed; provider, date, time and services are
	// composed in any order until the session is confirmed.
	StepDetails BookingStep = "details"
)

// BookingSession holds the transient draft of a reservation while the
// customer walks through the booking flow. It exists only between start and
// confirm/cancel and is never persisted alongside committed reservations.
type BookingSession struct {
	SessionID  string      `json:"sessionId"`
	UserID     string      `json:"userId"`
	Step       BookingStep `json:"step"`
	OutletID   string      `json:"outletId,omitempty"`
	ProviderID string      `json:"providerId,omitempty"` // "" = unset, ProviderNoPreference = any
	Date       string      `json:"date,omitempty"`       // "2006-01-02"
	Time       string      `json:"time,omitempty"`       // "HH:MM"
	ServiceIDs []string    `json:"serviceIds,omitempty"`

	// Calendar view cursor; changing it never touches the committed selection.
	ViewMonth time.Month `json:"viewMonth"`
	ViewYear  int        `json:"viewYear"`
}

// HasService reports whether the given service id is currently toggled on.
func (s *BookingSession) HasService(id string) bool {
	for _, sid := range s.ServiceIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// Complete reports whether the draft satisfies every precondition for
// confirmation: outlet, date, time and at least one service.
func (s *BookingSession) Complete() bool {
	return s.OutletID != "" && s.Date != "" && s.Time != "" && len(s.ServiceIDs) > 0
}

package booking

import (
	"context"
	"fmt"
	"time"

	"luxesalon/models"
	"luxesalon/services/catalog"
	"luxesalon/services/reservation"
	"luxesalon/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingSessionService implements BookingSessionService over the
// catalog, a session store for drafts and the reservation service for
// commits.
type DefaultBookingSessionService struct {
	Catalog      catalog.CatalogService
	Sessions     SessionStore
	Reservations reservation.ReservationService
	Reminders    ReminderScheduler // optional

	// Injectable for deterministic tests.
	IDGen func() string
	Now   func() time.Time
}

// NewDefaultBookingSessionService wires the service with uuid ids and wall
// clock time.
func NewDefaultBookingSessionService(cat catalog.CatalogService, sessions SessionStore, reservations reservation.ReservationService) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Catalog:      cat,
		Sessions:     sessions,
		Reservations: reservations,
		IDGen:        func() string { return uuid.New().String() },
		Now:          time.Now,
	}
}

// StartSession creates a fresh draft for the user with the calendar view
// cursor on the current month.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, userID string) (*models.BookingSession, error) {
	now := s.Now()
	session := &models.BookingSession{
		SessionID: s.IDGen(),
		UserID:    userID,
		Step:      models.StepOutlet,
		ViewMonth: now.Month(),
		ViewYear:  now.Year(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start booking session: %w", err)
	}
	return session, nil
}

// SelectOutlet fixes the outlet and moves the draft into the details step.
func (s *DefaultBookingSessionService) SelectOutlet(ctx context.Context, sessionID, outletID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Catalog.OutletByID(outletID); !ok {
		return nil, ErrUnknownOutlet
	}
	if session.OutletID == outletID && session.Step == models.StepDetails {
		return session, nil
	}

	session.OutletID = outletID
	session.Step = models.StepDetails
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save booking session: %w", err)
	}
	return session, nil
}

// SelectProvider sets the provider preference. Reselecting the current value
// is a no-op. A change keeps the chosen date but revalidates the chosen time
// against the new availability set, clearing it when it is no longer offered.
func (s *DefaultBookingSessionService) SelectProvider(ctx context.Context, sessionID, providerID string) (*models.BookingSession, error) {
	session, err := s.detailsSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if providerID != models.ProviderNoPreference {
		if _, ok := s.Catalog.ProviderByID(providerID); !ok {
			return nil, ErrUnknownProvider
		}
	}
	if session.ProviderID == providerID {
		return session, nil
	}

	session.ProviderID = providerID
	if session.Time != "" {
		slots := ResolveSlots(s.Catalog.Providers(), providerID)
		if !containsSlot(slots, session.Time) {
			utils.GetLogger().Debug("clearing stale time selection",
				zap.String("sessionID", session.SessionID),
				zap.String("time", session.Time),
				zap.String("providerID", providerID))
			session.Time = ""
		}
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save booking session: %w", err)
	}
	return session, nil
}

// SelectDate sets the appointment date. Dates strictly before today are
// never selectable.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.detailsSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, perr := time.Parse(dateLayout, date); perr != nil {
		return nil, ErrBadDate
	}
	if IsPastDate(date, s.Now()) {
		return nil, ErrPastDate
	}
	if session.Date == date {
		return session, nil
	}

	session.Date = date
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save booking session: %w", err)
	}
	return session, nil
}

// SelectTime sets the appointment time. It must be in the availability set
// of the current provider selection.
func (s *DefaultBookingSessionService) SelectTime(ctx context.Context, sessionID, timeOfDay string) (*models.BookingSession, error) {
	session, err := s.detailsSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	slots := ResolveSlots(s.Catalog.Providers(), session.ProviderID)
	if !containsSlot(slots, timeOfDay) {
		return nil, ErrSlotUnavailable
	}
	if session.Time == timeOfDay {
		return session, nil
	}

	session.Time = timeOfDay
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save booking session: %w", err)
	}
	return session, nil
}

// ToggleService adds the service if absent and removes it if present.
func (s *DefaultBookingSessionService) ToggleService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error) {
	session, err := s.detailsSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Catalog.ServiceByID(serviceID); !ok {
		return nil, ErrUnknownService
	}

	if session.HasService(serviceID) {
		kept := session.ServiceIDs[:0]
		for _, id := range session.ServiceIDs {
			if id != serviceID {
				kept = append(kept, id)
			}
		}
		session.ServiceIDs = kept
	} else {
		session.ServiceIDs = append(session.ServiceIDs, serviceID)
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save booking session: %w", err)
	}
	return session, nil
}

// SetCalendarView moves the view cursor. The cursor is display state only
// and never touches the committed selection. Years beyond the navigable
// horizon are rejected.
func (s *DefaultBookingSessionService) SetCalendarView(ctx context.Context, sessionID string, month time.Month, year int) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !viewInRange(year, month, s.Now()) {
		return nil, ErrViewOutOfRange
	}
	if session.ViewMonth == month && session.ViewYear == year {
		return session, nil
	}

	session.ViewMonth = month
	session.ViewYear = year
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save booking session: %w", err)
	}
	return session, nil
}

// AvailableTimes derives the candidate times for the draft's current
// provider selection. Recomputed on demand, never cached.
func (s *DefaultBookingSessionService) AvailableTimes(ctx context.Context, sessionID string) ([]string, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ResolveSlots(s.Catalog.Providers(), session.ProviderID), nil
}

// TotalPrice derives the draft total from the currently toggled services.
func (s *DefaultBookingSessionService) TotalPrice(ctx context.Context, sessionID string) (float64, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return s.total(session), nil
}

// Confirm commits a complete draft: a reservation is built, handed to the
// reservation service (which persists it and publishes the created event), a
// reminder is scheduled best-effort, and the draft is discarded. An
// incomplete draft refuses with ErrIncompleteDraft and stays as it was.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string) (*models.Reservation, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Complete() {
		return nil, ErrIncompleteDraft
	}

	providerID := session.ProviderID
	if providerID == "" {
		providerID = models.ProviderNoPreference
	}
	res := models.Reservation{
		ID:         s.IDGen(),
		UserID:     session.UserID,
		OutletID:   session.OutletID,
		ProviderID: providerID,
		ServiceIDs: append([]string(nil), session.ServiceIDs...),
		Date:       session.Date,
		Time:       session.Time,
		Status:     models.StatusUpcoming,
		TotalPrice: s.total(session),
		CreatedAt:  s.Now(),
	}

	if err := s.Reservations.Add(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, res); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard confirmed session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	utils.GetLogger().Info("reservation confirmed",
		zap.String("reservationID", res.ID),
		zap.String("date", res.Date),
		zap.String("time", res.Time),
		zap.Float64("totalPrice", res.TotalPrice))
	return &res, nil
}

// CancelSession discards the draft with no effect on committed reservations.
// Unknown session ids are ignored.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// detailsSession loads the session and requires the outlet step to be done.
func (s *DefaultBookingSessionService) detailsSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDetails {
		return nil, ErrOutletNotChosen
	}
	return session, nil
}

func (s *DefaultBookingSessionService) total(session *models.BookingSession) float64 {
	var total float64
	for _, svc := range s.Catalog.ServicesByIDs(session.ServiceIDs) {
		total += svc.Price
	}
	return total
}

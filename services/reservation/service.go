package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"luxesalon/database"
	"luxesalon/models"
	"luxesalon/services/notification"
	"luxesalon/utils"

	"go.uber.org/zap"
)

// DefaultReservationService implements ReservationService over a BlobStore.
type DefaultReservationService struct {
	Store database.BlobStore
	Sink  notification.Sink

	mu           sync.RWMutex
	reservations []models.Reservation
}

// Load reads the persisted collection. A missing key means no prior history.
func (s *DefaultReservationService) Load(ctx context.Context) error {
	blob, err := s.Store.Load(ctx, database.KeyReservations)
	if err != nil {
		if err == database.ErrKeyNotFound {
			return nil
		}
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	var loaded []models.Reservation
	if err := json.Unmarshal(blob, &loaded); err != nil {
		return fmt.Errorf("failed to parse reservations: %w", err)
	}

	s.mu.Lock()
	s.reservations = loaded
	s.mu.Unlock()
	return nil
}

// Add prepends the reservation, persists the full collection and publishes a
// booking_created event carrying the reservation's date and time.
func (s *DefaultReservationService) Add(ctx context.Context, r models.Reservation) error {
	s.mu.Lock()
	s.reservations = append([]models.Reservation{r}, s.reservations...)
	s.mu.Unlock()

	err := s.persist(ctx)

	// The state change is already committed in memory; the sink is
	// best-effort either way.
	s.Sink.Publish(models.NotifyBookingCreated, r.Date, r.Time)
	return err
}

// Cancel flips the reservation's status to cancelled and persists. The
// record is retained for booking history rather than removed. An unknown or
// already-cancelled id is a silent no-op: no persist, no event.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	var cancelled *models.Reservation
	for i := range s.reservations {
		if s.reservations[i].ID == id && s.reservations[i].Status != models.StatusCancelled {
			s.reservations[i].Status = models.StatusCancelled
			cancelled = &s.reservations[i]
			break
		}
	}
	s.mu.Unlock()

	if cancelled == nil {
		return nil
	}

	err := s.persist(ctx)
	s.Sink.Publish(models.NotifyBookingCancelled, cancelled.Date, cancelled.Time)
	return err
}

// All returns the full collection in store order, most recent first.
func (s *DefaultReservationService) All() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// ByStatus returns reservations with the given status, preserving store order.
func (s *DefaultReservationService) ByStatus(status models.ReservationStatus) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Reservation
	for _, r := range s.reservations {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Upcoming is shorthand for ByStatus(StatusUpcoming).
func (s *DefaultReservationService) Upcoming() []models.Reservation {
	return s.ByStatus(models.StatusUpcoming)
}

// MarkCompleted transitions upcoming reservations dated strictly before
// today to completed. Persists only when something changed. Dates are ISO
// yyyy-mm-dd so plain string comparison orders them correctly.
func (s *DefaultReservationService) MarkCompleted(ctx context.Context, today time.Time) error {
	cutoff := today.Format("2006-01-02")

	s.mu.Lock()
	changed := 0
	for i := range s.reservations {
		r := &s.reservations[i]
		if r.Status == models.StatusUpcoming && r.Date < cutoff {
			r.Status = models.StatusCompleted
			changed++
		}
	}
	s.mu.Unlock()

	if changed == 0 {
		return nil
	}
	utils.GetLogger().Info("reservations completed", zap.Int("count", changed))
	return s.persist(ctx)
}

// persist writes the whole collection through to the store. On failure the
// in-memory state is kept and diverges from the persisted state until the
// store recovers.
func (s *DefaultReservationService) persist(ctx context.Context) error {
	s.mu.RLock()
	blob, err := json.Marshal(s.reservations)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal reservations: %w", err)
	}

	if err := s.Store.Save(ctx, database.KeyReservations, blob); err != nil {
		return fmt.Errorf("failed to persist reservations: %w", err)
	}
	return nil
}

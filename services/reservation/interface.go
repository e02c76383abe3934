package reservation

import (
	"context"
	"time"

	"luxesalon/models"
)

// ReservationService owns the committed reservation collection. The
// collection is held in memory ordered most-recent-first, and every mutation
// is written through to the backing store as a single serialized blob before
// the call returns.
type ReservationService interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, r models.Reservation) error
	Cancel(ctx context.Context, id string) error
	All() []models.Reservation
	ByStatus(status models.ReservationStatus) []models.Reservation
	Upcoming() []models.Reservation
	MarkCompleted(ctx context.Context, today time.Time) error
}

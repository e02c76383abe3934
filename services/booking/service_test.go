package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"luxesalon/database/memory"
	"luxesalon/models"
	"luxesalon/services/catalog"
	"luxesalon/services/notification"
	"luxesalon/services/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

type wizardFixture struct {
	svc   *DefaultBookingSessionService
	store *reservation.DefaultReservationService
	sink  *notification.DefaultSink
}

func newWizardFixture(t *testing.T) *wizardFixture {
	t.Helper()

	sink := notification.NewDefaultSink()
	sink.Now = func() time.Time { return testNow }

	seq := 0
	sink.IDGen = func() string { seq++; return fmt.Sprintf("n-%d", seq) }

	store := &reservation.DefaultReservationService{
		Store: memory.NewStore(),
		Sink:  sink,
	}

	svc := NewDefaultBookingSessionService(catalog.NewSeededCatalogService(), NewMemorySessionStore(), store)
	svc.Now = func() time.Time { return testNow }

	ids := 0
	svc.IDGen = func() string { ids++; return fmt.Sprintf("id-%d", ids) }

	return &wizardFixture{svc: svc, store: store, sink: sink}
}

// startDetails starts a session and fixes the downtown outlet.
func (f *wizardFixture) startDetails(t *testing.T) *models.BookingSession {
	t.Helper()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, models.StepOutlet, session.Step)

	session, err = f.svc.SelectOutlet(ctx, session.SessionID, "o1")
	require.NoError(t, err)
	require.Equal(t, models.StepDetails, session.Step)
	return session
}

func TestBookingFlowEndToEnd(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.SelectProvider(ctx, session.SessionID, models.ProviderNoPreference)
	require.NoError(t, err)

	_, err = f.svc.SelectDate(ctx, session.SessionID, "2025-06-10")
	require.NoError(t, err)

	_, err = f.svc.SelectTime(ctx, session.SessionID, "09:00")
	require.NoError(t, err)

	for _, id := range []string{"1", "3"} {
		_, err = f.svc.ToggleService(ctx, session.SessionID, id)
		require.NoError(t, err)
	}

	total, err := f.svc.TotalPrice(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 165.00, total)

	res, err := f.svc.Confirm(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, res.Status)
	assert.Equal(t, 165.00, res.TotalPrice)
	assert.Equal(t, "o1", res.OutletID)
	assert.Equal(t, models.ProviderNoPreference, res.ProviderID)
	assert.Equal(t, "2025-06-10", res.Date)
	assert.Equal(t, "09:00", res.Time)
	assert.Equal(t, []string{"1", "3"}, res.ServiceIDs)

	// Prepended to the store.
	all := f.store.All()
	require.Len(t, all, 1)
	assert.Equal(t, *res, all[0])

	// Created event published with the reservation's date and time.
	events := f.sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, models.NotifyBookingCreated, events[0].Kind)
	assert.Equal(t, "2025-06-10", events[0].Date)
	assert.Equal(t, "09:00", events[0].Time)

	// Draft discarded on commit.
	_, err = f.svc.TotalPrice(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmRefusedWhenIncomplete(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	// Outlet and date set, time and services missing.
	_, err := f.svc.SelectDate(ctx, session.SessionID, "2025-06-10")
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrIncompleteDraft)

	// Draft untouched by the refused confirmation.
	after, err := f.svc.Sessions.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, after.Step)
	assert.Equal(t, "2025-06-10", after.Date)
	assert.Empty(t, after.Time)
	assert.Empty(t, after.ServiceIDs)
	assert.Empty(t, f.store.All())
	assert.Empty(t, f.sink.Events())
}

func TestToggleServiceIsSymmetric(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.ToggleService(ctx, session.SessionID, "1")
	require.NoError(t, err)

	before, err := f.svc.TotalPrice(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 45.00, before)

	// Toggling the same id twice restores the original set and price.
	_, err = f.svc.ToggleService(ctx, session.SessionID, "4")
	require.NoError(t, err)
	after, err := f.svc.ToggleService(ctx, session.SessionID, "4")
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, after.ServiceIDs)
	total, err := f.svc.TotalPrice(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, before, total)
}

func TestProviderChangeRevalidatesTime(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.SelectProvider(ctx, session.SessionID, "s2")
	require.NoError(t, err)
	_, err = f.svc.SelectDate(ctx, session.SessionID, "2025-06-10")
	require.NoError(t, err)
	_, err = f.svc.SelectTime(ctx, session.SessionID, "09:30")
	require.NoError(t, err)

	// 09:30 is not offered by s1: the time is cleared, the date survives.
	after, err := f.svc.SelectProvider(ctx, session.SessionID, "s1")
	require.NoError(t, err)
	assert.Empty(t, after.Time)
	assert.Equal(t, "2025-06-10", after.Date)

	// A time the new provider also offers survives the switch.
	_, err = f.svc.SelectTime(ctx, session.SessionID, "09:00")
	require.NoError(t, err)
	after, err = f.svc.SelectProvider(ctx, session.SessionID, "s3")
	require.NoError(t, err)
	assert.Equal(t, "09:00", after.Time)
}

func TestSelectProviderIdempotent(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	first, err := f.svc.SelectProvider(ctx, session.SessionID, "s2")
	require.NoError(t, err)
	second, err := f.svc.SelectProvider(ctx, session.SessionID, "s2")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelectDateRejectsPastAndMalformed(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.SelectDate(ctx, session.SessionID, "2025-05-31")
	assert.ErrorIs(t, err, ErrPastDate)

	_, err = f.svc.SelectDate(ctx, session.SessionID, "31-05-2025")
	assert.ErrorIs(t, err, ErrBadDate)

	after, err := f.svc.Sessions.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, after.Date, "rejected selections leave the draft unchanged")
}

func TestSelectTimeOutsideAvailability(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.SelectProvider(ctx, session.SessionID, "s1")
	require.NoError(t, err)

	_, err = f.svc.SelectTime(ctx, session.SessionID, "09:30")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestDetailSelectionsRequireOutlet(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, "u1")
	require.NoError(t, err)

	_, err = f.svc.SelectDate(ctx, session.SessionID, "2025-06-10")
	assert.ErrorIs(t, err, ErrOutletNotChosen)
	_, err = f.svc.SelectProvider(ctx, session.SessionID, "s1")
	assert.ErrorIs(t, err, ErrOutletNotChosen)
	_, err = f.svc.ToggleService(ctx, session.SessionID, "1")
	assert.ErrorIs(t, err, ErrOutletNotChosen)
}

func TestUnknownCatalogReferences(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.SelectOutlet(ctx, session.SessionID, "o9")
	assert.ErrorIs(t, err, ErrUnknownOutlet)
	_, err = f.svc.SelectProvider(ctx, session.SessionID, "s9")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	_, err = f.svc.ToggleService(ctx, session.SessionID, "9")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestSetCalendarView(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	_, err := f.svc.SelectDate(ctx, session.SessionID, "2025-06-10")
	require.NoError(t, err)

	// Moving the view cursor never touches the committed selection.
	after, err := f.svc.SetCalendarView(ctx, session.SessionID, time.December, 2026)
	require.NoError(t, err)
	assert.Equal(t, time.December, after.ViewMonth)
	assert.Equal(t, 2026, after.ViewYear)
	assert.Equal(t, "2025-06-10", after.Date)

	// The horizon is today's year plus two.
	_, err = f.svc.SetCalendarView(ctx, session.SessionID, time.January, 2028)
	assert.ErrorIs(t, err, ErrViewOutOfRange)
	_, err = f.svc.SetCalendarView(ctx, session.SessionID, time.January, 2024)
	assert.ErrorIs(t, err, ErrViewOutOfRange)
}

func TestCancelSessionDiscardsDraft(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	session := f.startDetails(t)

	require.NoError(t, f.svc.CancelSession(ctx, session.SessionID))

	_, err := f.svc.Sessions.Get(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, f.store.All(), "cancelling a draft never touches committed reservations")

	// Unknown ids are ignored.
	assert.NoError(t, f.svc.CancelSession(ctx, "missing"))
}

func TestStartSessionViewCursor(t *testing.T) {
	f := newWizardFixture(t)

	session, err := f.svc.StartSession(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, time.June, session.ViewMonth)
	assert.Equal(t, 2025, session.ViewYear)
	assert.Equal(t, "id-1", session.SessionID)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"luxesalon/models"
	"luxesalon/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session flow over HTTP.
type BookingHandler struct {
	Svc    booking.BookingSessionService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// StartSession creates a new booking draft for the authenticated user.
func (h *BookingHandler) StartSession(c *gin.Context) {
	userID := c.GetString("userID")
	session, err := h.Svc.StartSession(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession applies one selection to the draft. The body carries
// exactly one field: outletId, providerId, date, time or serviceId
// (toggled), or a view {month, year} pair.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		OutletID   string `json:"outletId"`
		ProviderID string `json:"providerId"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		ServiceID  string `json:"serviceId"`
		ViewMonth  int    `json:"viewMonth"`
		ViewYear   int    `json:"viewYear"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		session *models.BookingSession
		err     error
	)
	switch {
	case input.OutletID != "":
		session, err = h.Svc.SelectOutlet(ctx, sessionID, input.OutletID)
	case input.ProviderID != "":
		session, err = h.Svc.SelectProvider(ctx, sessionID, input.ProviderID)
	case input.Date != "":
		session, err = h.Svc.SelectDate(ctx, sessionID, input.Date)
	case input.Time != "":
		session, err = h.Svc.SelectTime(ctx, sessionID, input.Time)
	case input.ServiceID != "":
		session, err = h.Svc.ToggleService(ctx, sessionID, input.ServiceID)
	case input.ViewMonth != 0 && input.ViewYear != 0:
		session, err = h.Svc.SetCalendarView(ctx, sessionID, time.Month(input.ViewMonth), input.ViewYear)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "no selection in request body"})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AvailableTimes returns the candidate times for the draft's provider
// selection together with the current draft total.
func (h *BookingHandler) AvailableTimes(c *gin.Context) {
	sessionID := c.Param("sessionID")
	ctx := c.Request.Context()

	slots, err := h.Svc.AvailableTimes(ctx, sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	total, err := h.Svc.TotalPrice(ctx, sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableTimes": slots, "totalPrice": total})
}

// ConfirmBooking commits the draft into a reservation.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	res, err := h.Svc.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

// CancelSession discards the draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) fail(c *gin.Context, err error) {
	var fe *booking.FlowError
	if errors.As(err, &fe) {
		status := http.StatusBadRequest
		switch fe {
		case booking.ErrSessionNotFound:
			status = http.StatusNotFound
		case booking.ErrIncompleteDraft, booking.ErrOutletNotChosen:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": fe.Message, "code": fe.Code})
		return
	}
	h.Logger.Error("booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

package handlers

import (
	"net/http"

	"luxesalon/models"
	"luxesalon/services/reservation"
	"luxesalon/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes the committed reservation collection.
type ReservationHandler struct {
	Svc reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Svc: svc}
}

// ListReservations returns the collection, optionally filtered by status.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusOK, gin.H{"reservations": h.Svc.All()})
		return
	}
	switch models.ReservationStatus(status) {
	case models.StatusUpcoming, models.StatusCompleted, models.StatusCancelled:
		c.JSON(http.StatusOK, gin.H{"reservations": h.Svc.ByStatus(models.ReservationStatus(status))})
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown status", status)
	}
}

// CancelReservation cancels by id. Unknown ids succeed silently; the
// operation is a no-op then.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

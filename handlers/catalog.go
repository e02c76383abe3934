package handlers

import (
	"net/http"
	"strconv"
	"time"

	"luxesalon/services/booking"
	"luxesalon/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only reference data and the calendar
// surface derived from it.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Svc.Services()})
}

func (h *CatalogHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.Svc.Providers()})
}

func (h *CatalogHandler) ListOutlets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"outlets": h.Svc.Outlets()})
}

// Calendar returns the days of the requested month with each day's past
// flag, plus the navigable month and year options.
func (h *CatalogHandler) Calendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return
	}

	today := time.Now()
	type day struct {
		Date string `json:"date"`
		Past bool   `json:"past"`
	}
	var days []day
	for _, d := range booking.DaysInMonth(year, time.Month(monthNum)) {
		days = append(days, day{Date: d, Past: booking.IsPastDate(d, today)})
	}

	c.JSON(http.StatusOK, gin.H{
		"days":   days,
		"months": booking.MonthOptions(),
		"years":  booking.YearOptions(today),
	})
}

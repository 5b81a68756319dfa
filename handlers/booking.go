package handlers

import (
	"net/http"

	"hdmonks/models"
	"hdmonks/services/booking"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves timeslots and consultation bookings.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// ListAvailableSlots answers GET /api/timeslots?date=YYYY-MM-DD.
func (h *BookingHandler) ListAvailableSlots(c *gin.Context) {
	slots, err := h.Svc.ListAvailableSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slots, "")
}

// Reserve answers POST /api/booking.
func (h *BookingHandler) Reserve(c *gin.Context) {
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.Svc.Reserve(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Info("Booking rejected", zap.String("timeslotID", req.TimeSlotID), zap.Error(err))
		respondError(c, err)
		return
	}
	message := "Booking confirmed"
	if result.Warning != "" {
		message = result.Warning
	}
	utils.JSONSuccess(c, http.StatusCreated, result.Booking, message)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	skip, limit := pagination(c)
	bookings, err := h.Svc.ListBookings(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings, "")
}

// SetStatus answers PUT /api/admin/bookings/:id/status?status=...
func (h *BookingHandler) SetStatus(c *gin.Context) {
	status, err := models.ParseBookingStatus(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	b, err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b, "Booking status updated")
}

func (h *BookingHandler) ListAllSlots(c *gin.Context) {
	slots, err := h.Svc.ListAllSlots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slots, "")
}

func (h *BookingHandler) CreateSlot(c *gin.Context) {
	var req models.TimeSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	slot, err := h.Svc.CreateSlot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, slot, "Time slot created")
}

func (h *BookingHandler) UpdateSlot(c *gin.Context) {
	var req models.TimeSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	slot, err := h.Svc.UpdateSlot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slot, "Time slot updated")
}

func (h *BookingHandler) DeleteSlot(c *gin.Context) {
	if err := h.Svc.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, "Time slot deleted")
}

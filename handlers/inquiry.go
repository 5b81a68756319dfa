package handlers

import (
	"net/http"

	"hdmonks/models"
	"hdmonks/services/inquiry"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	Svc inquiry.InquiryService
}

func NewInquiryHandler(svc inquiry.InquiryService) *InquiryHandler {
	return &InquiryHandler{Svc: svc}
}

// Submit answers POST /api/contact.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req models.InquiryRequest
	if !bindJSON(c, &req) {
		return
	}
	inq, warning, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "Thank you for contacting us. We will get back to you soon."
	if warning != "" {
		message = warning
	}
	utils.JSONSuccess(c, http.StatusCreated, inq, message)
}

func (h *InquiryHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	inquiries, err := h.Svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inquiries, "")
}

func (h *InquiryHandler) SetStatus(c *gin.Context) {
	status, err := models.ParseInquiryStatus(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	inq, err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inq, "Inquiry status updated")
}

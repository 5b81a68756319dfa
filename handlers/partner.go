package handlers

import (
	"net/http"

	"hdmonks/middleware"
	"hdmonks/models"
	"hdmonks/services/ledger"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
)

// PartnerHandler serves a partner's clients and revenue ledger. Every
// route runs behind the partner session middleware.
type PartnerHandler struct {
	Svc ledger.LedgerService
}

func NewPartnerHandler(svc ledger.LedgerService) *PartnerHandler {
	return &PartnerHandler{Svc: svc}
}

func partnerID(c *gin.Context) (string, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok || s.Role != models.RolePartner {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
		return "", false
	}
	return s.PrincipalID, true
}

func (h *PartnerHandler) ListClients(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	clients, err := h.Svc.ListClients(c.Request.Context(), pid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, clients, "")
}

func (h *PartnerHandler) GetClient(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	client, err := h.Svc.GetClient(c.Request.Context(), pid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client, "")
}

func (h *PartnerHandler) CreateClient(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	var req models.ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.Svc.CreateClient(c.Request.Context(), pid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client, "Client created")
}

func (h *PartnerHandler) UpdateClient(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	var req models.ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.Svc.UpdateClient(c.Request.Context(), pid, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client, "Client updated")
}

func (h *PartnerHandler) DeleteClient(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteClient(c.Request.Context(), pid, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, "Client deleted")
}

func (h *PartnerHandler) AddService(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	var req models.ClientServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	line, err := h.Svc.AddService(c.Request.Context(), pid, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, line, "Service added")
}

func (h *PartnerHandler) UpdateService(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	var upd models.ClientServiceUpdate
	if !bindJSON(c, &upd) {
		return
	}
	client, err := h.Svc.UpdateService(c.Request.Context(), pid, c.Param("id"), c.Param("service_id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client, "Service updated")
}

func (h *PartnerHandler) RemoveService(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveService(c.Request.Context(), pid, c.Param("id"), c.Param("service_id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, "Service removed")
}

func (h *PartnerHandler) Revenue(c *gin.Context) {
	pid, ok := partnerID(c)
	if !ok {
		return
	}
	summary, err := h.Svc.RevenueSummary(c.Request.Context(), pid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary, "")
}

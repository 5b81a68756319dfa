package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"hdmonks/models"
	"hdmonks/services/catalog"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func stageID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: stage id must be a number", models.ErrValidation))
		return 0, false
	}
	return id, true
}

func (h *CatalogHandler) ListStages(c *gin.Context) {
	stages, err := h.Svc.ListStages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stages, "")
}

func (h *CatalogHandler) GetStage(c *gin.Context) {
	id, ok := stageID(c)
	if !ok {
		return
	}
	stage, err := h.Svc.GetStage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stage, "")
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc, "")
}

func (h *CatalogHandler) CreateStage(c *gin.Context) {
	var req models.StageRequest
	if !bindJSON(c, &req) {
		return
	}
	stage, err := h.Svc.CreateStage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, stage, "Stage created")
}

func (h *CatalogHandler) UpdateStage(c *gin.Context) {
	id, ok := stageID(c)
	if !ok {
		return
	}
	var upd models.StageUpdate
	if !bindJSON(c, &upd) {
		return
	}
	stage, err := h.Svc.UpdateStage(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stage, "Stage updated")
}

func (h *CatalogHandler) DeleteStage(c *gin.Context) {
	id, ok := stageID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteStage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, "Stage deleted")
}

func (h *CatalogHandler) AddService(c *gin.Context) {
	id, ok := stageID(c)
	if !ok {
		return
	}
	var svc models.Service
	if !bindJSON(c, &svc) {
		return
	}
	added, err := h.Svc.AddService(c.Request.Context(), id, svc)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, added, "Service added")
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := stageID(c)
	if !ok {
		return
	}
	var upd models.ServiceUpdate
	if !bindJSON(c, &upd) {
		return
	}
	svc, err := h.Svc.UpdateService(c.Request.Context(), id, c.Param("service_id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc, "Service updated")
}

func (h *CatalogHandler) RemoveService(c *gin.Context) {
	id, ok := stageID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveService(c.Request.Context(), id, c.Param("service_id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, "Service removed")
}

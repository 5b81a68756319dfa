package handlers

import (
	"io"
	"net/http"

	contentRepo "hdmonks/database/repository/content"
	"hdmonks/services/content"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler exposes one content collection. Public reads only see
// published records.
type ContentHandler[T any, P contentRepo.ContentPtr[T]] struct {
	Svc *content.ContentService[T, P]
	// Label is used in response messages, e.g. "Blog".
	Label string
}

func NewContentHandler[T any, P contentRepo.ContentPtr[T]](svc *content.ContentService[T, P], label string) *ContentHandler[T, P] {
	return &ContentHandler[T, P]{Svc: svc, Label: label}
}

func (h *ContentHandler[T, P]) ListPublished(c *gin.Context) {
	h.list(c, true)
}

func (h *ContentHandler[T, P]) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *ContentHandler[T, P]) list(c *gin.Context, publishedOnly bool) {
	docs, err := h.Svc.List(c.Request.Context(), publishedOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, docs, "")
}

// GetBySlug serves GET /api/blogs/:slug.
func (h *ContentHandler[T, P]) GetBySlug(c *gin.Context) {
	doc, err := h.Svc.GetPublished(c.Request.Context(), "slug", c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, doc, "")
}

func (h *ContentHandler[T, P]) Get(c *gin.Context) {
	doc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, doc, "")
}

func (h *ContentHandler[T, P]) Create(c *gin.Context) {
	doc := new(T)
	if !bindJSON(c, doc) {
		return
	}
	created, err := h.Svc.Create(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created, h.Label+" created")
}

func (h *ContentHandler[T, P]) Update(c *gin.Context) {
	patch, err := io.ReadAll(c.Request.Body)
	if err != nil || len(patch) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: empty body")
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated, h.Label+" updated")
}

func (h *ContentHandler[T, P]) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, h.Label+" deleted")
}

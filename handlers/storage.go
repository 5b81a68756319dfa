package handlers

import (
	"io"
	"net/http"

	"hdmonks/services/storage"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler accepts admin image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadImage answers POST /api/admin/upload-image with a multipart "file".
func (h *StorageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided")
		return
	}
	if fileHeader.Size > storage.MaxImageSize {
		utils.JSONError(c, http.StatusBadRequest, "File size exceeds 5MB limit")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxImageSize+1))
	if err != nil {
		respondError(c, err)
		return
	}
	img, err := h.StorageSvc.UploadImage(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		getLogger(c).Warn("Image upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, img, "Image uploaded")
}

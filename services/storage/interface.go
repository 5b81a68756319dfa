package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"hdmonks/models"
)

const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// StorageService stores admin uploaded images and returns a URL the site
// can reference.
type StorageService interface {
	UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error)
}

// DetectImageType sniffs the content type of data and rejects anything
// other than JPEG, PNG, GIF or WebP, or files over MaxImageSize.
func DetectImageType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", models.ErrValidation)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: file exceeds 5MB limit", models.ErrValidation)
	}
	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" && isWebP(data) {
		contentType = "image/webp"
	}
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", fmt.Errorf("%w: unsupported file type %s, use JPEG, PNG, GIF or WebP", models.ErrValidation, contentType)
	}
	return contentType, nil
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

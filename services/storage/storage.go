package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"hdmonks/config"
	"hdmonks/models"
	"hdmonks/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const uploadFolder = "hdmonks"

// uploadFunc matches cloudinary's Upload.Upload so tests can replace it.
type uploadFunc func(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)

// CloudinaryStorage uploads images to Cloudinary.
type CloudinaryStorage struct {
	upload uploadFunc
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{upload: cld.Upload.Upload}, nil
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	contentType, err := DetectImageType(data)
	if err != nil {
		return nil, err
	}
	result, err := s.upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       uploadFolder,
		PublicID:     publicID(filename),
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	return &models.UploadedImage{
		URL:         result.SecureURL,
		PublicID:    result.PublicID,
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

// publicID keeps the upload's base name readable and suffixes it so two
// files with the same name never overwrite each other.
func publicID(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		name = "image"
	}
	return name + "-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// InlineStorage embeds images as base64 data URLs. It is used when
// Cloudinary credentials are not configured.
type InlineStorage struct{}

func (InlineStorage) UploadImage(_ context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	contentType, err := DetectImageType(data)
	if err != nil {
		return nil, err
	}
	return &models.UploadedImage{
		URL:         "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

// NewStorageService picks Cloudinary when configured, else inline data URLs.
func NewStorageService() StorageService {
	if !config.CloudinaryConfigured() {
		utils.GetLogger().Info("Cloudinary not configured, images will be stored as data URLs")
		return InlineStorage{}
	}
	cs, err := NewCloudinaryStorage(config.AppConfig.CloudinaryCloudName, config.AppConfig.CloudinaryAPIKey, config.AppConfig.CloudinaryAPISecret)
	if err != nil {
		utils.GetLogger().Error("Cloudinary init failed, falling back to data URLs", zap.Error(err))
		return InlineStorage{}
	}
	return cs
}

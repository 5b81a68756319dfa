package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hdmonks/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestDetectImageType(t *testing.T) {
	ct, err := DetectImageType(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	webp := append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), make([]byte, 16)...)
	ct, err = DetectImageType(webp)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", ct)

	_, err = DetectImageType([]byte("%PDF-1.7 not an image"))
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = DetectImageType(nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
	_, err = DetectImageType(big)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestInlineStorage(t *testing.T) {
	img, err := InlineStorage{}.UploadImage(context.Background(), "logo.png", pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.URL, "data:image/png;base64,"))
	assert.Equal(t, len(pngHeader), img.Size)
}

func TestCloudinaryStorage_UsesUploader(t *testing.T) {
	var got uploader.UploadParams
	cs := &CloudinaryStorage{upload: func(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
		got = params
		return &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/image/upload/hdmonks/logo.png", PublicID: "hdmonks/logo"}, nil
	}}

	img, err := cs.UploadImage(context.Background(), "logo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "hdmonks", got.Folder)
	assert.True(t, strings.HasPrefix(got.PublicID, "logo-"), got.PublicID)
	assert.Equal(t, "hdmonks/logo", img.PublicID)
	assert.Contains(t, img.URL, "res.cloudinary.com")

	cs.upload = func(context.Context, interface{}, uploader.UploadParams) (*uploader.UploadResult, error) {
		return nil, errors.New("network down")
	}
	_, err = cs.UploadImage(context.Background(), "logo.png", pngHeader)
	assert.Error(t, err)
}

func TestCloudinaryStorage_SameFilenameGetsDistinctIDs(t *testing.T) {
	var ids []string
	cs := &CloudinaryStorage{upload: func(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
		ids = append(ids, params.PublicID)
		return &uploader.UploadResult{PublicID: params.Folder + "/" + params.PublicID}, nil
	}}
	ctx := context.Background()

	first, err := cs.UploadImage(ctx, "image.png", pngHeader)
	require.NoError(t, err)
	second, err := cs.UploadImage(ctx, "image.png", append(append([]byte{}, pngHeader...), 0x01))
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, first.PublicID, second.PublicID)

	_, err = cs.UploadImage(ctx, "", pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ids[2], "image-"), ids[2])
}

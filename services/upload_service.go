package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/adanilkinca/techcockbar/config"
	"github.com/adanilkinca/techcockbar/minio"
	"github.com/adanilkinca/techcockbar/utils"
)

var (
	ErrUploadsDisabled = errors.New("media uploads are not configured")
	ErrUnsupportedType = errors.New("unsupported media type")
)

// contentTypeExt maps the accepted upload types to the stored extension.
var contentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// UploadMedia streams a multipart file into the media bucket. It returns the
// object key and the public URL to store in image_url/video_url.
func (s *UploadService) UploadMedia(ctx context.Context, header *multipart.FileHeader) (string, string, error) {
	if !minio.Enabled() {
		return "", "", ErrUploadsDisabled
	}
	contentType := header.Header.Get("Content-Type")
	ext, ok := contentTypeExt[contentType]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	file, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	objectName := uuid.NewString() + ext
	if err := utils.UploadObject(ctx, objectName, contentType, file, header.Size); err != nil {
		return "", "", err
	}
	url := utils.ObjectURL(config.MinioEndpoint, config.MinioBucket, objectName, config.MinioUseSSL)
	return objectName, url, nil
}

// DeleteMedia removes an uploaded object by its key.
func (s *UploadService) DeleteMedia(ctx context.Context, objectName string) error {
	if !minio.Enabled() {
		return ErrUploadsDisabled
	}
	return utils.DeleteObject(ctx, objectName)
}

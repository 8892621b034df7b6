package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"

	"github.com/adanilkinca/techcockbar/minio"
)

// UploadObject stores media content under the given object name.
func UploadObject(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// DeleteObject removes an uploaded object.
func DeleteObject(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}

// ObjectURL builds the public URL of an uploaded object, suitable for
// storing in a cocktail's image_url or video_url.
func ObjectURL(endpoint, bucket, objectName string, useSSL bool) string {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucket, objectName)
}

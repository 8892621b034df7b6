package minio

import (
	"context"
	"log"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/adanilkinca/techcockbar/config"
)

var Client *minioSDK.Client
var BucketName string

// Enabled reports whether a media store is configured. Uploads are an
// optional feature; without MINIO_ENDPOINT the API simply rejects them.
func Enabled() bool {
	return Client != nil
}

func InitMinio() {
	endpoint := config.MinioEndpoint
	if endpoint == "" {
		log.Println("MINIO_ENDPOINT not set, media uploads disabled")
		return
	}
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

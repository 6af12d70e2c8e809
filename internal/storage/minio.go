package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/itsd-lab/vendorgate/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
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
}

// NewObjectKey builds a per-upload unique object name keeping the original
// extension for content-type sniffing in browsers.
func NewObjectKey(projectID uint, formKey, fileName string) string {
	ext := ""
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		ext = fileName[i:]
	}
	return fmt.Sprintf("project-%d/%s/%s%s", projectID, formKey, uuid.New().String(), ext)
}

func UploadObject(ctx context.Context, objectName, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}
	_, err := Client.PutObject(ctx, BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func DownloadObject(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := Client.GetObject(ctx, BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func DeleteObject(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}

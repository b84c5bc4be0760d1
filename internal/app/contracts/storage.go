package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadBase64Image(ctx context.Context, encodedImage []byte, bucketName, fileName, fileExtension string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
	DeleteObject(ctx context.Context, bucketName, objectName string) error
}

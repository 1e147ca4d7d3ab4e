package chart

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/storage/v1"
)

// Uploader stores rendered figures in a cloud bucket and returns a stable
// public URL for each object.
type Uploader interface {
	Upload(ctx context.Context, objectName string, data []byte) (string, error)
}

type GCSUploader struct {
	service    *storage.Service
	bucket     string
	makePublic bool
}

func NewGCSUploader(ctx context.Context, bucket string, makePublic bool) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("no bucket name provided")
	}

	service, err := storage.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}

	return &GCSUploader{
		service:    service,
		bucket:     bucket,
		makePublic: makePublic,
	}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, objectName string, data []byte) (string, error) {
	object := &storage.Object{Name: objectName}
	call := u.service.Objects.Insert(u.bucket, object).
		Media(bytes.NewReader(data), googleapi.ContentType("image/png")).
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return "", fmt.Errorf("failed to upload figure: %w", err)
	}

	if u.makePublic {
		acl := &storage.ObjectAccessControl{
			Entity: "allUsers",
			Role:   "READER",
		}
		// Best effort; the URL may still resolve through bucket-level IAM.
		_, _ = u.service.ObjectAccessControls.Insert(u.bucket, objectName, acl).Context(ctx).Do()
	}

	return ObjectURL(u.bucket, objectName), nil
}

func ObjectURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName)
}

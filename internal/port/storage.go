package port

import (
	"context"
	"io"
)

// UploadInput describes an object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput describes a stored object.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage archives documents, most importantly the signed e-invoice
// JSON returned by the authority for each generated IRN.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	PresignDownload(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

package services

import (
	"context"
	"mime/multipart"

	"campus-connect/internal/pkg/upload"
)

// Uploader is the external media host boundary. The production
// implementation lives in internal/pkg/upload; tests substitute fakes.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*upload.Result, error)
	Destroy(ctx context.Context, publicID string) error
}

package ports

import (
	"context"
	"time"
)

// PresignedUpload é uma URL pré-assinada para envio direto ao object storage
type PresignedUpload struct {
	URL       string
	Method    string
	Key       string
	Headers   map[string]string
	ExpiresAt time.Time
}

// ObjectStorage emite URLs pré-assinadas
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error)
}

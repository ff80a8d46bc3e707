package dto

import "time"

// PresignUploadRequest pede uma URL de upload direto
type PresignUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=200"`
	ContentType string `json:"content_type" binding:"required,max=100"`
}

// PresignUploadResponse devolve a URL pré-assinada
type PresignUploadResponse struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Key       string            `json:"key"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

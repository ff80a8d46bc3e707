package services

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// UploadService emite URLs de upload direto ao object storage
type UploadService struct {
	storage ports.ObjectStorage
	logger  ports.Logger
}

// NewUploadService cria um novo UploadService
func NewUploadService(storage ports.ObjectStorage, logger ports.Logger) *UploadService {
	return &UploadService{storage: storage, logger: logger}
}

// PresignUpload gera uma URL PUT para <tenantId>/<uuid>-<fileName>
func (s *UploadService) PresignUpload(ctx context.Context, principal *entities.Principal, fileName, contentType string) (*ports.PresignedUpload, error) {
	if principal == nil {
		return nil, errors.ErrUnauthorized
	}

	key := ObjectKey(principal.TenantID, uuid.NewString(), fileName)
	upload, err := s.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		s.logger.Error("failed to presign upload", "key", key, "error", err)
		return nil, errors.Internal(err)
	}
	return upload, nil
}

// ObjectKey monta a chave do objeto. Apenas o nome base do arquivo é usado.
func ObjectKey(tenantID, id, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	if tenantID == "" {
		tenantID = "global"
	}
	return tenantID + "/" + id + "-" + name
}

package repositories

import (
	"context"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

// TenantRepository define a interface para persistência de tenants
type TenantRepository interface {
	// Create retorna errors.ErrDuplicateKey quando o domínio já existe
	Create(ctx context.Context, tenant *entities.Tenant) error
	FindByID(ctx context.Context, id string) (*entities.Tenant, error)
	FindByDomain(ctx context.Context, domain string) (*entities.Tenant, error)
	CountByDomain(ctx context.Context, domain string) (int64, error)
}

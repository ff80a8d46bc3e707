package repositories

import (
	"context"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// Create persiste o usuário e um registro de concessão por permissão em
	// user.Permissions. Violação de unicidade do email retorna errors.ErrDuplicateKey.
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	TenantID *string
	Role     *entities.Role
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}

package services

import (
	"context"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser busca um usuário por ID dentro do tenant do principal.
// Usuários de outro tenant são reportados como inexistentes.
func (s *UserService) GetUser(ctx context.Context, principal *entities.Principal, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to find user", "user_id", id, "error", err)
		return nil, errors.Internal(err)
	}
	if user == nil || !principal.CanAccessTenant(user.TenantID()) {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários do tenant do principal. Apenas super admin pode
// escolher outro tenant (ou nenhum) via filtro.
func (s *UserService) ListUsers(ctx context.Context, principal *entities.Principal, filters repositories.UserFilters) ([]*entities.User, error) {
	if principal == nil {
		return nil, errors.ErrUnauthorized
	}
	if !principal.IsSuperAdmin() {
		tenantID := principal.TenantID
		filters.TenantID = &tenantID
	}

	users, err := s.userRepo.List(ctx, filters)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, errors.Internal(err)
	}
	return users, nil
}

package services

import (
	"context"
	"strings"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
)

// AuthService autentica usuários e emite tokens de acesso
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenManager
	logger    ports.Logger
	dummyHash string
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	// hash usado quando o email não existe, para que a resposta leve o
	// mesmo tempo de uma senha errada
	dummyHash, err := hasher.Hash("federa-dummy-password")
	if err != nil {
		logger.Error("failed to prepare dummy password hash", "error", err)
	}

	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		dummyHash: dummyHash,
	}
}

// LoginResult contém o token emitido e o principal que ele representa
type LoginResult struct {
	Token     ports.IssuedToken
	Principal *entities.Principal
}

// Login verifica as credenciais e emite um token com as permissões
// concedidas ao usuário no momento
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("failed to find user for login", "error", err)
		return nil, domainerrors.Internal(err)
	}
	if user == nil {
		_ = s.hasher.Compare(s.dummyHash, password)
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("invalid password", "user_id", user.ID)
		return nil, domainerrors.ErrInvalidCredentials
	}

	principal := entities.NewPrincipal(
		user.ID,
		user.Email.String(),
		user.Role,
		user.TenantID(),
		user.TenantType(),
		user.Permissions,
	)

	token, err := s.tokens.Issue(principal)
	if err != nil {
		s.logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		return nil, domainerrors.Internal(err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "tenant_id", principal.TenantID)
	return &LoginResult{Token: token, Principal: principal}, nil
}

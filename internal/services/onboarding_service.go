package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
)

// DefaultTxTimeout limita cada transação de negócio
const DefaultTxTimeout = 10 * time.Second

const minPasswordLength = 8

// OnboardingService cria tenants junto com seu primeiro administrador
type OnboardingService struct {
	tenantRepo repositories.TenantRepository
	userRepo   repositories.UserRepository
	uow        ports.UnitOfWork
	hasher     ports.PasswordHasher
	metrics    ports.Metrics
	logger     ports.Logger
	txTimeout  time.Duration
}

// NewOnboardingService cria um novo OnboardingService
func NewOnboardingService(
	tenantRepo repositories.TenantRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	metrics ports.Metrics,
	logger ports.Logger,
	txTimeout time.Duration,
) *OnboardingService {
	if txTimeout <= 0 {
		txTimeout = DefaultTxTimeout
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &OnboardingService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		uow:        uow,
		hasher:     hasher,
		metrics:    metrics,
		logger:     logger,
		txTimeout:  txTimeout,
	}
}

// TenantInput representa os dados do tenant a ser criado
type TenantInput struct {
	Domain  string
	Name    string
	Type    string
	Country string
}

// AdminInput representa os dados do administrador inicial
type AdminInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
}

// OnboardTenantInput agrupa tenant e administrador
type OnboardTenantInput struct {
	Tenant TenantInput
	Admin  AdminInput
}

// OnboardTenantResult contém as entidades criadas
type OnboardTenantResult struct {
	Tenant *entities.Tenant
	Admin  *entities.User
}

// OnboardTenant cria tenant, administrador e concessões numa única transação.
// O pré-check de domínio é só uma saída antecipada; a garantia real é o
// índice único, cuja violação vira o mesmo Conflict.
func (s *OnboardingService) OnboardTenant(ctx context.Context, input OnboardTenantInput) (*OnboardTenantResult, error) {
	tenant, admin, err := s.buildEntities(input)
	if err != nil {
		return nil, err
	}

	log := s.logger.With("domain", tenant.Domain.String(), "type", string(tenant.Type))
	log.Info("onboarding tenant")

	hash, err := s.hasher.Hash(input.Admin.Password)
	if err != nil {
		log.Error("failed to hash admin password", "error", err)
		return nil, domainerrors.Internal(err)
	}
	admin.PasswordHash = hash

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	err = s.uow.WithTransaction(txCtx, func(ctx context.Context) error {
		existing, err := s.tenantRepo.FindByDomain(ctx, tenant.Domain.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerrors.ErrTenantDomainTaken
		}

		user, err := s.userRepo.FindByEmail(ctx, admin.Email.String())
		if err != nil {
			return err
		}
		if user != nil {
			return domainerrors.ErrEmailAlreadyExists
		}

		if err := s.tenantRepo.Create(ctx, tenant); err != nil {
			if errors.Is(err, domainerrors.ErrDuplicateKey) {
				return domainerrors.ErrTenantDomainTaken.Wrap(err)
			}
			return err
		}

		admin.AssignTenant(tenant)
		if err := s.userRepo.Create(ctx, admin); err != nil {
			if errors.Is(err, domainerrors.ErrDuplicateKey) {
				return domainerrors.ErrEmailAlreadyExists.Wrap(err)
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, s.failure(txCtx, log, err)
	}

	s.metrics.TenantOnboarded(string(tenant.Type))
	log.Info("tenant onboarded", "tenant_id", tenant.ID, "admin_id", admin.ID)

	return &OnboardTenantResult{Tenant: tenant, Admin: admin}, nil
}

// GetTenantByDomain resolve um subdomínio para o tenant
func (s *OnboardingService) GetTenantByDomain(ctx context.Context, domain string) (*entities.Tenant, error) {
	d, err := valueobjects.NewTenantDomain(domain)
	if err != nil {
		return nil, domainerrors.ErrTenantNotFound
	}

	tenant, err := s.tenantRepo.FindByDomain(ctx, d.String())
	if err != nil {
		s.logger.Error("failed to find tenant", "domain", domain, "error", err)
		return nil, domainerrors.Internal(err)
	}
	if tenant == nil {
		return nil, domainerrors.ErrTenantNotFound
	}
	return tenant, nil
}

func (s *OnboardingService) buildEntities(input OnboardTenantInput) (*entities.Tenant, *entities.User, error) {
	domain, err := valueobjects.NewTenantDomain(input.Tenant.Domain)
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidTenantDomain.Wrap(err)
	}

	tenant := &entities.Tenant{
		Domain:  domain,
		Name:    input.Tenant.Name,
		Country: strings.ToUpper(strings.TrimSpace(input.Tenant.Country)),
		Type:    entities.TenantType(input.Tenant.Type),
	}
	if err := tenant.Validate(); err != nil {
		return nil, nil, domainerrors.ErrInvalidTenant.Wrap(err)
	}

	email, err := valueobjects.NewEmail(input.Admin.Email)
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidEmail.Wrap(err)
	}

	if len(input.Admin.Password) < minPasswordLength {
		return nil, nil, domainerrors.ErrInvalidUser.Wrap(errors.New("password too short"))
	}

	role := entities.AdminRoleFor(tenant.Type)
	admin := &entities.User{
		Email:       email,
		FirstName:   input.Admin.FirstName,
		LastName:    input.Admin.LastName,
		Gender:      entities.Gender(input.Admin.Gender),
		Role:        role,
		Permissions: role.Permissions(),
	}
	if err := admin.Validate(); err != nil {
		return nil, nil, domainerrors.ErrInvalidUser.Wrap(err)
	}

	return tenant, admin, nil
}

// failure mantém erros de domínio e converte o resto em Internal
func (s *OnboardingService) failure(txCtx context.Context, log ports.Logger, err error) error {
	var de *domainerrors.DomainError
	if errors.As(err, &de) && de.Kind != domainerrors.KindInternal {
		log.Warn("tenant onboarding rejected", "reason", de.Message)
		return de
	}

	if errors.Is(txCtx.Err(), context.DeadlineExceeded) {
		log.Error("tenant onboarding timed out", "error", err)
	} else {
		log.Error("tenant onboarding failed", "error", err)
	}
	return domainerrors.Internal(err)
}

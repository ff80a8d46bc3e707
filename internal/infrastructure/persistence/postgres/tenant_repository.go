package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
)

// TenantRepository implementa repositories.TenantRepository
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository cria um novo TenantRepository
func NewTenantRepository(db *gorm.DB) repositories.TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *entities.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	model := &TenantModel{
		ID:      tenant.ID,
		Domain:  tenant.Domain.String(),
		Name:    tenant.Name,
		Country: tenant.Country,
		Type:    string(tenant.Type),
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	tenant.CreatedAt = time.Unix(model.CreatedAt, 0)
	tenant.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (*entities.Tenant, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *TenantRepository) FindByDomain(ctx context.Context, domain string) (*entities.Tenant, error) {
	return r.findOne(ctx, "domain = ?", domain)
}

func (r *TenantRepository) CountByDomain(ctx context.Context, domain string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&TenantModel{}).Where("domain = ?", domain).Count(&count).Error
	return count, err
}

func (r *TenantRepository) findOne(ctx context.Context, query string, arg any) (*entities.Tenant, error) {
	var model TenantModel
	if err := dbFrom(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	domain, err := valueobjects.NewTenantDomain(model.Domain)
	if err != nil {
		return nil, err
	}

	return &entities.Tenant{
		ID:        model.ID,
		Domain:    domain,
		Name:      model.Name,
		Country:   model.Country,
		Type:      entities.TenantType(model.Type),
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}, nil
}

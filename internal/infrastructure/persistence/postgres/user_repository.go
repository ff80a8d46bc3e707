package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	model := r.toModel(user)

	db := dbFrom(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	if len(user.Permissions) > 0 {
		grants := make([]UserPermissionModel, 0, len(user.Permissions))
		for _, p := range user.Permissions {
			grants = append(grants, UserPermissionModel{UserID: model.ID, Permission: string(p)})
		}
		if err := db.Create(&grants).Error; err != nil {
			return translateWriteError(err)
		}
	}

	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// findOne retorna (nil, nil) quando não encontra
func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var model UserModel

	db := dbFrom(ctx, r.db)
	// Soft delete: ignorar registros deletados
	err := db.Preload("Permissions").
		Where(query+" AND deleted_at IS NULL", arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFrom(ctx, r.db)
	return translateWriteError(db.Omit(clause.Associations).Save(model).Error)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFrom(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&UserModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFrom(ctx, r.db)
	query := db.Model(&UserModel{}).Preload("Permissions").Where("deleted_at IS NULL")

	if filters.TenantID != nil {
		query = query.Where("federation_id = ? OR organization_id = ?", *filters.TenantID, *filters.TenantID)
	}
	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("created_at ASC, id ASC").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&UserModel{}).
		Where("(federation_id = ? OR organization_id = ?) AND deleted_at IS NULL", tenantID, tenantID).
		Count(&count).Error
	return count, err
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	var createdAt, updatedAt int64
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		updatedAt = user.UpdatedAt.Unix()
	}

	return &UserModel{
		ID:             user.ID,
		Email:          user.Email.String(),
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Gender:         string(user.Gender),
		PasswordHash:   user.PasswordHash,
		Role:           string(user.Role),
		FederationID:   user.FederationID,
		OrganizationID: user.OrganizationID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	perms := make([]entities.Permission, 0, len(model.Permissions))
	for _, grant := range model.Permissions {
		perms = append(perms, entities.Permission(grant.Permission))
	}

	return &entities.User{
		ID:             model.ID,
		Email:          email,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		Gender:         entities.Gender(model.Gender),
		PasswordHash:   model.PasswordHash,
		Role:           entities.Role(model.Role),
		FederationID:   model.FederationID,
		OrganizationID: model.OrganizationID,
		Permissions:    perms,
		CreatedAt:      time.Unix(model.CreatedAt, 0),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0),
		DeletedAt:      deletedAt,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	result := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}

package entities

import (
	"errors"
	"time"

	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// Gender representa o gênero informado no cadastro
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid verifica se o gênero é conhecido
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// User representa um usuário do sistema
type User struct {
	ID             string
	Email          valueobjects.Email
	FirstName      string
	LastName       string
	Gender         Gender
	PasswordHash   string
	Role           Role
	FederationID   *string
	OrganizationID *string
	Permissions    []Permission // registros de concessão materializados
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft delete
}

// Name retorna o nome completo
func (u *User) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// TenantID retorna o tenant ao qual o usuário pertence (vazio para super admin)
func (u *User) TenantID() string {
	switch {
	case u.FederationID != nil:
		return *u.FederationID
	case u.OrganizationID != nil:
		return *u.OrganizationID
	default:
		return ""
	}
}

// TenantType retorna o tipo do tenant do usuário
func (u *User) TenantType() TenantType {
	switch {
	case u.FederationID != nil:
		return TenantTypeFederation
	case u.OrganizationID != nil:
		return TenantTypeOrganization
	default:
		return ""
	}
}

// AssignTenant vincula o usuário ao tenant conforme o tipo
func (u *User) AssignTenant(t *Tenant) {
	id := t.ID
	if t.Type == TenantTypeOrganization {
		u.OrganizationID = &id
		u.FederationID = nil
		return
	}
	u.FederationID = &id
	u.OrganizationID = nil
}

// IsAdmin verifica se o usuário administra um tenant
func (u *User) IsAdmin() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleFedAdmin || u.Role == RoleOrgAdmin
}

// HasPermission verifica se o usuário tem uma permissão concedida
func (u *User) HasPermission(permission Permission) bool {
	return HasPermission(NewPermissionSet(u.Permissions...), permission)
}

// GetPermissions retorna todas as permissões concedidas ao usuário
func (u *User) GetPermissions() []string {
	result := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		result[i] = string(p)
	}
	return result
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Restore restaura um usuário deletado
func (u *User) Restore() {
	u.DeletedAt = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.FirstName == "" {
		return errors.New("first name is required")
	}

	if !u.Gender.Valid() {
		return errors.New("invalid gender")
	}

	if !u.Role.Valid() {
		return errors.New("invalid role")
	}

	if u.FederationID != nil && u.OrganizationID != nil {
		return errors.New("user cannot belong to a federation and an organization")
	}

	return nil
}

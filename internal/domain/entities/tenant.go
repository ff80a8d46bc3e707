package entities

import (
	"errors"
	"time"

	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
)

// TenantType distingue federações de organizações
type TenantType string

const (
	TenantTypeFederation   TenantType = "FED"
	TenantTypeOrganization TenantType = "ORG"
)

// Valid verifica se o tipo é conhecido
func (t TenantType) Valid() bool {
	return t == TenantTypeFederation || t == TenantTypeOrganization
}

// Tenant é uma federação ou organização, a fronteira de isolamento de dados
type Tenant struct {
	ID        string
	Domain    valueobjects.TenantDomain
	Name      string
	Country   string
	Type      TenantType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade Tenant
func (t *Tenant) Validate() error {
	if t.Domain.String() == "" {
		return errors.New("domain is required")
	}

	if len(t.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if len(t.Country) != 2 {
		return errors.New("country must be an ISO 3166-1 alpha-2 code")
	}

	if !t.Type.Valid() {
		return errors.New("invalid tenant type")
	}

	return nil
}

package dto

import (
	"time"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/services"
)

// OnboardTenantRequest representa a criação de um tenant com seu administrador
type OnboardTenantRequest struct {
	Tenant TenantRequest `json:"tenant"`
	Admin  AdminRequest  `json:"admin"`
}

// TenantRequest contém os dados do tenant
type TenantRequest struct {
	Domain  string `json:"domain" binding:"required,tenantdomain"`
	Name    string `json:"name" binding:"required,min=2,max=120"`
	Type    string `json:"type" binding:"required,oneof=FED ORG"`
	Country string `json:"country" binding:"required,len=2,alpha"`
}

// AdminRequest contém os dados do administrador inicial
type AdminRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Gender    string `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
}

// ToInput converte a requisição para o input do serviço
func (r OnboardTenantRequest) ToInput() services.OnboardTenantInput {
	return services.OnboardTenantInput{
		Tenant: services.TenantInput{
			Domain:  r.Tenant.Domain,
			Name:    r.Tenant.Name,
			Type:    r.Tenant.Type,
			Country: r.Tenant.Country,
		},
		Admin: services.AdminInput{
			Email:     r.Admin.Email,
			Password:  r.Admin.Password,
			FirstName: r.Admin.FirstName,
			LastName:  r.Admin.LastName,
			Gender:    r.Admin.Gender,
		},
	}
}

// TenantResponse representa um tenant
type TenantResponse struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// OnboardTenantResponse devolve o tenant e seu administrador
type OnboardTenantResponse struct {
	Tenant TenantResponse `json:"tenant"`
	Admin  UserResponse   `json:"admin"`
}

// ToTenantResponse converte uma entidade Tenant
func ToTenantResponse(t *entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Domain:    t.Domain.String(),
		Name:      t.Name,
		Country:   t.Country,
		Type:      string(t.Type),
		CreatedAt: t.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

// ListUsersQuery representa os filtros de listagem de usuários
type ListUsersQuery struct {
	Role     string `form:"role" binding:"omitempty,oneof=SUPER_ADMIN FED_ADMIN CLUB_MANAGER PLAYER ORG_ADMIN"`
	TenantID string `form:"tenant_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name,omitempty"`
	Gender         string    `json:"gender"`
	Role           string    `json:"role"`
	FederationID   *string   `json:"federation_id,omitempty"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	Permissions    []string  `json:"permissions"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListUsersResponse representa uma página de usuários
type ListUsersResponse struct {
	Data     []UserResponse `json:"data"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email.String(),
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Gender:         string(user.Gender),
		Role:           string(user.Role),
		FederationID:   user.FederationID,
		OrganizationID: user.OrganizationID,
		Permissions:    user.GetPermissions(),
		CreatedAt:      user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

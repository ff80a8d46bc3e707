package dto

import "time"

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse contém o token de acesso
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Role        string    `json:"role"`
	TenantID    string    `json:"tenant_id,omitempty"`
	Permissions []string  `json:"permissions"`
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/services"
)

// AuthHandler emite tokens de acesso
type AuthHandler struct {
	auth   *services.AuthService
	logger ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(auth *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login troca credenciais por um token Bearer
//
//	@Summary	Autentica um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	perms := make([]string, len(result.Principal.Permissions))
	for i, p := range result.Principal.Permissions {
		perms[i] = p.String()
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: result.Token.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   result.Token.ExpiresAt,
		Role:        string(result.Principal.Role),
		TenantID:    result.Principal.TenantID,
		Permissions: perms,
	})
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
)

// PrincipalContextKey guarda o usuário autenticado no contexto do Gin
const PrincipalContextKey = "principal"

// Authenticate exige um token Bearer válido e publica o Principal no contexto
func Authenticate(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

// PrincipalFrom retorna o Principal da requisição autenticada
func PrincipalFrom(c *gin.Context) (*entities.Principal, bool) {
	value, ok := c.Get(PrincipalContextKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*entities.Principal)
	return principal, ok && principal != nil
}

// RequirePermission nega (403) quem não tem a permissão; deve rodar após Authenticate
func RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c))
			return
		}
		if !principal.HasPermission(permission) {
			dto.Abort(c, dto.ForbiddenErrorResponseI18n(c))
			return
		}
		c.Next()
	}
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/services"
)

// TenantHandler expõe o onboarding público de tenants
type TenantHandler struct {
	onboarding *services.OnboardingService
	logger     ports.Logger
}

// NewTenantHandler cria um novo TenantHandler
func NewTenantHandler(onboarding *services.OnboardingService, logger ports.Logger) *TenantHandler {
	return &TenantHandler{onboarding: onboarding, logger: logger}
}

// OnboardTenant cria um tenant com seu administrador
//
//	@Summary	Cria tenant e administrador
//	@Tags		tenants
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OnboardTenantRequest	true	"Tenant e administrador"
//	@Success	201		{object}	dto.OnboardTenantResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Failure	429		{object}	dto.ErrorResponse
//	@Router		/tenants [post]
func (h *TenantHandler) OnboardTenant(c *gin.Context) {
	var req dto.OnboardTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindingError(c, err)
		return
	}

	result, err := h.onboarding.OnboardTenant(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OnboardTenantResponse{
		Tenant: dto.ToTenantResponse(result.Tenant),
		Admin:  dto.ToUserResponse(result.Admin),
	})
}

// GetTenantByDomain resolve um subdomínio
//
//	@Summary	Resolve tenant por subdomínio
//	@Tags		tenants
//	@Produce	json
//	@Param		domain	path		string	true	"Subdomínio"
//	@Success	200		{object}	dto.TenantResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/tenants/{domain} [get]
func (h *TenantHandler) GetTenantByDomain(c *gin.Context) {
	tenant, err := h.onboarding.GetTenantByDomain(c.Request.Context(), c.Param("domain"))
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

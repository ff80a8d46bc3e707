package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/domain/repositories"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/handlers/middleware"
	"github.com/rafabene/federa-backend/internal/services"
)

const defaultPageSize = 20

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetUser busca um usuário por ID
//
//	@Summary	Busca um usuário do tenant
//	@Tags		users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)

	user, err := h.userService.GetUser(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários do tenant com filtros e paginação
//
//	@Summary	Lista usuários do tenant
//	@Tags		users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		role		query		string	false	"Role"
//	@Param		tenant_id	query		string	false	"Tenant (apenas super admin)"
//	@Param		page		query		int		false	"Página"
//	@Param		page_size	query		int		false	"Itens por página"
//	@Success	200			{object}	dto.ListUsersResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Failure	403			{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BindingError(c, err)
		return
	}

	filters := repositories.UserFilters{Page: query.Page, PageSize: query.PageSize}
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = defaultPageSize
	}
	if query.Role != "" {
		role := entities.Role(query.Role)
		filters.Role = &role
	}
	if query.TenantID != "" {
		filters.TenantID = &query.TenantID
	}

	principal, _ := middleware.PrincipalFrom(c)
	users, err := h.userService.ListUsers(c.Request.Context(), principal, filters)
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{
		Data:     dto.ToUserResponses(users),
		Page:     filters.Page,
		PageSize: filters.PageSize,
	})
}

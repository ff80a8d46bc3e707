package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/federa-backend/docs"
	"github.com/rafabene/federa-backend/internal/domain/entities"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/handlers/middleware"
	"github.com/rafabene/federa-backend/internal/infrastructure/config"
	"github.com/rafabene/federa-backend/internal/infrastructure/i18n"
)

// RouterDeps reúne tudo que as rotas precisam
type RouterDeps struct {
	Config  *config.Config
	Logger  ports.Logger
	I18n    *i18n.Service
	Tokens  ports.TokenManager
	Metrics http.Handler
	// Ping verifica dependências no health check (opcional)
	Ping func(context.Context) error

	Tenants  *TenantHandler
	Auth     *AuthHandler
	Users    *UserHandler
	Payments *PaymentHandler
	Uploads  *UploadHandler
}

// NewRouter monta o engine Gin com middlewares globais e rotas v1
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.SecureHeaders(cfg.IsProduction(), deps.Logger))
	router.Use(middleware.BaseURL(cfg.Server.BaseURL))
	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				deps.Logger.Error("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "env": cfg.Env})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": cfg.Env})
	})

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limit := middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	authenticated := middleware.Authenticate(deps.Tokens)

	v1 := router.Group("/api/v1")
	{
		tenants := v1.Group("/tenants")
		{
			tenants.POST("", limit, deps.Tenants.OnboardTenant)
			tenants.GET("/:domain", deps.Tenants.GetTenantByDomain)
		}

		v1.POST("/auth/login", limit, deps.Auth.Login)

		v1.POST("/webhooks/stripe", deps.Payments.StripeWebhook)

		users := v1.Group("/users", authenticated, middleware.RequirePermission(entities.PermissionUserRead))
		{
			users.GET("", deps.Users.ListUsers)
			users.GET("/:id", deps.Users.GetUser)
		}

		v1.POST("/uploads/presign", authenticated, deps.Uploads.PresignUpload)
	}

	return router
}

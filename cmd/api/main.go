package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/federa-backend/internal/handlers/http"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/infrastructure/config"
	"github.com/rafabene/federa-backend/internal/infrastructure/i18n"
	"github.com/rafabene/federa-backend/internal/infrastructure/logging"
	"github.com/rafabene/federa-backend/internal/infrastructure/metrics"
	"github.com/rafabene/federa-backend/internal/infrastructure/payments/stripe"
	"github.com/rafabene/federa-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/federa-backend/internal/infrastructure/security"
	"github.com/rafabene/federa-backend/internal/infrastructure/storage/s3"
	"github.com/rafabene/federa-backend/internal/services"
)

//	@title						Federa API
//	@version					1.0
//	@description				Onboarding multi-tenant e reconciliação de pagamentos de filiação.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting federa backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if err := dto.RegisterValidators(); err != nil {
		log.Fatal(err)
	}

	// Inicializar repositories
	tenantRepo := postgres.NewTenantRepository(db)
	userRepo := postgres.NewUserRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	planRepo := postgres.NewPlanRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Adaptadores externos
	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry)
	verifier := stripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.Tolerance)
	prom := metrics.NewPrometheus()

	presigner, err := s3.NewPresigner(context.Background(), cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar services
	onboardingService := services.NewOnboardingService(tenantRepo, userRepo, uow, hasher, prom, logger, cfg.Database.TxTimeout)
	paymentService := services.NewPaymentService(subscriptionRepo, planRepo, playerRepo, uow, prom, logger, cfg.Database.TxTimeout)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	userService := services.NewUserService(userRepo, logger)
	uploadService := services.NewUploadService(presigner, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:   cfg,
		Logger:   logger,
		I18n:     i18nService,
		Tokens:   tokens,
		Metrics:  prom.Handler(),
		Ping:     sqlDB.PingContext,
		Tenants:  httphandlers.NewTenantHandler(onboardingService, logger),
		Auth:     httphandlers.NewAuthHandler(authService, logger),
		Users:    httphandlers.NewUserHandler(userService, logger),
		Payments: httphandlers.NewPaymentHandler(verifier, paymentService, logger),
		Uploads:  httphandlers.NewUploadHandler(uploadService, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/logger"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/jobs"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/whatsapp"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/handlers"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/services"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/apexchat-be/cmd/saas-api/docs"
)

// @title ApexChat SaaS API
// @version 1.0
// @description WhatsApp onboarding and customer query API for ApexChat businesses
// @contact.name API Support
// @contact.email support@apexchat.ai
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, !cfg.IsProduction())
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting saas-api")

	// Init database
	gormLevel := logger.Warn
	if cfg.LogLevel == "debug" {
		gormLevel = logger.Info
	}
	db, err := database.Open(database.Options{
		URL:      cfg.DatabaseURL,
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormLevel,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(models.All()...); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Init repositories
	uow := repositories.NewUnitOfWork(db.GORM)
	repos := uow.Repos()

	// Init LLM service (optional; rule-based answers work without it)
	var provider llm.LLMProvider
	if cfg.OpenAIKey != "" {
		provider, err = llm.NewProvider(&llm.ProviderConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.LLMModel,
			Temperature: 0.7,
			MaxTokens:   500,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize LLM provider")
		}
	} else {
		log.Warn().Msg("⚠️ OPENAI_API_KEY not set, AI queries use rule-based answers only")
	}

	var cache llm.Cache = llm.NewMemoryCache()
	if cfg.RedisURL != "" {
		redisCache, err := llm.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, using in-memory AI cache")
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}
	llmService := llm.NewService(provider, cache, cfg.AICacheTTL)
	log.Info().Str("provider", llmService.GetProviderName()).Msg("🤖 LLM provider")

	// Init services
	webhookService := services.NewWebhookService(uow, services.NewBusinessService(), services.NewMessageLogService(), services.WebhookOptions{
		Dedup:     cfg.WebhookDedup,
		DefaultTo: cfg.TwilioWhatsAppNumber,
	})
	conversationService := services.NewConversationService(repos.Conversations, repos.Messages)
	aiService := services.NewAIService(repos.Businesses, repos.Catalog, llmService)

	// Housekeeping jobs
	scheduler := jobs.NewScheduler(5 * time.Minute)
	if cfg.WebhookDedup {
		pruner := services.NewDedupPruner(repos.Dedup, cfg.DedupRetention)
		if err := scheduler.Add("prune-inbound-dedup", cfg.DedupPruneSchedule, pruner.Prune); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule dedup pruning")
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Init handlers
	webhookCfg := handlers.WebhookHandlerConfig{
		PublicURL:   cfg.PublicWebhookURL,
		VerifyToken: cfg.WhatsAppVerifyToken,
		Timeout:     cfg.WebhookTimeout,
	}
	if cfg.TwilioValidateSignature {
		if cfg.TwilioAuthToken == "" {
			log.Fatal().Msg("TWILIO_VALIDATE_SIGNATURE requires TWILIO_AUTH_TOKEN")
		}
		webhookCfg.Validator = whatsapp.NewSignatureValidator(cfg.TwilioAuthToken)
	}

	h := &handlers.Handlers{
		Webhook:      handlers.NewWebhookHandler(webhookService, webhookCfg),
		Conversation: handlers.NewConversationHandler(conversationService),
		AI:           handlers.NewAIHandler(aiService),
		Health:       handlers.NewHealthHandler(db.DB),
		WhatsApp:     handlers.NewWhatsAppHandler(cfg.TwilioWhatsAppNumber),
	}

	var adminGuard fiber.Handler
	if cfg.AdminAPIToken != "" {
		adminGuard = auth.StaticTokenMiddleware(cfg.AdminAPIToken)
	} else if cfg.IsProduction() {
		log.Fatal().Msg("ADMIN_API_TOKEN is required in production")
	} else {
		log.Warn().Msg("⚠️ ADMIN_API_TOKEN not set, operator routes are open")
	}

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "ApexChat SaaS API",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, h, handlers.RouteOptions{
		AdminGuard: adminGuard,
		EnableMock: !cfg.IsProduction(),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("Shutting down saas-api...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	log.Info().Msgf("✅ saas-api running at :%s", cfg.Port)
	log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Info().Msgf("📲 Onboarding QR: http://localhost:%s/whatsapp/onboarding-qr", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}

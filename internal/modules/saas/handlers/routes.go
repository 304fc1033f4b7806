package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Webhook      *WebhookHandler
	Conversation *ConversationHandler
	AI           *AIHandler
	Health       *HealthHandler
	WhatsApp     *WhatsAppHandler
}

type RouteOptions struct {
	// AdminGuard protects operator routes.
	AdminGuard fiber.Handler
	// EnableMock exposes the mock inbound route (never in production).
	EnableMock bool
}

func RegisterRoutes(app fiber.Router, h *Handlers, opts RouteOptions) {
	admin := opts.AdminGuard
	if admin == nil {
		admin = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Health check
	app.Get("/health", h.Health.GetHealth)

	// WhatsApp routes
	app.Post("/whatsapp/webhook", h.Webhook.ReceiveWebhook)
	app.Get("/whatsapp/webhook", h.Webhook.VerifyWebhook)
	app.Get("/whatsapp/onboarding-qr", h.WhatsApp.GetOnboardingQR)
	app.Get("/whatsapp/onboarding-link", h.WhatsApp.GetOnboardingLink)
	if opts.EnableMock {
		app.Post("/whatsapp/mock/receive", admin, h.Webhook.MockReceive)
	}

	// Conversation (operator) routes
	conversations := app.Group("/conversations", admin)
	conversations.Get("/", h.Conversation.ListConversations)
	conversations.Get("/:phone", h.Conversation.GetConversation)
	conversations.Get("/:phone/messages", h.Conversation.GetMessages)
	conversations.Post("/:phone/reset", h.Conversation.ResetConversation)

	// AI routes
	app.Post("/ai/query", h.AI.Query)
}

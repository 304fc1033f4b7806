package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/whatsapp"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const mockMediaURL = "https://example.com/mock-products.csv"

type WebhookHandlerConfig struct {
	// Validator is nil when signature checks are disabled.
	Validator *whatsapp.SignatureValidator
	// PublicURL is the externally visible webhook URL Twilio signs.
	PublicURL   string
	VerifyToken string
	Timeout     time.Duration
}

type WebhookHandler struct {
	webhookService *services.WebhookService
	cfg            WebhookHandlerConfig
}

func NewWebhookHandler(webhookService *services.WebhookService, cfg WebhookHandlerConfig) *WebhookHandler {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &WebhookHandler{webhookService: webhookService, cfg: cfg}
}

// ReceiveWebhook godoc
// @Summary Twilio WhatsApp webhook
// @Description Receives an inbound WhatsApp message (form-encoded) and answers with TwiML
// @Tags WhatsApp
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param From formData string true "Sender, e.g. whatsapp:+2348012345678"
// @Param To formData string false "Recipient business number"
// @Param Body formData string false "Message text"
// @Param MessageSid formData string false "Provider message id"
// @Param NumMedia formData int false "Number of attachments"
// @Param MediaUrl0 formData string false "First attachment URL"
// @Param MediaContentType0 formData string false "First attachment content type"
// @Success 200 {string} string "TwiML reply"
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {string} string "TwiML apology"
// @Router /whatsapp/webhook [post]
func (h *WebhookHandler) ReceiveWebhook(c *fiber.Ctx) error {
	if h.cfg.Validator != nil && !h.validSignature(c) {
		log.Warn().Str("ip", c.IP()).Msg("Rejected webhook with invalid Twilio signature")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Invalid signature",
		})
	}

	numMedia, _ := strconv.Atoi(c.FormValue("NumMedia"))
	msg := services.InboundMessage{
		From:             c.FormValue("From"),
		To:               c.FormValue("To"),
		Body:             c.FormValue("Body"),
		MessageSID:       c.FormValue("MessageSid"),
		NumMedia:         numMedia,
		MediaURL:         c.FormValue("MediaUrl0"),
		MediaContentType: c.FormValue("MediaContentType0"),
	}
	if strings.TrimSpace(msg.From) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "From is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.cfg.Timeout)
	defer cancel()

	result, err := h.webhookService.HandleInbound(ctx, msg)
	switch {
	case errors.Is(err, services.ErrMissingSender):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		return respondTwiML(c, fiber.StatusInternalServerError, result.Reply)
	case result.Duplicate:
		return respondEmptyTwiML(c)
	default:
		return respondTwiML(c, fiber.StatusOK, result.Reply)
	}
}

// VerifyWebhook godoc
// @Summary Webhook verification
// @Description Echoes hub.challenge when hub.verify_token matches the configured token
// @Tags WhatsApp
// @Produce plain
// @Param hub.mode query string true "Must be subscribe"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string "challenge"
// @Failure 403 {string} string "Forbidden"
// @Router /whatsapp/webhook [get]
func (h *WebhookHandler) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && h.cfg.VerifyToken != "" && token == h.cfg.VerifyToken {
		log.Info().Msg("✅ Webhook verified")
		return c.Status(fiber.StatusOK).SendString(challenge)
	}
	return c.SendStatus(fiber.StatusForbidden)
}

// MockReceive godoc
// @Summary Simulate an inbound WhatsApp message
// @Description Runs the onboarding flow without Twilio (disabled in production)
// @Tags WhatsApp
// @Produce json
// @Param message query string false "Message text" default(Hello)
// @Param from query string false "Sender phone" default(+15555555555)
// @Param media query bool false "Attach a CSV file"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /whatsapp/mock/receive [post]
func (h *WebhookHandler) MockReceive(c *fiber.Ctx) error {
	from := c.Query("from", "+15555555555")
	msg := services.InboundMessage{
		From: "whatsapp:" + from,
		Body: c.Query("message", "Hello"),
	}
	if c.QueryBool("media") {
		msg.NumMedia = 1
		msg.MediaURL = mockMediaURL
		msg.MediaContentType = "text/csv"
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.cfg.Timeout)
	defer cancel()

	result, err := h.webhookService.HandleInbound(ctx, msg)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrMissingSender) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"reply":           result.Reply,
		"state":           result.State,
		"conversation_id": result.ConversationID,
		"business_id":     result.BusinessID,
		"duplicate":       result.Duplicate,
	})
}

func (h *WebhookHandler) validSignature(c *fiber.Ctx) bool {
	params := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	url := h.cfg.PublicURL
	if url == "" {
		url = c.BaseURL() + c.OriginalURL()
	}
	return h.cfg.Validator.Validate(url, params, c.Get(whatsapp.SignatureHeader))
}

func respondTwiML(c *fiber.Ctx, status int, reply string) error {
	doc, err := whatsapp.RenderReply(reply)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render TwiML")
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, whatsapp.ContentTypeTwiML)
	return c.Status(status).SendString(doc)
}

func respondEmptyTwiML(c *fiber.Ctx) error {
	doc, err := whatsapp.RenderEmpty()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, whatsapp.ContentTypeTwiML)
	return c.Status(fiber.StatusOK).SendString(doc)
}

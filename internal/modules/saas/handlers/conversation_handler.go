package handlers

import (
	"errors"
	"net/url"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/services"
	"github.com/gofiber/fiber/v2"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// ListConversations godoc
// @Summary List recent conversations
// @Tags Conversations
// @Produce json
// @Param Authorization header string false "Bearer admin token"
// @Param limit query int false "Max rows" default(50)
// @Success 200 {array} models.Conversation
// @Router /conversations [get]
func (h *ConversationHandler) ListConversations(c *fiber.Ctx) error {
	conversations, err := h.conversationService.ListRecent(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list conversations",
		})
	}
	return c.JSON(conversations)
}

// GetConversation godoc
// @Summary Get onboarding conversation by phone
// @Tags Conversations
// @Produce json
// @Param Authorization header string false "Bearer admin token"
// @Param phone path string true "Customer phone, e.g. +2348012345678"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{phone} [get]
func (h *ConversationHandler) GetConversation(c *fiber.Ctx) error {
	conversation, err := h.conversationService.Get(c.UserContext(), phoneParam(c))
	if err != nil {
		return conversationError(c, err)
	}
	return c.JSON(conversation)
}

// GetMessages godoc
// @Summary Message log of a conversation
// @Description Newest first
// @Tags Conversations
// @Produce json
// @Param Authorization header string false "Bearer admin token"
// @Param phone path string true "Customer phone"
// @Param limit query int false "Max rows" default(50)
// @Success 200 {array} models.WhatsAppMessage
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{phone}/messages [get]
func (h *ConversationHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.conversationService.Messages(c.UserContext(), phoneParam(c), c.QueryInt("limit", 50))
	if err != nil {
		return conversationError(c, err)
	}
	return c.JSON(messages)
}

// ResetConversation godoc
// @Summary Reset onboarding to the initial state
// @Description The business binding is kept
// @Tags Conversations
// @Produce json
// @Param Authorization header string false "Bearer admin token"
// @Param phone path string true "Customer phone"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{phone}/reset [post]
func (h *ConversationHandler) ResetConversation(c *fiber.Ctx) error {
	conversation, err := h.conversationService.Reset(c.UserContext(), phoneParam(c))
	if err != nil {
		return conversationError(c, err)
	}
	return c.JSON(conversation)
}

func phoneParam(c *fiber.Ctx) string {
	raw := c.Params("phone")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

func conversationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrConversationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load conversation",
	})
}

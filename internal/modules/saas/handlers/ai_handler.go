package handlers

import (
	"errors"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/services"
	"github.com/gofiber/fiber/v2"
)

type AIQueryRequest struct {
	QueryText string `json:"query_text"`
}

type AIHandler struct {
	aiService *services.AIService
}

func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// Query godoc
// @Summary Answer a customer query
// @Description FAQ and product rules for the calling business, then the AI fallback
// @Tags AI
// @Accept json
// @Produce json
// @Param X-API-Key header string false "Business API key"
// @Param request body AIQueryRequest true "Query"
// @Success 200 {object} services.AIAnswer
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /ai/query [post]
func (h *AIHandler) Query(c *fiber.Ctx) error {
	var req AIQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var business *models.Business
	if apiKey := c.Get("X-API-Key"); apiKey != "" {
		var err error
		business, err = h.aiService.BusinessByAPIKey(c.UserContext(), apiKey)
		if errors.Is(err, repositories.ErrBusinessNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid API key",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve business",
			})
		}
	}

	answer, err := h.aiService.Answer(c.UserContext(), business, req.QueryText)
	if errors.Is(err, services.ErrEmptyQuery) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process query",
		})
	}
	return c.JSON(answer)
}

package handlers

import (
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/whatsapp"
	"github.com/gofiber/fiber/v2"
)

type WhatsAppHandler struct {
	onboardingNumber string
}

func NewWhatsAppHandler(onboardingNumber string) *WhatsAppHandler {
	return &WhatsAppHandler{onboardingNumber: onboardingNumber}
}

// GetOnboardingQR godoc
// @Summary Onboarding QR code
// @Description PNG QR code that opens a WhatsApp chat with the onboarding number, pre-filled with "Hello"
// @Tags WhatsApp
// @Produce png
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /whatsapp/onboarding-qr [get]
func (h *WhatsAppHandler) GetOnboardingQR(c *fiber.Ctx) error {
	size := c.QueryInt("size", 256)
	if size < 64 || size > 1024 {
		size = 256
	}

	qr, err := whatsapp.OnboardingQR(h.onboardingNumber, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", "inline; filename=onboarding-qr.png")
	return c.Send(qr)
}

// GetOnboardingLink godoc
// @Summary Onboarding deep link
// @Tags WhatsApp
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /whatsapp/onboarding-link [get]
func (h *WhatsAppHandler) GetOnboardingLink(c *fiber.Ctx) error {
	link, err := whatsapp.OnboardingLink(h.onboardingNumber, "Hello")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"link": link})
}

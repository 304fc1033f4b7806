package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// OnboardingLink builds the wa.me deep link that opens a chat with the
// onboarding number and pre-fills the start command.
func OnboardingLink(number, text string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimPrefix(strings.TrimSpace(number), "whatsapp:"))
	if digits == "" {
		return "", fmt.Errorf("invalid whatsapp number: %q", number)
	}

	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link, nil
}

// OnboardingQR returns a PNG QR code of the onboarding link.
func OnboardingQR(number string, size int) ([]byte, error) {
	link, err := OnboardingLink(number, "Hello")
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

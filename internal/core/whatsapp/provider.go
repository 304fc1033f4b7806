// Package whatsapp holds the Twilio WhatsApp channel plumbing: TwiML
// replies, webhook signature checks and the onboarding QR code.
package whatsapp

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go/twiml"
)

// ContentTypeTwiML is the response content type Twilio expects.
const ContentTypeTwiML = "text/xml"

// RenderReply renders a single-message TwiML document.
func RenderReply(body string) (string, error) {
	doc, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: body},
	})
	if err != nil {
		return "", fmt.Errorf("render twiml: %w", err)
	}
	return doc, nil
}

// RenderEmpty renders a TwiML document that sends nothing.
func RenderEmpty() (string, error) {
	doc, err := twiml.Messages(nil)
	if err != nil {
		return "", fmt.Errorf("render twiml: %w", err)
	}
	return doc, nil
}

// MediaKind maps a media content type to the logged message type
// ("image/jpeg" -> "image"). Messages without media are "text".
func MediaKind(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return "text"
	}
	kind, _, _ := strings.Cut(contentType, "/")
	return strings.ToLower(kind)
}

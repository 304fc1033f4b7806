package whatsapp

import (
	"github.com/twilio/twilio-go/client"
)

// SignatureHeader carries Twilio's HMAC of the webhook request.
const SignatureHeader = "X-Twilio-Signature"

// SignatureValidator checks X-Twilio-Signature against the account auth token.
type SignatureValidator struct {
	validator client.RequestValidator
}

func NewSignatureValidator(authToken string) *SignatureValidator {
	return &SignatureValidator{validator: client.NewRequestValidator(authToken)}
}

// Validate reports whether signature matches the public webhook URL and the
// POSTed form parameters.
func (v *SignatureValidator) Validate(url string, params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}
	return v.validator.Validate(url, params, signature)
}

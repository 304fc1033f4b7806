package utils

import "strings"

const whatsappPrefix = "whatsapp:"

// StripWhatsAppPrefix removes the Twilio channel prefix ("whatsapp:+234...").
func StripWhatsAppPrefix(address string) string {
	address = strings.TrimSpace(address)
	if len(address) >= len(whatsappPrefix) && strings.EqualFold(address[:len(whatsappPrefix)], whatsappPrefix) {
		return strings.TrimSpace(address[len(whatsappPrefix):])
	}
	return address
}

// StandardizePhoneNumber reduces a phone number to E.164 form: a leading '+'
// followed by digits only. Formatting characters are dropped. ok is false when
// the input has no leading '+' or no digits.
func StandardizePhoneNumber(phone string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if len(cleaned) < 2 || cleaned[0] != '+' {
		return "", false
	}
	if strings.ContainsRune(cleaned[1:], '+') {
		return "", false
	}
	return cleaned, true
}

// NormalizeSender turns a webhook "From" value into the conversation key.
// Numbers that cannot be standardized are kept verbatim (trimmed) so the
// sender still maps to exactly one conversation.
func NormalizeSender(from string) (phone string, standardized bool) {
	raw := StripWhatsAppPrefix(from)
	if std, ok := StandardizePhoneNumber(raw); ok {
		return std, true
	}
	return raw, false
}

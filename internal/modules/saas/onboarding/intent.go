package onboarding

import (
	"mime"
	"strings"
)

const minBusinessNameLength = 3

// IsStartCommand reports whether body starts the flow ("hello", any case).
func IsStartCommand(body string) bool {
	return strings.EqualFold(strings.TrimSpace(body), "hello")
}

// IsGreeting reports whether body looks like a greeting rather than a name:
// it contains "hello" in any case, even inside a word.
func IsGreeting(body string) bool {
	return strings.Contains(strings.ToLower(body), "hello")
}

// IsBusinessName reports whether body is acceptable as a business name.
func IsBusinessName(body string) bool {
	return len([]rune(strings.TrimSpace(body))) >= minBusinessNameLength && !IsGreeting(body)
}

// WantsUpload reports whether the owner chose the spreadsheet option.
func WantsUpload(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "upload") || strings.Contains(lower, "spreadsheet")
}

// WantsManual reports whether the owner chose to add products one by one.
func WantsManual(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "manual") || strings.Contains(lower, "one by one")
}

// IsCSV reports whether a media content type denotes a CSV file.
// Parameters like charset are ignored.
func IsCSV(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/csv"
}

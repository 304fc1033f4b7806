package whatsapp

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReply(t *testing.T) {
	doc, err := RenderReply("Welcome to ApexChat AI!")
	require.NoError(t, err)
	assert.Contains(t, doc, "<Response>")
	assert.Contains(t, doc, "<Message>Welcome to ApexChat AI!</Message>")
}

func TestRenderReplyEscapesMarkup(t *testing.T) {
	doc, err := RenderReply("Tom & Jerry <Stores>")
	require.NoError(t, err)
	assert.NotContains(t, doc, "<Stores>")
	assert.Contains(t, doc, "&amp;")
}

func TestRenderEmpty(t *testing.T) {
	doc, err := RenderEmpty()
	require.NoError(t, err)
	assert.Contains(t, doc, "Response")
	assert.NotContains(t, doc, "<Message>")
}

func TestMediaKind(t *testing.T) {
	assert.Equal(t, "text", MediaKind(""))
	assert.Equal(t, "text", MediaKind("text/csv"))
	assert.Equal(t, "image", MediaKind("image/jpeg"))
	assert.Equal(t, "application", MediaKind("Application/PDF"))
}

// sign reproduces Twilio's scheme: HMAC-SHA1 over the URL followed by the
// sorted key/value pairs, base64 encoded.
func sign(token, url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString(url)
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteString(params[k])
	}
	mac := hmac.New(sha1.New, []byte(token))
	mac.Write(buf.Bytes())
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignatureValidator(t *testing.T) {
	const (
		token = "12345"
		url   = "https://apexchat.example.com/whatsapp/webhook"
	)
	params := map[string]string{"From": "whatsapp:+2348012345678", "Body": "Hello", "MessageSid": "SM1"}

	v := NewSignatureValidator(token)
	assert.True(t, v.Validate(url, params, sign(token, url, params)))
	assert.False(t, v.Validate(url, params, sign("other", url, params)))
	assert.False(t, v.Validate(url, params, ""))
}

func TestOnboardingLink(t *testing.T) {
	link, err := OnboardingLink("whatsapp:+1 (415) 523-8886", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/14155238886?text=Hello", link)

	_, err = OnboardingLink("whatsapp:", "Hello")
	assert.Error(t, err)
}

func TestOnboardingQR(t *testing.T) {
	png, err := OnboardingQR("+14155238886", 0)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	WebhookSignatureHeader = "X-Webhook-Signature"
	webhookTokenParam      = "token"
	maxWebhookBody         = 1 << 20
)

// WebhookAuth admits a settlement callback when it carries either a hex
// HMAC-SHA256 of the raw body in X-Webhook-Signature or the shared secret
// in the token query parameter.
func WebhookAuth(secret string, log logger.Logger) ginext.HandlerFunc {
	key := []byte(secret)

	return func(c *ginext.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "unreadable body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if validSignature(key, body, c.GetHeader(WebhookSignatureHeader)) ||
			validToken(key, c.Query(webhookTokenParam)) {
			c.Next()
			return
		}

		log.Warn("rejected unauthenticated webhook",
			logger.String("request_id", c.GetString(requestIDKey)),
			logger.String("remote_addr", c.ClientIP()),
		)
		c.Set("error", domain.ErrUnauthorizedWebhook.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorizedWebhook.Error()})
	}
}

// Sign returns the signature a caller must send for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func validSignature(key, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

func validToken(key []byte, token string) bool {
	if token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), key) == 1
}

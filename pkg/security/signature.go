package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign returns the hex encoded HMAC-SHA256 of payload.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature is the HMAC-SHA256 of payload.
// An empty secret disables verification. A "sha256=" prefix is accepted.
func VerifySignature(payload []byte, signature, secret string) bool {
	if secret == "" {
		return true
	}

	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")

	return hmac.Equal([]byte(Sign(payload, secret)), []byte(strings.ToLower(signature)))
}

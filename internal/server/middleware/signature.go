package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"net/http"
)

// SignatureHeader carries the provider's webhook signature: a hex encoded
// HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// Webhook bodies larger than this are rejected.
const maxWebhookBody = 1 << 20

// VerifySignature ensures inbound webhooks were signed with the shared
// provider secret. The body is re-attached to the request for the handler.
func VerifySignature(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get(SignatureHeader)
			if signature == "" {
				http.Error(w, "Missing webhook signature", http.StatusUnauthorized)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
			if err != nil {
				http.Error(w, "Failed to read request body", http.StatusBadRequest)
				return
			}
			r.Body.Close()

			if subtle.ConstantTimeCompare([]byte(signature), []byte(Sign(secret, body))) != 1 {
				http.Error(w, "Invalid webhook signature", http.StatusUnauthorized)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}

// Sign computes the hex encoded HMAC-SHA256 signature of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

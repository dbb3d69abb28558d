package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"courtbook/internal/pkg/errs"
)

var ErrInvalidSignature = errs.New("invalid webhook signature")

// VerifySignature checks the hex-encoded HMAC-SHA256 signature the
// payment collaborator sends over the raw request body. Comparison is
// constant time.
func VerifySignature(secret string, body []byte, signature string) error {
	if signature == "" {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	received, err := hex.DecodeString(signature)
	if err != nil {
		return errs.Mark(err, ErrInvalidSignature)
	}

	if !hmac.Equal(expected, received) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign computes the signature a collaborator would attach; used by tests
// and local tooling to construct valid deliveries.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

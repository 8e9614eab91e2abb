package billing

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Hasher turns a raw card number into an opaque, irreversible identifier.
type Hasher interface {
	Hash(cardNumber string) (string, error)
}

// CardHasher derives an irreversible identifier from a raw card number.
// The raw number is never persisted or logged; only the hex digest leaves
// this type.
type CardHasher struct {
	secret string
}

func NewCardHasher(secret string) *CardHasher {
	return &CardHasher{secret: secret}
}

// Hash strips all whitespace from the card number, prepends the secret
// and returns the hex-encoded SHA-256 digest. Deterministic for equal
// card numbers regardless of internal spacing.
func (h *CardHasher) Hash(cardNumber string) (string, error) {
	if strings.TrimSpace(cardNumber) == "" {
		return "", ErrInvalidCardNumber
	}

	salted := h.secret + whitespacePattern.ReplaceAllString(cardNumber, "")
	digest := sha256.Sum256([]byte(salted))

	return hex.EncodeToString(digest[:]), nil
}

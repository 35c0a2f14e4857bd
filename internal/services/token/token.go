// Package token generates the opaque single-use email verification tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenLength is the number of random bytes per token. 32 bytes yields a
// 64-character hex string with 256 bits of entropy; tokens double as unique
// lookup keys, so collision resistance matters as much as unguessability.
const tokenLength = 32

// Generate returns a cryptographically random verification token.
// Tokens carry no expiry; they stay valid until consumed.
func Generate() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateAPIKey returns a 32-character lowercase hexadecimal credential
// drawn from a cryptographically secure random source.
func GenerateAPIKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

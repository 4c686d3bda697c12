package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateOAuthState returns a random URL-safe value used as the OAuth2
// state parameter and matched against a short-lived cookie on callback.
func GenerateOAuthState(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

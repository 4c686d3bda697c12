package services

import (
	"strings"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
)

// requireName trims and checks a display name.
func requireName(field, value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", apperrors.NewValidationFailedError(field + " is required")
	}
	return name, nil
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

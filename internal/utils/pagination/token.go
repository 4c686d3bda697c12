package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeTransactionCursor creates an opaque, URL-safe token for the position
// just after the given row in the transaction listing.
func EncodeTransactionCursor(cursor domain.TransactionCursor) string {
	return EncodeMultiFieldToken(
		cursor.Date.String(),
		cursor.CreatedAt.UTC().Format(timeFormat),
		cursor.TransactionID,
	)
}

// DecodeTransactionCursor parses a token produced by EncodeTransactionCursor.
func DecodeTransactionCursor(token string) (*domain.TransactionCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 || parts[2] == "" {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := civil.ParseDate(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return &domain.TransactionCursor{Date: date, CreatedAt: createdAt, TransactionID: parts[2]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

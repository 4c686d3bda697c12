package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_ParsesBack(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWT("user-1", "secret", time.Hour, "finance", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt)

	claims, err := ParseAndValidateJWT(token.Token, "secret", "finance")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "finance", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	now := time.Now()
	valid, err := GenerateJWT("user-1", "secret", time.Hour, "finance", now)
	require.NoError(t, err)
	expired, err := GenerateJWT("user-1", "secret", time.Hour, "finance", now.Add(-2*time.Hour))
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", "secret", time.Hour, "finance", now)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1", Issuer: "finance"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		issuer string
	}{
		{"wrong secret", valid.Token, "other", "finance"},
		{"wrong issuer", valid.Token, "secret", "someone-else"},
		{"expired", expired.Token, "secret", "finance"},
		{"empty subject", noSubject.Token, "secret", "finance"},
		{"alg none", unsigned, "secret", "finance"},
		{"garbage", "not-a-token", "secret", "finance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseAndValidateJWT(tt.token, tt.secret, tt.issuer)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestParseAndValidateJWT_EmptyIssuerSkipsCheck(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "anything", time.Now())
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token.Token, "secret", "")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestGenerateOAuthState(t *testing.T) {
	a, err := GenerateOAuthState(24)
	require.NoError(t, err)
	b, err := GenerateOAuthState(24)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	_, err = GenerateOAuthState(0)
	assert.Error(t, err)
}

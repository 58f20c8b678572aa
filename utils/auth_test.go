package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifier_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("test-secret", "donor@example.com", "uid-123")
	require.NoError(t, err)

	claims, err := NewJWTVerifier("test-secret").Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "donor@example.com", claims.Email)
	assert.Equal(t, "uid-123", claims.UID)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("test-secret", "donor@example.com", "uid-123")
	require.NoError(t, err)

	_, err = NewJWTVerifier("other-secret").Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	_, err := NewJWTVerifier("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}

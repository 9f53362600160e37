package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	m := NewJWTManager("test-secret", 24)

	tokenString, err := m.GenerateToken(42, "alice", "a@x.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := m.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", 24)
	other := NewJWTManager("secret-b", 24)

	tokenString, err := m.GenerateToken(1, "alice", "a@x.com", false)
	require.NoError(t, err)

	_, err = other.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	// 负的有效期使 token 在签发时即已过期
	m := NewJWTManager("test-secret", -1)

	tokenString, err := m.GenerateToken(1, "alice", "a@x.com", false)
	require.NoError(t, err)

	_, err = m.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	m := NewJWTManager("test-secret", 24)

	_, err := m.VerifyToken("not.a.jwt")
	assert.Error(t, err)

	_, err = m.VerifyToken("")
	assert.Error(t, err)
}

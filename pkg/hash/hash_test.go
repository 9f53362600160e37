package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "pw123", hashed)

	// 相同密码的两次哈希因盐值不同而不同
	hashed2, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, hashed2)
}

func TestCheckPasswordHash(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hashed))
	assert.False(t, CheckPasswordHash("wrong password", hashed))
	assert.False(t, CheckPasswordHash("", hashed))
	assert.False(t, CheckPasswordHash("pw123", "not-a-bcrypt-hash"))
}

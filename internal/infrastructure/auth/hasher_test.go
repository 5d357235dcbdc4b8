package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptKeyHasher(t *testing.T) {
	hasher := NewBcryptKeyHasher(bcrypt.MinCost)

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := hasher.Hash("my-secret")
		require.NoError(t, err)
		assert.NotEqual(t, "my-secret", hash)

		assert.NoError(t, hasher.Verify("my-secret", hash))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		hash, err := hasher.Hash("my-secret")
		require.NoError(t, err)

		assert.Error(t, hasher.Verify("other-secret", hash))
	})

	t.Run("malformed hash fails with the same error", func(t *testing.T) {
		err := hasher.Verify("my-secret", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.Equal(t, "key verification failed", err.Error())
	})

	t.Run("out of range cost falls back to the default", func(t *testing.T) {
		h := NewBcryptKeyHasher(99)
		hash, err := h.Hash("my-secret")
		require.NoError(t, err)
		assert.NoError(t, h.Verify("my-secret", hash))
	})
}

func TestGenerateAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "hk_"))
	assert.Len(t, key, 3+2*apiKeyBytes)

	other, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

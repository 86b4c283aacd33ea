package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()
		first, err := HashPassword("mypassword")
		require.NoError(t, err)
		second, err := HashPassword("mypassword")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, VerifyPassword("mypassword", first))
		assert.True(t, VerifyPassword("mypassword", second))
	})

	t.Run("over-long password", func(t *testing.T) {
		t.Parallel()
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'a'
		}
		_, err := HashPassword(string(long))
		require.Error(t, err)
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correctpassword")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		t.Parallel()
		assert.True(t, VerifyPassword("correctpassword", hash))
	})

	t.Run("incorrect password", func(t *testing.T) {
		t.Parallel()
		assert.False(t, VerifyPassword("wrongpassword", hash))
	})

	t.Run("malformed hash", func(t *testing.T) {
		t.Parallel()
		assert.False(t, VerifyPassword("correctpassword", "not-a-bcrypt-hash"))
		assert.False(t, VerifyPassword("correctpassword", ""))
	})
}

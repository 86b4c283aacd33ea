package sec

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatmusic/riyaaz/internal/config"
	"github.com/prabhatmusic/riyaaz/internal/storage"
)

func TestEnsureDefaultAdmin(t *testing.T) {
	t.Parallel()

	cfg := config.Config{AdminUsername: "prabhat", AdminPassword: "a-long-stage-password"}
	logger := slog.New(slog.DiscardHandler)

	t.Run("creates the admin once", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		require.NoError(t, EnsureDefaultAdmin(t.Context(), cfg, store, logger))

		admin, err := store.GetAdminByUsername(t.Context(), "prabhat")
		require.NoError(t, err)
		assert.True(t, VerifyPassword("a-long-stage-password", admin.PasswordHash))

		// second run leaves the existing account untouched
		require.NoError(t, EnsureDefaultAdmin(t.Context(), cfg, store, logger))
		again, err := store.GetAdminByUsername(t.Context(), "prabhat")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, again.ID)
		assert.Equal(t, admin.PasswordHash, again.PasswordHash)
	})
}

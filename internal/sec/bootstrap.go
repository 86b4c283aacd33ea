package sec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prabhatmusic/riyaaz/internal/config"
	"github.com/prabhatmusic/riyaaz/internal/storage"
)

// EnsureDefaultAdmin creates the configured admin account if it does not
// exist yet. It must run once at startup, before the server accepts
// connections; a returned error is fatal. Existing accounts are left
// untouched, so a changed password in the environment does not rotate a
// previously created admin.
func EnsureDefaultAdmin(ctx context.Context, cfg config.Config, store storage.Admins, logger *slog.Logger) error {
	_, err := store.GetAdminByUsername(ctx, cfg.AdminUsername)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("look up default admin: %w", err)
	}

	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}
	if _, err := store.CreateAdmin(ctx, cfg.AdminUsername, hash); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	logger.InfoContext(ctx, "default admin created", slog.String("username", cfg.AdminUsername))
	return nil
}

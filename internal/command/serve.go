package command

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/prabhatmusic/riyaaz/internal/api"
	"github.com/prabhatmusic/riyaaz/internal/captcha"
	"github.com/prabhatmusic/riyaaz/internal/sec"
	"github.com/prabhatmusic/riyaaz/internal/server"
	"github.com/prabhatmusic/riyaaz/internal/storage"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the public site API and the admin content API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			logger := slog.Default()

			store := storage.NewMemory()
			// the default admin must exist before the first request comes in
			if err := sec.EnsureDefaultAdmin(ctx, cfg, store, logger); err != nil {
				return err
			}

			tokens := sec.NewTokens(cfg.JWTSecret)
			verifier := captcha.NewGoogle(cfg, logger)
			srv := api.New(cfg, logger, store, tokens, verifier)

			grp, ctx := errgroup.WithContext(ctx)

			listener, err := server.Listen(ctx, cfg.Address)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx,
				"starting API server...",
				slog.String("address", listener.Addr().String()),
				slog.String("env", cfg.Env),
			)
			server.Serve(ctx, grp, srv.Server, listener, server.ShutdownTimeout)
			return grp.Wait()
		},
	}
}

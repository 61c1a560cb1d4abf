package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/directory/internal/database"
	"github.com/deppfellow/directory/internal/handler"
	"github.com/deppfellow/directory/internal/repository"
	"github.com/deppfellow/directory/internal/router"
	"github.com/deppfellow/directory/internal/server"
	"github.com/deppfellow/directory/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// ServeCmd runs the HTTP API until SIGINT or SIGTERM.
func ServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the directory HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if migrate {
				migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
				err := database.Migrate(migrateCtx, log, cfg)
				cancel()
				if err != nil {
					return err
				}
			}

			srv, err := server.New(cfg, log)
			if err != nil {
				return err
			}

			repos := repository.NewRepositories(srv)
			services := service.NewServices(repos)
			handlers := handler.NewHandlers(srv, services)

			srv.SetupHTTPServer(router.NewRouter(srv, handlers))

			serveErr := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case err := <-serveErr:
				if err != nil {
					_ = srv.Shutdown(context.Background())
					return fmt.Errorf("failed to start server: %w", err)
				}
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Info().Msg("server exited properly")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")
	return cmd
}

package cli

import (
	"context"
	"time"

	"github.com/deppfellow/directory/internal/database"
	"github.com/spf13/cobra"
)

const migrateTimeout = 2 * time.Minute

// MigrateCmd applies the embedded schema migrations and exits.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			return database.Migrate(ctx, log, cfg)
		},
	}
}

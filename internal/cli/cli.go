// Package cli holds the cobra subcommands of the directory binary.
package cli

import (
	"fmt"

	"github.com/deppfellow/directory/internal/config"
	"github.com/deppfellow/directory/internal/logger"
	"github.com/rs/zerolog"
)

// bootstrap loads configuration and builds the root logger every command
// starts from.
func bootstrap() (*config.Config, *zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogger(cfg.Observability)
	return cfg, &log, nil
}

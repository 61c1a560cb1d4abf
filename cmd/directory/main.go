package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/directory/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "directory",
		Short: "Organizational directory API",
		Long: `directory serves departments, roles and employees stored in PostgreSQL
over a JSON HTTP API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

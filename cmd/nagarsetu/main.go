package main

import (
	"os"

	"github.com/spf13/cobra"

	"nagarsetu/internal/interfaces/cli/migrate"
	"nagarsetu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nagarsetu",
		Short: "Nagar Setu - civic issue reporting backend",
		Long:  `Nagar Setu is the backend for a civic issue reporting platform, with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"tickethub/internal/interfaces/cli/migrate"
	"tickethub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tickethub",
		Short: "TicketHub - support ticket tracking service",
		Long:  `TicketHub is a support ticket tracking service with role-based access control and a ticket lifecycle state machine.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

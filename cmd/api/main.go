package main

import (
	"log"
	"os"

	"berries/cmd/api/commands"

	"github.com/spf13/cobra"
)

func main() {
	serveCmd := commands.NewServeCommand()
	rootCmd := &cobra.Command{
		Use:   "berries",
		Short: "Recurring reminders and todo lists",
		Long:  "berries keeps recurring reminders and todo lists and notifies owners when a reminder is due.",
		// Running without a subcommand serves the API.
		RunE: serveCmd.RunE,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commands.NewRemindCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{Use: "formctl", Short: "Manage the QR creation form configuration"}

func init() {
	rootCmd.PersistentFlags().String("api-url", "http://localhost:8080", "FormConfig API base URL")
	rootCmd.PersistentFlags().String("output", "table", "Output format (table|json)")

	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newValidateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

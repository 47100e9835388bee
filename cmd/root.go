package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rimao416/facture/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "facture",
	Short: "facture - Quote and invoice generator",
	Long: `facture turns business, client and line-item form data into a
computed invoice (subtotal, percentage discount, net total) and exports
it as a paginated PDF document.

The form data is a JSON file matching the InvoiceFormData shape: company
and client details, line items (description, date, quantity, unit, unit
price), a discount percentage and an optional currency code.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("facture executed")

		fmt.Println("Welcome to facture!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rimao416/facture/internal/invoice"
	"github.com/Rimao416/facture/internal/logger"
	"github.com/Rimao416/facture/pkg/models"
)

var computeCmd = &cobra.Command{
	Use:   "compute [form-file]",
	Short: "Compute an invoice from form data and print it as JSON",
	Long: `Build the fully computed invoice record from a form-data JSON file:
positional line-item IDs, derived amounts, subtotal, discount amount, net
total, a generated invoice number and the invoice/due date pair.

Nothing is rendered; the computed record is printed as JSON. Use this to
inspect what 'generate' would put on the document.`,
	Example: `  # Print the computed invoice to stdout
  facture compute form.json

  # Save the computed invoice to a file
  facture compute form.json -o invoice.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("compute")

	outputPath, _ := cmd.Flags().GetString("output")

	form, err := loadFormData(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Failed to load form data")
		return err
	}

	inv := invoice.BuildInvoice(form)

	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Float64("total", inv.Total).
		Msg("Invoice computed")

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode invoice: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Computed invoice written to: %s\n", outputPath)
	return nil
}

// loadFormData reads and decodes an InvoiceFormData JSON file. Fields the
// file leaves out decode as their zero values; the computation pipeline
// accepts those as-is.
func loadFormData(path string) (models.InvoiceFormData, error) {
	var form models.InvoiceFormData

	data, err := os.ReadFile(path)
	if err != nil {
		return form, fmt.Errorf("failed to read form data: %w", err)
	}
	if err := json.Unmarshal(data, &form); err != nil {
		return form, fmt.Errorf("failed to parse form data: %w", err)
	}
	return form, nil
}

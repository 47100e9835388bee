package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rimao416/facture/internal/config"
	"github.com/Rimao416/facture/internal/invoice"
	"github.com/Rimao416/facture/internal/logger"
	"github.com/Rimao416/facture/internal/pdf"
)

var generateCmd = &cobra.Command{
	Use:   "generate [form-file]",
	Short: "Generate an invoice PDF from form data",
	Long: `Build the computed invoice from a form-data JSON file and export it
as a paginated A4 PDF: brand header, company and client blocks, the
line-item table, the totals block (discount row only when a discount
applies) and the footer.

The artifact is named Factures-<invoiceNumber>.pdf unless -o overrides
it. The export fails when the company name is empty or the item list is
empty; nothing is written in that case.`,
	Example: `  # Export next to the form file, named after the invoice number
  facture generate form.json

  # Export to an explicit path
  facture generate form.json -o devis.pdf

  # Export into a directory, keeping the generated name
  facture generate form.json --dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Output file path (default: generated name in --dir)")
	generateCmd.Flags().String("dir", "", "Output directory for the generated name (default: OUTPUT_DIR or .)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	outputPath, _ := cmd.Flags().GetString("output")
	outputDir, _ := cmd.Flags().GetString("dir")
	if outputDir == "" {
		outputDir = config.Load().OutputDir
	}

	form, err := loadFormData(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Failed to load form data")
		return err
	}

	inv := invoice.BuildInvoice(form)
	exporter := pdf.NewExporter()

	if outputPath == "" {
		path, err := exporter.WriteFile(inv, outputDir)
		if err != nil {
			return err
		}
		fmt.Printf("Invoice exported to: %s\n", path)
		return nil
	}

	data, err := exporter.RenderInvoice(inv)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("path", outputPath).
		Msg("Invoice exported")

	fmt.Printf("Invoice exported to: %s\n", outputPath)
	return nil
}

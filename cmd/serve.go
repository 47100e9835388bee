package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Rimao416/facture/internal/config"
	"github.com/Rimao416/facture/internal/logger"
	"github.com/Rimao416/facture/internal/pdf"
	"github.com/Rimao416/facture/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the invoice generator over HTTP",
	Long: `Start an HTTP server exposing the generation pipeline:

  POST /generate-invoice  accepts an InvoiceFormData JSON body and
                          responds with the PDF as an attachment
  GET  /healthz           liveness probe

The server shuts down gracefully on SIGINT/SIGTERM.`,
	Example: `  # Listen on the default address (:8080, or LISTEN_ADDR)
  facture serve

  # Listen on an explicit address
  facture serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default: LISTEN_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = config.Load().ListenAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", addr).Msg("Starting invoice server")

	srv := server.New(addr, pdf.NewExporter())
	return srv.Run(ctx)
}

// Package server exposes the compute-and-export pipeline over HTTP: one
// endpoint that accepts the form data and answers with the rendered PDF
// as a downloadable attachment.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Rimao416/facture/internal/invoice"
	"github.com/Rimao416/facture/internal/logger"
	"github.com/Rimao416/facture/internal/pdf"
	"github.com/Rimao416/facture/pkg/models"
)

// Server serves the invoice generation endpoint.
type Server struct {
	addr     string
	exporter *pdf.Exporter
	log      zerolog.Logger
}

// New creates a Server listening on addr.
func New(addr string, exporter *pdf.Exporter) *Server {
	return &Server{
		addr:     addr,
		exporter: exporter,
		log:      logger.WithComponent("server"),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	r.HandleFunc("/generate-invoice", s.handleGenerateInvoice).Methods(http.MethodPost)
	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info().Msg("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleCatalog exposes the enumerated unit and currency choices the form
// offers. Free-text values remain accepted on the form itself.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"units":      invoice.Units,
		"currencies": invoice.Currencies,
	})
}

// handleGenerateInvoice accepts an InvoiceFormData JSON body, builds the
// computed invoice and streams the PDF back as an attachment. Malformed
// JSON maps to 400, an invoice the exporter refuses (no company name, no
// line items) to 422.
func (s *Server) handleGenerateInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.WithRequestID(requestID(r))

	var form models.InvoiceFormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Warn().Err(err).Msg("Rejecting malformed form data")
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	inv := invoice.BuildInvoice(form)

	data, err := s.exporter.RenderInvoice(inv)
	if err != nil {
		if errors.Is(err, invoice.ErrMissingCompanyName) || errors.Is(err, invoice.ErrNoLineItems) {
			log.Warn().Err(err).Msg("Rejecting incomplete invoice")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).Msg("Invoice rendering failed")
		http.Error(w, "error generating the invoice document", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Msg("Invoice generated")

	w.Header().Set("Content-Disposition", "attachment; filename="+pdf.FileName(inv))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

package pdf_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rimao416/facture/internal/invoice"
	"github.com/Rimao416/facture/internal/pdf"
	"github.com/Rimao416/facture/pkg/models"
)

func sampleInvoice(itemCount int) models.InvoiceData {
	form := models.InvoiceFormData{
		Company: models.CompanyInfo{
			Name:    "SINAI DESIGN",
			Contact: "Christian LUBOYA",
			Address: "9 RUE OTHMANE EL GHARBI",
			City:    "1003 TUNIS",
			Phone:   "+21651609674",
			Email:   "contact@sinaidesign.tn",
		},
		Client: models.ClientInfo{
			Name:    "Stéphane TSHIKADI",
			Company: "Betterchoice firm",
		},
		Discount: 10,
	}
	for i := 0; i < itemCount; i++ {
		form.Items = append(form.Items, models.LineItemInput{
			Description: fmt.Sprintf("Article %d", i+1),
			Date:        "01/06/2025",
			Quantity:    float64(i + 1),
			Unit:        "pcs",
			UnitPrice:   12.5,
		})
	}
	return invoice.BuildInvoice(form)
}

func TestRenderInvoice(t *testing.T) {
	data, err := pdf.NewExporter().RenderInvoice(sampleInvoice(3))
	if err != nil {
		t.Fatalf("RenderInvoice: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
	if len(data) < 1000 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestRenderInvoiceManyItems(t *testing.T) {
	// Enough rows to force page breaks.
	data, err := pdf.NewExporter().RenderInvoice(sampleInvoice(80))
	if err != nil {
		t.Fatalf("RenderInvoice with 80 items: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestRenderInvoiceRejectsMissingCompanyName(t *testing.T) {
	inv := sampleInvoice(1)
	inv.Company.Name = ""

	data, err := pdf.NewExporter().RenderInvoice(inv)
	if !errors.Is(err, invoice.ErrMissingCompanyName) {
		t.Fatalf("RenderInvoice = %v, want ErrMissingCompanyName", err)
	}
	if data != nil {
		t.Errorf("partial artifact returned alongside the error")
	}

	var exportErr *invoice.ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("error is not an *ExportError: %T", err)
	}
	if exportErr.Op != "RenderInvoice" {
		t.Errorf("ExportError.Op = %q, want RenderInvoice", exportErr.Op)
	}
}

func TestRenderInvoiceRejectsEmptyItems(t *testing.T) {
	inv := sampleInvoice(0)

	_, err := pdf.NewExporter().RenderInvoice(inv)
	if !errors.Is(err, invoice.ErrNoLineItems) {
		t.Fatalf("RenderInvoice = %v, want ErrNoLineItems", err)
	}
}

func TestWriteFile(t *testing.T) {
	inv := sampleInvoice(2)
	dir := t.TempDir()

	path, err := pdf.NewExporter().WriteFile(inv, dir)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("artifact written to %q, want directory %q", path, dir)
	}
	if filepath.Base(path) != pdf.FileName(inv) {
		t.Errorf("artifact named %q, want %q", filepath.Base(path), pdf.FileName(inv))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("artifact does not start with a PDF header")
	}
}

func TestWriteFileSkippedOnValidationError(t *testing.T) {
	inv := sampleInvoice(0)
	dir := t.TempDir()

	if _, err := pdf.NewExporter().WriteFile(inv, dir); err == nil {
		t.Fatal("WriteFile succeeded for an invoice without items")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("partial file left behind: %v", entries)
	}
}

func TestFileName(t *testing.T) {
	inv := models.InvoiceData{InvoiceNumber: "SL-202503-042"}

	if got := pdf.FileName(inv); got != "Factures-SL-202503-042.pdf" {
		t.Errorf("FileName = %q, want Factures-SL-202503-042.pdf", got)
	}
	if got := pdf.DocumentTitle(inv); got != "Factures-SL-202503-042" {
		t.Errorf("DocumentTitle = %q, want Factures-SL-202503-042", got)
	}
	if !strings.Contains(pdf.FileName(inv), inv.InvoiceNumber) {
		t.Errorf("filename %q does not contain the invoice number", pdf.FileName(inv))
	}
}

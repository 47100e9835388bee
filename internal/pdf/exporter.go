// Package pdf renders a computed invoice as a paginated A4 document.
//
// The layout is a fixed contract mirrored from the reference document:
// brand header, two-column party block, line-item table with fixed column
// widths, totals block and a French boilerplate footer. Column widths are
// part of the contract and are never computed from content.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/Rimao416/facture/internal/invoice"
	"github.com/Rimao416/facture/internal/logger"
	"github.com/Rimao416/facture/pkg/models"
)

// ArtifactPrefix is the filename and title prefix of every exported
// document.
const ArtifactPrefix = "Factures"

// brandInitials is printed inside the header brand mark.
const brandInitials = "SL"

// Fixed table column widths in mm. Layout contract.
var columnWidths = [6]float64{60, 25, 15, 20, 30, 35}

var columnHeaders = [6]string{"Description", "Date", "Qté", "Unité", "Prix unitaire", "Montant"}

// Column text alignment: quantity centered, money right-aligned.
var columnAligns = [6]string{"L", "L", "C", "L", "R", "R"}

const (
	pageLeft    = 20.0
	tableTop    = 125.0
	rowHeight   = 7.0
	pageBreakAt = 270.0 // table rows stop here, A4 is 297mm tall
	totalsX     = 130.0
	totalsWidth = 50.0
	footerTop   = 270.0
)

// Exporter renders InvoiceData records into downloadable PDF artifacts.
// It holds no per-invoice state and is safe for reuse.
type Exporter struct {
	log zerolog.Logger
}

// NewExporter creates a PDF exporter.
func NewExporter() *Exporter {
	return &Exporter{
		log: logger.WithComponent("pdf-exporter"),
	}
}

// FileName returns the artifact name for an invoice:
// Factures-<invoiceNumber>.pdf.
func FileName(inv models.InvoiceData) string {
	return fmt.Sprintf("%s-%s.pdf", ArtifactPrefix, inv.InvoiceNumber)
}

// DocumentTitle returns the title printed in the document header.
func DocumentTitle(inv models.InvoiceData) string {
	return fmt.Sprintf("%s-%s", ArtifactPrefix, inv.InvoiceNumber)
}

// RenderInvoice produces the PDF document for a computed invoice.
//
// The invoice must carry a company name and at least one line item;
// otherwise a typed ExportError wrapping ErrMissingCompanyName or
// ErrNoLineItems is returned and nothing is rendered. Any rendering
// failure propagates to the caller; no partial artifact is emitted.
func (e *Exporter) RenderInvoice(inv models.InvoiceData) ([]byte, error) {
	if err := invoice.ValidateForExport(inv); err != nil {
		e.log.Warn().
			Str("invoice_number", inv.InvoiceNumber).
			Err(err).
			Msg("Refusing to export incomplete invoice")
		return nil, invoice.NewExportError("RenderInvoice", err, inv.InvoiceNumber)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	e.renderHeader(doc, tr, inv)
	e.renderParties(doc, tr, inv)
	finalY := e.renderItemTable(doc, tr, inv)
	e.renderTotals(doc, tr, inv, finalY)
	e.renderFooter(doc, tr, inv)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, invoice.NewExportError("RenderInvoice", fmt.Errorf("%w: %v", invoice.ErrRenderFailed, err), inv.InvoiceNumber)
	}

	e.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Int("bytes", buf.Len()).
		Msg("Invoice rendered")

	return buf.Bytes(), nil
}

// WriteFile renders the invoice and writes the artifact into dir,
// returning the full path. The file is only created once rendering has
// fully succeeded.
func (e *Exporter) WriteFile(inv models.InvoiceData, dir string) (string, error) {
	data, err := e.RenderInvoice(inv)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(inv))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", invoice.NewExportError("WriteFile", err, inv.InvoiceNumber)
	}

	e.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("path", path).
		Msg("Invoice written")

	return path, nil
}

// renderHeader draws the brand mark, the document title and the date pair.
func (e *Exporter) renderHeader(doc *gofpdf.Fpdf, tr func(string) string, inv models.InvoiceData) {
	// Rounded blue brand mark with the initials centered inside.
	doc.SetFillColor(30, 64, 175)
	doc.RoundedRect(20, 20, 25, 25, 5, "1234", "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 16)
	doc.SetXY(20, 30)
	doc.CellFormat(25, 10, brandInitials, "", 0, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 24)
	doc.Text(55, 35, tr(DocumentTitle(inv)))

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.Text(55, 45, tr("Date de facturation: "+inv.InvoiceDate))
	doc.Text(55, 52, tr("Échéance: "+inv.DueDate))
}

// renderParties draws the issuer block on the left and the client block
// on the right. Empty fields render as blank lines.
func (e *Exporter) renderParties(doc *gofpdf.Fpdf, tr func(string) string, inv models.InvoiceData) {
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(pageLeft, 70, tr(strings.ToUpper(inv.Company.Name)))

	doc.SetFont("Helvetica", "", 10)
	doc.Text(pageLeft, 78, tr(inv.Company.Contact))
	doc.Text(pageLeft, 85, tr(inv.Company.Address))
	doc.Text(pageLeft, 92, tr(inv.Company.City))
	doc.Text(pageLeft, 99, tr(inv.Company.Phone))
	doc.Text(pageLeft, 106, tr(inv.Company.Email))

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(140, 70, tr(inv.Client.Name))
	doc.SetFont("Helvetica", "", 10)
	doc.Text(140, 78, tr(inv.Client.Company))
}

// renderItemTable draws the line-item table starting at the fixed table
// top, breaking to fresh pages (with a repeated header row) as needed.
// It returns the Y position just below the last row.
func (e *Exporter) renderItemTable(doc *gofpdf.Fpdf, tr func(string) string, inv models.InvoiceData) float64 {
	doc.SetY(tableTop)
	e.renderTableHead(doc, tr)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)

	for i, item := range inv.Items {
		if doc.GetY()+rowHeight > pageBreakAt {
			doc.AddPage()
			doc.SetY(20)
			e.renderTableHead(doc, tr)
			doc.SetFont("Helvetica", "", 9)
			doc.SetTextColor(0, 0, 0)
		}

		fill := i%2 == 1
		doc.SetFillColor(248, 250, 252)

		cells := [6]string{
			item.Description,
			item.Date,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			item.Unit,
			invoice.FormatCurrency(item.UnitPrice, inv.Currency),
			invoice.FormatCurrency(item.Amount, inv.Currency),
		}

		doc.SetX(pageLeft)
		for col, cell := range cells {
			doc.CellFormat(columnWidths[col], rowHeight, tr(cell), "1", 0, columnAligns[col], fill, 0, "")
		}
		doc.Ln(rowHeight)
	}

	return doc.GetY()
}

// renderTableHead draws the blue header row at the current Y position.
func (e *Exporter) renderTableHead(doc *gofpdf.Fpdf, tr func(string) string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(30, 64, 175)
	doc.SetTextColor(255, 255, 255)

	doc.SetX(pageLeft)
	for col, header := range columnHeaders {
		doc.CellFormat(columnWidths[col], rowHeight, tr(header), "1", 0, "L", true, 0, "")
	}
	doc.Ln(rowHeight)
}

// renderTotals draws the totals block below the table: subtotal, the
// discount row only when a discount applies, then the emphasized net
// total, followed by the signature lines.
func (e *Exporter) renderTotals(doc *gofpdf.Fpdf, tr func(string) string, inv models.InvoiceData, tableEnd float64) {
	y := tableEnd + 20
	if y+40 > pageBreakAt {
		doc.AddPage()
		y = 40
	}

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)

	doc.Text(totalsX, y, tr("Sous-total TTC"))
	e.rightAlignedAmount(doc, tr, inv.Subtotal, inv.Currency, y)

	if inv.Discount > 0 {
		y += 8
		doc.Text(totalsX, y, tr(fmt.Sprintf("Remise (%s%%)", strconv.FormatFloat(inv.Discount, 'f', -1, 64))))
		e.rightAlignedAmount(doc, tr, inv.DiscountAmount, inv.Currency, y)
	}

	y += 8
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(totalsX, y, tr("Net à payer"))
	e.rightAlignedAmount(doc, tr, inv.Total, inv.Currency, y)

	// Signature block.
	y += 30
	doc.SetFont("Helvetica", "", 10)
	doc.Text(pageLeft, y, tr(inv.Client.Name))
	doc.Text(pageLeft, y+5, tr(fmt.Sprintf("%s (%s)", inv.Client.Name, inv.InvoiceDate)))
}

// rightAlignedAmount prints a formatted amount right-aligned against the
// totals column edge, on the text baseline at y.
func (e *Exporter) rightAlignedAmount(doc *gofpdf.Fpdf, tr func(string) string, amount float64, cur models.Currency, y float64) {
	text := tr(invoice.FormatCurrency(amount, cur))
	doc.Text(totalsX+totalsWidth-doc.GetStringWidth(text), y, text)
}

// renderFooter draws the fixed boilerplate at the bottom of the last page.
func (e *Exporter) renderFooter(doc *gofpdf.Fpdf, tr func(string) string, inv models.InvoiceData) {
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(100, 100, 100)

	doc.SetY(footerTop)
	doc.CellFormat(0, 4, tr("Notre rapidité à vous satisfaire équivaut à la célérité"), "", 1, "C", false, 0, "")
	doc.SetY(footerTop + 8)
	doc.CellFormat(0, 4, tr("Merci d'avoir fait confiance à "+inv.Company.Name), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 8)
	doc.SetY(footerTop + 18)
	doc.CellFormat(0, 4, tr(strings.ToUpper(inv.Company.Name)), "", 1, "C", false, 0, "")
}

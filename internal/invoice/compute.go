// Package invoice implements the computation and formatting core of the
// quote/invoice generator.
//
// Everything in this package is a pure function over the domain model:
// line amounts, subtotal, percentage discount, net total, invoice-number
// generation and the locale formatting used on the document. Amounts are
// computed in full float64 precision; rounding happens only when a value
// is formatted for display.
//
// The arithmetic helpers apply no input clamping. CalculateDiscountAmount
// with a percentage outside [0,100] produces an out-of-range discount and
// CalculateTotal can then go negative; callers that accept user input are
// expected to clamp first, which BuildInvoice does.
package invoice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Rimao416/facture/pkg/models"
)

// InvoiceNumberPrefix is the fixed prefix of every generated invoice
// number. The full format is PREFIX-YYYYMM-NNN and is a compatibility
// contract; do not change it without updating the export filename.
const InvoiceNumberPrefix = "SL"

// DueDateOffsetDays is the default payment term applied to a freshly
// built invoice.
const DueDateOffsetDays = 15

// CalculateAmount returns the amount of one line: quantity times unit
// price, unrounded.
func CalculateAmount(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// CalculateSubtotal sums the amounts of all items. An empty slice yields 0.
func CalculateSubtotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}
	return sum
}

// CalculateDiscountAmount returns subtotal * percent / 100. The percent is
// used as given; out-of-range values are the caller's problem.
func CalculateDiscountAmount(subtotal, percent float64) float64 {
	return subtotal * percent / 100
}

// CalculateTotal returns the net amount: subtotal minus discount.
func CalculateTotal(subtotal, discountAmount float64) float64 {
	return subtotal - discountAmount
}

// GenerateInvoiceNumber returns a pseudo-unique invoice number for the
// current date, formatted SL-YYYYMM-NNN. The 3-digit suffix is random;
// uniqueness is not guaranteed across invocations.
func GenerateInvoiceNumber() string {
	return GenerateInvoiceNumberAt(time.Now())
}

// GenerateInvoiceNumberAt is GenerateInvoiceNumber with a caller-supplied
// clock, for deterministic date parts.
func GenerateInvoiceNumberAt(now time.Time) string {
	return fmt.Sprintf("%s-%04d%02d-%03d", InvoiceNumberPrefix, now.Year(), int(now.Month()), rand.Intn(1000))
}

// ClampDiscountPercent forces a form-supplied discount percentage into
// [0,100].
func ClampDiscountPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildInvoice turns the editable form state into a fully computed
// InvoiceData: positional item IDs, derived amounts, subtotal, discount,
// net total, a generated invoice number and the date pair (today and
// today + 15 days). The discount percent is clamped to [0,100] here, at
// the form boundary.
func BuildInvoice(form models.InvoiceFormData) models.InvoiceData {
	return BuildInvoiceAt(form, time.Now())
}

// BuildInvoiceAt is BuildInvoice with a caller-supplied clock.
func BuildInvoiceAt(form models.InvoiceFormData, now time.Time) models.InvoiceData {
	items := make([]models.LineItem, len(form.Items))
	for i, in := range form.Items {
		items[i] = models.LineItem{
			ID:          fmt.Sprintf("item-%d", i+1),
			Description: in.Description,
			Date:        in.Date,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			UnitPrice:   in.UnitPrice,
			Amount:      CalculateAmount(in.Quantity, in.UnitPrice),
		}
	}

	discount := ClampDiscountPercent(form.Discount)
	subtotal := CalculateSubtotal(items)
	discountAmount := CalculateDiscountAmount(subtotal, discount)

	return models.InvoiceData{
		InvoiceNumber:  GenerateInvoiceNumberAt(now),
		InvoiceDate:    FormatDate(now),
		DueDate:        FormatDate(now.AddDate(0, 0, DueDateOffsetDays)),
		Company:        form.Company,
		Client:         form.Client,
		Items:          items,
		Subtotal:       subtotal,
		Discount:       discount,
		DiscountAmount: discountAmount,
		Total:          CalculateTotal(subtotal, discountAmount),
		Currency:       ResolveCurrency(form.Currency),
	}
}

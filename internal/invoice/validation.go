package invoice

import (
	"strings"

	"github.com/Rimao416/facture/pkg/models"
)

// ValidateForExport checks the fields an exported document cannot do
// without: the issuing company name and at least one line item. The
// computation pipeline itself never rejects input; only the export path
// fails fast instead of rendering blank regions.
//
// Failures come back as a *ValidationError naming the offending field,
// wrapping ErrMissingCompanyName or ErrNoLineItems for errors.Is.
func ValidateForExport(inv models.InvoiceData) error {
	if strings.TrimSpace(inv.Company.Name) == "" {
		return NewValidationError("company.name", inv.Company.Name, "required", ErrMissingCompanyName)
	}
	if len(inv.Items) == 0 {
		return NewValidationError("items", len(inv.Items), "at least one line item is required", ErrNoLineItems)
	}
	return nil
}

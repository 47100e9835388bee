package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rimao416/facture/pkg/models"
)

// Formatting follows the fr-TN / fr-FR conventions of the generated
// documents: three decimal places, comma as the decimal separator and a
// no-break space between thousands groups. The separators are a frozen
// presentation contract, not derived from locale tables.

// groupSeparator is U+00A0, the no-break space used between thousands
// groups. It survives the cp1252 translation done by the PDF renderer.
const groupSeparator = "\u00a0"

// FormatCurrency renders an amount in the fr-TN convention, suffixed with
// the currency code: 1 234,567 TND. Rounding to three decimals happens
// here and only here; computation keeps full float precision.
func FormatCurrency(amount float64, currency models.Currency) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(3)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	b.WriteByte(' ')
	b.WriteString(currency.Code)
	return b.String()
}

// FormatDate renders a date as dd/mm/yyyy, zero-padded.
func FormatDate(date time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", date.Day(), int(date.Month()), date.Year())
}

// FormatDateForInput converts a display date (dd/mm/yyyy) to the
// yyyy-mm-dd form a date-picker widget expects. Input that does not have
// exactly three /-separated segments is returned unchanged; parsing is
// deliberately lenient.
func FormatDateForInput(displayDate string) string {
	parts := strings.Split(displayDate, "/")
	if len(parts) != 3 {
		return displayDate
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// FormatDateFromInput converts a date-picker value (yyyy-mm-dd) back to
// the display form dd/mm/yyyy. Same leniency as FormatDateForInput: a
// value without exactly three --separated segments passes through
// unchanged.
func FormatDateFromInput(inputDate string) string {
	parts := strings.Split(inputDate, "-")
	if len(parts) != 3 {
		return inputDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

package invoice_test

import (
	"errors"
	"testing"

	"github.com/Rimao416/facture/internal/invoice"
	"github.com/Rimao416/facture/pkg/models"
)

func TestResolveCurrencyCatalog(t *testing.T) {
	got := invoice.ResolveCurrency("EUR")
	want := models.Currency{Code: "EUR", Symbol: "€", Name: "Euro"}
	if got != want {
		t.Errorf("ResolveCurrency(EUR) = %+v, want %+v", got, want)
	}
}

func TestResolveCurrencyDefault(t *testing.T) {
	got := invoice.ResolveCurrency("")
	if got.Code != "TND" {
		t.Errorf("ResolveCurrency(\"\") = %+v, want the TND default", got)
	}
}

func TestResolveCurrencyFreeCode(t *testing.T) {
	got := invoice.ResolveCurrency("xbt")
	want := models.Currency{Code: "XBT", Symbol: "XBT", Name: "XBT"}
	if got != want {
		t.Errorf("ResolveCurrency(xbt) = %+v, want %+v", got, want)
	}
}

func TestResolveCurrencyTrimsInput(t *testing.T) {
	got := invoice.ResolveCurrency("  usd ")
	if got.Code != "USD" || got.Symbol != "$" {
		t.Errorf("ResolveCurrency(\"  usd \") = %+v, want the USD entry", got)
	}
}

func TestValidateForExport(t *testing.T) {
	valid := models.InvoiceData{
		Company: models.CompanyInfo{Name: "SINAI DESIGN"},
		Items:   []models.LineItem{{ID: "item-1", Amount: 80}},
	}
	if err := invoice.ValidateForExport(valid); err != nil {
		t.Errorf("ValidateForExport(valid) = %v, want nil", err)
	}

	noName := valid
	noName.Company.Name = "   "
	err := invoice.ValidateForExport(noName)
	if !errors.Is(err, invoice.ErrMissingCompanyName) {
		t.Errorf("ValidateForExport(no name) = %v, want ErrMissingCompanyName", err)
	}
	var valErr *invoice.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error is not a *ValidationError: %T", err)
	}
	if valErr.Field != "company.name" {
		t.Errorf("ValidationError.Field = %q, want company.name", valErr.Field)
	}

	noItems := valid
	noItems.Items = nil
	err = invoice.ValidateForExport(noItems)
	if !errors.Is(err, invoice.ErrNoLineItems) {
		t.Errorf("ValidateForExport(no items) = %v, want ErrNoLineItems", err)
	}
	if !errors.As(err, &valErr) {
		t.Fatalf("error is not a *ValidationError: %T", err)
	}
	if valErr.Field != "items" {
		t.Errorf("ValidationError.Field = %q, want items", valErr.Field)
	}
}

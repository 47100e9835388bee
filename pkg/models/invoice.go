package models

// LineItem is one billable row on an invoice or quote.
//
// ID is positional ("item-1", "item-2", ...) and stable only within one
// build of the invoice. Amount is always derived from Quantity and
// UnitPrice; it is never edited independently.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // display format, dd/mm/yyyy
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// LineItemInput is a line item as entered on the form, before the
// positional ID and the derived amount exist.
type LineItemInput struct {
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CompanyInfo identifies the issuing business. All fields are free text.
type CompanyInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ClientInfo identifies the invoice recipient.
type ClientInfo struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Currency describes the single currency an invoice is expressed in.
// Either one of the catalog entries or a user-supplied code, in which
// case Symbol and Name fall back to the code itself.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// InvoiceData is a fully computed invoice: the form input plus every
// derived field. It is built fresh for each export and never persisted.
type InvoiceData struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"` // dd/mm/yyyy
	DueDate       string `json:"dueDate"`     // invoice date + 15 days

	Company CompanyInfo `json:"company"`
	Client  ClientInfo  `json:"client"`

	Items []LineItem `json:"items"`

	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"` // percent, clamped to [0,100]
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`

	Currency Currency `json:"currency"`
}

// InvoiceFormData is the form-to-core boundary record: everything the
// user can edit, nothing that is derived.
type InvoiceFormData struct {
	Company  CompanyInfo     `json:"company"`
	Client   ClientInfo      `json:"client"`
	Items    []LineItemInput `json:"items"`
	Discount float64         `json:"discount"` // percent
	Currency string          `json:"currency"` // code; empty means the default
}

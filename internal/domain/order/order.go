package order

import (
	"strings"

	"github.com/zarobax/ams-order-form/internal/domain/quote"
)

// Line is one selected order line: a master-quote line plus the quantity
// being ordered this time.
type Line struct {
	Qty  int
	Item quote.Line
}

// Address is one shipping or billing block of the new-customer section.
type Address struct {
	Line1        string `json:"line1"`
	Line2        string `json:"line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
}

func (a Address) complete() bool {
	return a.Line1 != "" && a.City != "" && a.State != "" && a.Zip != "" &&
		a.ContactName != "" && a.ContactPhone != "" && a.ContactEmail != ""
}

func (a Address) trimmed() Address {
	return Address{
		Line1:        strings.TrimSpace(a.Line1),
		Line2:        strings.TrimSpace(a.Line2),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(a.State),
		Zip:          strings.TrimSpace(a.Zip),
		ContactName:  strings.TrimSpace(a.ContactName),
		ContactPhone: strings.TrimSpace(a.ContactPhone),
		ContactEmail: strings.TrimSpace(a.ContactEmail),
	}
}

// Account carries the one-time new-customer details. They go on the order
// email only and are never persisted with the master quote.
type Account struct {
	Shipping              Address `json:"shipping"`
	BillingSameAsShipping bool    `json:"billingSameAsShipping"`
	Billing               Address `json:"billing"`
	TaxExempt             bool    `json:"taxExempt"`
	County                string  `json:"county"`
}

// EffectiveBilling resolves the billing block, honoring same-as-shipping.
func (a Account) EffectiveBilling() Address {
	if a.BillingSameAsShipping {
		return a.Shipping.trimmed()
	}
	return a.Billing.trimmed()
}

var (
	errShippingFields = quote.NewValidationError("Please fill in all required shipping fields for the new customer.")
	errBillingFields  = quote.NewValidationError("Please fill in all required billing fields for the new customer.")
	errCountyRequired = quote.NewValidationError("Please enter the county for taxable customers.")
)

// Validate checks the required new-customer fields: the full shipping block,
// the billing block unless it mirrors shipping, and the county for taxable
// customers.
func (a Account) Validate() error {
	if !a.Shipping.trimmed().complete() {
		return errShippingFields
	}
	if !a.BillingSameAsShipping && !a.Billing.trimmed().complete() {
		return errBillingFields
	}
	if !a.TaxExempt && strings.TrimSpace(a.County) == "" {
		return errCountyRequired
	}
	return nil
}

// Order is a single submitted order, ready for composition into an email or
// a pick-list document.
type Order struct {
	CustomerName string
	ShipTo       string
	Lines        []Line
	Account      *Account
}

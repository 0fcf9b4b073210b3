package order

import (
	"fmt"
	"net/url"
	"strings"
)

// Email is the composed outbound order message, handed to whatever mail
// mechanism the caller uses.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

// Subject returns the order email subject line.
func (o Order) Subject() string {
	return "Order for " + o.CustomerName
}

// Text formats one pick-and-pack line. Unit, code, and price suffixes are
// omitted when the field is absent.
func (l Line) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %d x %s", l.Qty, l.Item.Name)
	if l.Item.UOM != "" {
		b.WriteString(" (" + l.Item.UOM + ")")
	}
	if l.Item.Code != "" {
		b.WriteString(" / " + l.Item.Code)
	}
	if l.Item.Price.Set {
		fmt.Fprintf(&b, " — $%.2f each", l.Item.Price.Value)
	}
	return b.String()
}

// Body renders the full plain-text order email for the warehouse.
func (o Order) Body(companyName string) string {
	var b strings.Builder

	b.WriteString("New order for customer: " + o.CustomerName + "\n\n")
	b.WriteString("Please pick and pack the following:\n\n")

	lines := make([]string, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, l.Text())
	}
	b.WriteString(strings.Join(lines, "\n") + "\n\n")

	if shipTo := strings.TrimSpace(o.ShipTo); shipTo != "" {
		b.WriteString("Ship To / Notes:\n" + shipTo + "\n\n")
	}

	if o.Account != nil {
		writeAccount(&b, *o.Account)
	}

	b.WriteString("Thank you,\n" + companyName + "\n")
	return b.String()
}

func writeAccount(b *strings.Builder, acct Account) {
	ship := acct.Shipping.trimmed()
	bill := acct.EffectiveBilling()

	b.WriteString("Customer account information:\n\n")

	b.WriteString("Shipping Address:\n")
	writeAddress(b, ship, "")
	b.WriteString("\n")

	b.WriteString("Billing Address:\n")
	writeAddress(b, bill, " (AP)")
	b.WriteString("\n")

	if acct.TaxExempt {
		b.WriteString("Tax Exempt Status: Tax Exempt\n")
	} else {
		b.WriteString("Tax Exempt Status: Taxable\n")
		if county := strings.TrimSpace(acct.County); county != "" {
			b.WriteString("County: " + county + "\n")
		}
	}
	b.WriteString("\n")
}

func writeAddress(b *strings.Builder, a Address, contactSuffix string) {
	if a.Line1 != "" {
		b.WriteString(a.Line1 + "\n")
	}
	if a.Line2 != "" {
		b.WriteString(a.Line2 + "\n")
	}
	if a.City != "" || a.State != "" || a.Zip != "" {
		var parts []string
		for _, p := range []string{a.City, a.State, a.Zip} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		b.WriteString(strings.Join(parts, ", ") + "\n")
	}
	if a.ContactName != "" {
		b.WriteString("Contact Name" + contactSuffix + ": " + a.ContactName + "\n")
	}
	if a.ContactPhone != "" {
		b.WriteString("Contact Phone" + contactSuffix + ": " + a.ContactPhone + "\n")
	}
	if a.ContactEmail != "" {
		b.WriteString("Contact Email" + contactSuffix + ": " + a.ContactEmail + "\n")
	}
}

// Compose builds the outbound email, including a mailto URL for the
// configured warehouse address.
func (o Order) Compose(warehouseEmail, companyName string) Email {
	subject := o.Subject()
	body := o.Body(companyName)
	return Email{
		Subject: subject,
		Body:    body,
		Mailto: "mailto:" + mailtoEscape(warehouseEmail) +
			"?subject=" + mailtoEscape(subject) +
			"&body=" + mailtoEscape(body),
	}
}

// mailtoEscape percent-encodes for mailto URLs, where spaces must be %20
// rather than the form-encoding plus sign.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

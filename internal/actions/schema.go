package actions

import (
	"net/url"
	"strings"

	"github.com/diewo77/invoice-dashboard/internal/models"
	"github.com/diewo77/invoice-dashboard/internal/validation"
	"github.com/shopspring/decimal"
)

// Field-level messages shown next to the form inputs.
const (
	msgSelectCustomer = "Please select a customer"
	msgAmountPositive = "Amount must be greater than $0"
	msgSelectStatus   = "Please select an invoice status."
)

var cents = decimal.NewFromInt(100)

// invoiceFields is the typed record produced by a valid submission.
// Amount is already converted to integer minor units.
type invoiceFields struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// parseInvoiceForm validates the raw submission. It is pure: every
// field is checked and every problem collected, so the form can show
// all of them at once. The amount arrives in whole currency units as a
// decimal string and is converted to cents without float arithmetic.
func parseInvoiceForm(data url.Values) (invoiceFields, validation.Violations) {
	v := validation.Violations{}
	f := invoiceFields{
		CustomerID: strings.TrimSpace(data.Get("customerId")),
		Status:     data.Get("status"),
	}
	validation.Required("customerId", f.CustomerID, msgSelectCustomer, v)

	amount, err := decimal.NewFromString(strings.TrimSpace(data.Get("amount")))
	if err != nil || !amount.IsPositive() {
		v.Add("amount", msgAmountPositive)
	} else {
		f.AmountCents = amount.Mul(cents).IntPart()
	}

	validation.OneOf("status", f.Status, models.InvoiceStatuses, msgSelectStatus, v)
	return f, v
}

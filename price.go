package money

import "github.com/shopspring/decimal"

// Price describes a monetary value of any currency.
// It is the boundary handed to external collaborators, such as localized
// formatters, and lets callers hold values of mixed currency identity
// behind one interface without being generic over currency.
//
// Price is implemented by [Amount].
type Price interface {
	// Decimal returns the exact decimal value.
	Decimal() decimal.Decimal
	// CurrencyCode returns the 3-letter code of the currency.
	CurrencyCode() string
	// CurrencyScale returns the minor-unit scale of the currency.
	CurrencyScale() int
}

// CurrencyCode returns the 3-letter code of the currency of the amount.
// See also method [Currency.Code].
func (a Amount) CurrencyCode() string {
	return a.curr.Code()
}

// CurrencyScale returns the minor-unit scale of the currency of the amount.
// See also method [Currency.Scale].
func (a Amount) CurrencyScale() int {
	return a.curr.Scale()
}

package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is one of the payment methods the reconciliation report
// tracks. The order of the constants is the column order of the report.
type Category int

const (
	CategoryCard Category = iota
	CategorySagePay
	CategoryCash
	CategoryCheque
	CategoryBankTransfer

	categoryCount
)

var categoryHeaders = [categoryCount]string{
	CategoryCard:         "Card",
	CategorySagePay:      "Sagepay",
	CategoryCash:         "Cash",
	CategoryCheque:       "Cheque",
	CategoryBankTransfer: "Bank Transfer",
}

// Header returns the report column heading for the category.
func (c Category) Header() string {
	if c < 0 || c >= categoryCount {
		return ""
	}
	return categoryHeaders[c]
}

// Headers returns the report column headings in category order.
func Headers() []string {
	return append([]string(nil), categoryHeaders[:]...)
}

// ClassifyPaymentType maps a free-text payment type label to a
// category. Matching is case-insensitive and ignores surrounding
// whitespace. The second return value is false for labels outside the
// known set; callers skip those records rather than treating them as
// errors.
func ClassifyPaymentType(label string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "credit card", "debit card":
		return CategoryCard, true
	case "sage pay":
		return CategorySagePay, true
	case "cash":
		return CategoryCash, true
	case "cheque":
		return CategoryCheque, true
	case "bank transfer":
		return CategoryBankTransfer, true
	}
	return 0, false
}

// Transaction is one ledger row as returned by the query layer: a
// formatted amount string and a free-text payment type label.
type Transaction struct {
	AmountText  string
	PaymentType string
}

// TotalsReport holds the five signed totals of a single run, one per
// category. Each total is the negated sum of the matching transaction
// amounts, so totals are non-positive when the ledger amounts are
// non-negative.
type TotalsReport struct {
	Card         decimal.Decimal
	SagePay      decimal.Decimal
	Cash         decimal.Decimal
	Cheque       decimal.Decimal
	BankTransfer decimal.Decimal
}

// Values returns the totals in category order.
func (r TotalsReport) Values() []decimal.Decimal {
	return []decimal.Decimal{r.Card, r.SagePay, r.Cash, r.Cheque, r.BankTransfer}
}

// Sum returns the sum of all five totals.
func (r TotalsReport) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range r.Values() {
		sum = sum.Add(v)
	}
	return sum
}

// Subtract deducts amount from the given category's total.
func (r *TotalsReport) Subtract(c Category, amount decimal.Decimal) {
	switch c {
	case CategoryCard:
		r.Card = r.Card.Sub(amount)
	case CategorySagePay:
		r.SagePay = r.SagePay.Sub(amount)
	case CategoryCash:
		r.Cash = r.Cash.Sub(amount)
	case CategoryCheque:
		r.Cheque = r.Cheque.Sub(amount)
	case CategoryBankTransfer:
		r.BankTransfer = r.BankTransfer.Sub(amount)
	}
}

// Round returns a copy of the report with every total rounded to two
// decimal places, half away from zero.
func (r TotalsReport) Round() TotalsReport {
	return TotalsReport{
		Card:         r.Card.Round(2),
		SagePay:      r.SagePay.Round(2),
		Cash:         r.Cash.Round(2),
		Cheque:       r.Cheque.Round(2),
		BankTransfer: r.BankTransfer.Round(2),
	}
}

var ErrInvalidAmount = errors.New("invalid amount")

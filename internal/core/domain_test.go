package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyPaymentType(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Category
		matched bool
	}{
		{name: "credit card", label: "credit card", want: CategoryCard, matched: true},
		{name: "debit card maps to card", label: "debit card", want: CategoryCard, matched: true},
		{name: "uppercase", label: "CREDIT CARD", want: CategoryCard, matched: true},
		{name: "surrounding whitespace", label: " Credit Card ", want: CategoryCard, matched: true},
		{name: "sage pay", label: "Sage Pay", want: CategorySagePay, matched: true},
		{name: "cash", label: "cash", want: CategoryCash, matched: true},
		{name: "cheque", label: "Cheque", want: CategoryCheque, matched: true},
		{name: "bank transfer", label: "Bank Transfer", want: CategoryBankTransfer, matched: true},
		{name: "unknown label", label: "Gift Card", matched: false},
		{name: "empty label", label: "", matched: false},
		{name: "partial match rejected", label: "cash back", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyPaymentType(tt.label)
			if ok != tt.matched {
				t.Fatalf("ClassifyPaymentType(%q) matched = %v, want %v", tt.label, ok, tt.matched)
			}
			if ok && got != tt.want {
				t.Errorf("ClassifyPaymentType(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestHeaders(t *testing.T) {
	want := []string{"Card", "Sagepay", "Cash", "Cheque", "Bank Transfer"}
	got := Headers()
	if len(got) != len(want) {
		t.Fatalf("Headers() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Headers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTotalsReport_SubtractAndValues(t *testing.T) {
	var r TotalsReport
	r.Subtract(CategoryCash, decimal.RequireFromString("1000.00"))
	r.Subtract(CategoryCheque, decimal.RequireFromString("50.00"))

	values := r.Values()
	wants := []string{"0", "0", "-1000", "-50", "0"}
	for i, want := range wants {
		if !values[i].Equal(decimal.RequireFromString(want)) {
			t.Errorf("Values()[%d] = %s, want %s", i, values[i], want)
		}
	}

	if !r.Sum().Equal(decimal.RequireFromString("-1050")) {
		t.Errorf("Sum() = %s, want -1050", r.Sum())
	}
}

func TestTotalsReport_Round(t *testing.T) {
	var r TotalsReport
	r.Subtract(CategoryCard, decimal.RequireFromString("10.005"))
	rounded := r.Round()

	if !rounded.Card.Equal(decimal.RequireFromString("-10.01")) {
		t.Errorf("Round() Card = %s, want -10.01", rounded.Card)
	}
	// Original report is unchanged.
	if !r.Card.Equal(decimal.RequireFromString("-10.005")) {
		t.Errorf("pre-round Card = %s, want -10.005", r.Card)
	}
}

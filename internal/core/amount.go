// Package core holds the payment domain types and amount parsing used
// by the daily reconciliation report.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a ledger amount string to a decimal. The query
// layer returns amounts pre-formatted with thousands separators and
// two fraction digits ("1,234.50"), so the separators are stripped
// before parsing. A leading sign is accepted.
//
// A string that still fails to parse is reported as an error, not
// skipped: one unparseable amount means the whole report would be
// wrong, so the run has to fail.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

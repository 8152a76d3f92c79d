package report

import (
	"fmt"

	"dailyrecon/internal/core"
)

// Aggregate reduces ledger transactions to the five signed totals of
// the reconciliation report. Each matched amount is subtracted from
// its category total, which negates the ledger's view to match how
// the figures are entered into the balances spreadsheet. Records with
// an unrecognized payment type are skipped.
//
// With round set, every total is rounded to two decimal places.
//
// Aggregate is a pure function of its input: no state is kept between
// calls. An unparseable amount fails the whole aggregation, because a
// single bad row is indistinguishable from a systemic data problem
// and a partial report would be silently wrong.
func Aggregate(txs []core.Transaction, round bool) (core.TotalsReport, error) {
	var totals core.TotalsReport

	for i, tx := range txs {
		amount, err := core.ParseAmount(tx.AmountText)
		if err != nil {
			return core.TotalsReport{}, fmt.Errorf("transaction %d: %w", i, err)
		}

		category, ok := core.ClassifyPaymentType(tx.PaymentType)
		if !ok {
			continue
		}
		totals.Subtract(category, amount)
	}

	if round {
		totals = totals.Round()
	}
	return totals, nil
}

// Package ledger provides read access to the client payments ledger
// for the daily reconciliation report. Two backends exist: Postgres
// for the production ledger and SQLite for local runs and tests.
//
// Date columns hold text in YYYY/MM/DD form, so the range bounds in
// the queries compare correctly as text.
package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"dailyrecon/internal/core"
)

// Store is the ledger query gateway. Both queries are all-or-nothing:
// any connectivity or query failure fails the whole run.
type Store interface {
	// GeneralPayments returns non-bank-transfer payments whose
	// transaction date falls on day. The "vendor statements" cash
	// office is excluded from reconciliation entirely.
	GeneralPayments(ctx context.Context, day string) ([]core.Transaction, error)

	// BankTransfers returns payments with a transaction date strictly
	// before bound and a posting date on or after bound. Bank
	// transfers clear with a delay and are recognized on posting date.
	BankTransfers(ctx context.Context, bound string) ([]core.Transaction, error)

	Close() error
}

// vendorStatementsOffice is the internal cash office whose entries
// never take part in reconciliation.
const vendorStatementsOffice = "vendor statements"

// postingDateHorizon is the open upper bound of the posting date
// window.
const postingDateHorizon = "2099/12/31"

func scanTransactions(rows *sql.Rows) ([]core.Transaction, error) {
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var amount, paymentType sql.NullString
		if err := rows.Scan(&amount, &paymentType); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txs = append(txs, core.Transaction{
			AmountText:  amount.String,
			PaymentType: paymentType.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txs, nil
}

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"dailyrecon/internal/core"
)

// SQLite formats amounts with printf, which gives two fraction digits
// but no thousands separators; the aggregator accepts both forms.
const sqliteGeneralPaymentsQuery = `
SELECT printf('%.2f', gross) AS gross,
       payment_type
FROM client_ledger
WHERE COALESCE(tran_date, '') BETWEEN ? AND ?
  AND COALESCE(payment_type, '') <> 'Bank Transfer'
  AND COALESCE(cash_office, '') <> '` + vendorStatementsOffice + `'`

const sqliteBankTransfersQuery = `
SELECT printf('%.2f', gross) AS gross,
       payment_type
FROM client_ledger
WHERE COALESCE(tran_date, '') < ?
  AND COALESCE(posting_date, '') BETWEEN ? AND '` + postingDateHorizon + `'
  AND COALESCE(cash_office, '') <> '` + vendorStatementsOffice + `'`

// SQLiteStore reads the ledger from a local SQLite file. Used for
// local runs and tests; the schema is provisioned by the embedded
// migrations on open.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GeneralPayments(ctx context.Context, day string) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, sqliteGeneralPaymentsQuery, day, day)
	if err != nil {
		return nil, fmt.Errorf("query general payments: %w", err)
	}
	return scanTransactions(rows)
}

func (s *SQLiteStore) BankTransfers(ctx context.Context, bound string) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, sqliteBankTransfersQuery, bound, bound)
	if err != nil {
		return nil, fmt.Errorf("query bank transfers: %w", err)
	}
	return scanTransactions(rows)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

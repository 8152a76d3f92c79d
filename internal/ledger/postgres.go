package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"dailyrecon/internal/core"
)

const pgGeneralPaymentsQuery = `
SELECT to_char(gross, 'FM999,999,999,999,990.00') AS gross,
       payment_type
FROM client_ledger
WHERE COALESCE(tran_date, '') BETWEEN $1 AND $2
  AND COALESCE(payment_type, '') <> 'Bank Transfer'
  AND COALESCE(cash_office, '') <> '` + vendorStatementsOffice + `'`

const pgBankTransfersQuery = `
SELECT to_char(gross, 'FM999,999,999,999,990.00') AS gross,
       payment_type
FROM client_ledger
WHERE COALESCE(tran_date, '') < $1
  AND COALESCE(posting_date, '') BETWEEN $2 AND '` + postingDateHorizon + `'
  AND COALESCE(cash_office, '') <> '` + vendorStatementsOffice + `'`

// PostgresStore reads the ledger from a Postgres database.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgres opens and verifies a Postgres connection. The job makes
// at most two sequential queries, so the pool is kept small.
func NewPostgres(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GeneralPayments(ctx context.Context, day string) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, pgGeneralPaymentsQuery, day, day)
	if err != nil {
		return nil, fmt.Errorf("query general payments: %w", err)
	}
	return scanTransactions(rows)
}

func (s *PostgresStore) BankTransfers(ctx context.Context, bound string) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, pgBankTransfersQuery, bound, bound)
	if err != nil {
		return nil, fmt.Errorf("query bank transfers: %w", err)
	}
	return scanTransactions(rows)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

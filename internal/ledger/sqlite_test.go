package ledger

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"dailyrecon/internal/core"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

type seedRow struct {
	tranDate    any
	postingDate any
	gross       float64
	paymentType any
	cashOffice  any
}

func seed(t *testing.T, store *SQLiteStore, rows ...seedRow) {
	t.Helper()
	for _, r := range rows {
		_, err := store.db.Exec(
			`INSERT INTO client_ledger (tran_date, posting_date, gross, payment_type, cash_office)
			 VALUES (?, ?, ?, ?, ?)`,
			r.tranDate, r.postingDate, r.gross, r.paymentType, r.cashOffice)
		if err != nil {
			t.Fatalf("seed ledger row: %v", err)
		}
	}
}

// amounts returns the sorted amount strings; the queries carry no
// ORDER BY, so assertions must not depend on row order.
func amounts(txs []core.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.AmountText)
	}
	sort.Strings(out)
	return out
}

func TestSQLiteStore_GeneralPayments(t *testing.T) {
	store := newTestStore(t)
	seed(t, store,
		seedRow{tranDate: "2024/06/10", postingDate: "2024/06/10", gross: 1000, paymentType: "Cash", cashOffice: "front desk"},
		seedRow{tranDate: "2024/06/10", postingDate: "2024/06/10", gross: 50.5, paymentType: "Cheque", cashOffice: "front desk"},
		// Excluded: bank transfers come from the posting-date query.
		seedRow{tranDate: "2024/06/10", postingDate: "2024/06/12", gross: 200, paymentType: "Bank Transfer", cashOffice: "front desk"},
		// Excluded: vendor statements office never reconciles.
		seedRow{tranDate: "2024/06/10", postingDate: "2024/06/10", gross: 75, paymentType: "Cash", cashOffice: "vendor statements"},
		// Excluded: different day.
		seedRow{tranDate: "2024/06/11", postingDate: "2024/06/11", gross: 10, paymentType: "Cash", cashOffice: "front desk"},
		// Excluded: NULL transaction date coalesces to '' and misses the range.
		seedRow{tranDate: nil, postingDate: "2024/06/10", gross: 99, paymentType: "Cash", cashOffice: "front desk"},
	)

	txs, err := store.GeneralPayments(context.Background(), "2024/06/10")
	if err != nil {
		t.Fatalf("GeneralPayments() error = %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("GeneralPayments() returned %d rows, want 2: %v", len(txs), txs)
	}
	got := amounts(txs)
	want := []string{"1000.00", "50.50"}
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("amount[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	types := map[string]bool{}
	for _, tx := range txs {
		types[tx.PaymentType] = true
	}
	if !types["Cash"] || !types["Cheque"] {
		t.Errorf("payment types = %v, want Cash and Cheque", types)
	}
}

func TestSQLiteStore_BankTransfers(t *testing.T) {
	store := newTestStore(t)
	seed(t, store,
		// Included: transacted before the bound, posted on it.
		seedRow{tranDate: "2024/06/07", postingDate: "2024/06/10", gross: 200, paymentType: "Bank Transfer", cashOffice: "front desk"},
		// Included: posts far in the future, still inside the horizon.
		seedRow{tranDate: "2024/06/05", postingDate: "2031/01/02", gross: 300, paymentType: "Bank Transfer", cashOffice: "front desk"},
		// Included: NULL transaction date coalesces to '' which sorts before any bound.
		seedRow{tranDate: nil, postingDate: "2024/06/10", gross: 40, paymentType: "Bank Transfer", cashOffice: "front desk"},
		// Excluded: posted before the bound.
		seedRow{tranDate: "2024/06/05", postingDate: "2024/06/07", gross: 500, paymentType: "Bank Transfer", cashOffice: "front desk"},
		// Excluded: transacted on the bound, not strictly before.
		seedRow{tranDate: "2024/06/10", postingDate: "2024/06/10", gross: 600, paymentType: "Bank Transfer", cashOffice: "front desk"},
		// Excluded: vendor statements office.
		seedRow{tranDate: "2024/06/07", postingDate: "2024/06/10", gross: 700, paymentType: "Bank Transfer", cashOffice: "vendor statements"},
	)

	txs, err := store.BankTransfers(context.Background(), "2024/06/10")
	if err != nil {
		t.Fatalf("BankTransfers() error = %v", err)
	}

	got := amounts(txs)
	want := []string{"200.00", "300.00", "40.00"}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("BankTransfers() returned %d rows, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("amount[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSQLiteStore_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	first, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	first.Close()

	// Reopening the same file must not fail on already-applied
	// migrations.
	second, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite() on existing file error = %v", err)
	}
	defer second.Close()

	var count int
	if err := second.db.QueryRow(`SELECT COUNT(*) FROM client_ledger`).Scan(&count); err != nil {
		t.Fatalf("query after reopen: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh ledger has %d rows, want 0", count)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Config{Backend: Backend("oracle")})
	if err == nil {
		t.Fatal("Open() expected error for unknown backend, got nil")
	}
}

func TestOpen_SQLite(t *testing.T) {
	store, err := Open(Config{
		Backend:    SQLiteBackend,
		SQLitePath: filepath.Join(t.TempDir(), "ledger.db"),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if _, ok := store.(*SQLiteStore); !ok {
		t.Errorf("Open() returned %T, want *SQLiteStore", store)
	}
}

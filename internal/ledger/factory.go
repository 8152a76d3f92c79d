package ledger

import "fmt"

// Backend names a ledger store implementation.
type Backend string

const (
	PostgresBackend Backend = "postgres"
	SQLiteBackend   Backend = "sqlite"
)

// IsValid reports whether the backend is a known one.
func (b Backend) IsValid() bool {
	return b == PostgresBackend || b == SQLiteBackend
}

// Config selects and configures a ledger backend.
type Config struct {
	Backend Backend

	// PostgresDSN is the lib/pq connection string, used when Backend
	// is PostgresBackend.
	PostgresDSN string

	// SQLitePath is the database file path, used when Backend is
	// SQLiteBackend.
	SQLitePath string
}

// Open creates the configured ledger store. The caller owns the
// returned store and closes it after the run.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case PostgresBackend:
		return NewPostgres(cfg.PostgresDSN)
	case SQLiteBackend:
		return NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.Backend)
	}
}

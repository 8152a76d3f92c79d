// Package config holds the job's configuration, read from the
// environment once at startup. Business logic never reads the
// environment itself; everything is passed in explicitly.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"dailyrecon/internal/ledger"
	"dailyrecon/internal/report"
)

type Config struct {
	Ledger LedgerConfig
	SMTP   SMTPConfig
	Report ReportConfig
	AMQP   AMQPConfig
	Sheets SheetsConfig
}

type LedgerConfig struct {
	Backend string

	// Postgres connection settings.
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string

	// SQLite file path, for local runs.
	SQLitePath string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

type ReportConfig struct {
	QueryMode      string
	RoundTotals    bool
	AttachmentName string
	RunLogPath     string
}

// AMQPConfig is optional; an empty URL disables the completion event.
type AMQPConfig struct {
	URL      string
	Exchange string
	Queue    string
}

// SheetsConfig is optional; an empty spreadsheet ID disables the
// summary sheet append.
type SheetsConfig struct {
	SpreadsheetID      string
	SheetName          string
	ServiceAccountJSON string
	ServiceAccountFile string
}

func Load() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Backend:    getEnv("LEDGER_BACKEND", string(ledger.PostgresBackend)),
			Host:       getEnv("DB_HOST", ""),
			Port:       getEnvInt("DB_PORT", 5432),
			Name:       getEnv("DB_NAME", ""),
			User:       getEnv("DB_USER", ""),
			Password:   getEnv("DB_PASSWORD", ""),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_DB_PATH", "./data/ledger.db"),
		},
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_HOST", ""),
			Port:      getEnvInt("SMTP_PORT", 587),
			Username:  getEnv("SMTP_USERNAME", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			Recipient: getEnv("SMTP_RECIPIENT", ""),
		},
		Report: ReportConfig{
			QueryMode:      getEnv("REPORT_QUERY_MODE", string(report.QueryModeDual)),
			RoundTotals:    getEnvBool("REPORT_ROUND_TOTALS", true),
			AttachmentName: getEnv("REPORT_ATTACHMENT_NAME", "yesterday.csv"),
			RunLogPath:     getEnv("RUN_LOG_PATH", "logs.txt"),
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "dailyrecon"),
			Queue:    getEnv("AMQP_QUEUE", "report_completed"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:      getEnv("SHEETS_SPREADSHEET_ID", ""),
			SheetName:          getEnv("SHEETS_SHEET_NAME", "Daily Totals"),
			ServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
			ServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		},
	}
}

// Validate checks the whole configuration and reports every problem
// at once. A config error is fatal before any I/O happens.
func (c *Config) Validate() error {
	var errors []string

	backend := ledger.Backend(c.Ledger.Backend)
	if !backend.IsValid() {
		errors = append(errors, fmt.Sprintf("invalid ledger backend '%s': must be 'postgres' or 'sqlite'", c.Ledger.Backend))
	}

	if backend == ledger.PostgresBackend {
		for _, cred := range []struct{ key, value string }{
			{"DB_HOST", c.Ledger.Host},
			{"DB_NAME", c.Ledger.Name},
			{"DB_USER", c.Ledger.User},
			{"DB_PASSWORD", c.Ledger.Password},
		} {
			if cred.value == "" {
				errors = append(errors, fmt.Sprintf("missing required database credential %s", cred.key))
			}
		}
		if c.Ledger.Port < 1 || c.Ledger.Port > 65535 {
			errors = append(errors, fmt.Sprintf("invalid database port %d: must be between 1 and 65535", c.Ledger.Port))
		}
	}

	if backend == ledger.SQLiteBackend && c.Ledger.SQLitePath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.SMTP.Host == "" {
		errors = append(errors, "missing required SMTP_HOST")
	}
	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid SMTP port %d: must be between 1 and 65535", c.SMTP.Port))
	}
	if c.SMTP.Username == "" {
		errors = append(errors, "missing required SMTP_USERNAME")
	}
	if c.SMTP.Password == "" {
		errors = append(errors, "missing required SMTP_PASSWORD")
	}
	if c.SMTP.Recipient == "" {
		errors = append(errors, "missing required SMTP_RECIPIENT")
	}

	if !report.QueryMode(c.Report.QueryMode).Valid() {
		errors = append(errors, fmt.Sprintf("invalid query mode '%s': must be 'dual' or 'banktransfer'", c.Report.QueryMode))
	}
	if c.Report.RunLogPath == "" {
		errors = append(errors, "run log path cannot be empty")
	}

	if c.AMQP.URL != "" {
		if parsedURL, err := url.Parse(c.AMQP.URL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQP.URL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQP.Exchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQP.Queue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.Sheets.SpreadsheetID != "" {
		hasJSON := c.Sheets.ServiceAccountJSON != ""
		hasFile := c.Sheets.ServiceAccountFile != ""
		if !hasJSON && !hasFile {
			errors = append(errors, "either GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE must be provided for the summary sheet")
		}
		if hasFile {
			if _, err := os.Stat(c.Sheets.ServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("service account file does not exist: %s", c.Sheets.ServiceAccountFile))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// PostgresDSN builds the lib/pq connection string.
func (c LedgerConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

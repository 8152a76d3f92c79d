package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dailyrecon/internal/amqp"
	"dailyrecon/internal/config"
	"dailyrecon/internal/export"
	"dailyrecon/internal/ledger"
	"dailyrecon/internal/mail"
	"dailyrecon/internal/report"
	"dailyrecon/internal/runlog"
	"dailyrecon/internal/sheets"
)

func main() {
	// Load .env file for local development (ignore errors when the
	// credentials come from the scheduler's environment).
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting dailyrecon")

	cfg := config.Load()
	runLog := runlog.New(cfg.Report.RunLogPath)

	// Config problems are fatal before any I/O: no query runs with an
	// incomplete credential set.
	if err := cfg.Validate(); err != nil {
		fail(logger, runLog, err)
	}

	ctx := context.Background()

	store, err := ledger.Open(ledger.Config{
		Backend:     ledger.Backend(cfg.Ledger.Backend),
		PostgresDSN: cfg.Ledger.PostgresDSN(),
		SQLitePath:  cfg.Ledger.SQLitePath,
	})
	if err != nil {
		fail(logger, runLog, &report.StageError{Stage: report.StageQuery, Err: err})
	}
	defer store.Close()
	logger.Info("Ledger store ready", "backend", cfg.Ledger.Backend)

	dispatcher, err := mail.NewDispatcher(
		cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Username, cfg.SMTP.Password,
		cfg.SMTP.Recipient,
	)
	if err != nil {
		fail(logger, runLog, &report.StageError{Stage: report.StageDispatch, Err: err})
	}

	// Optional side channels. Either one failing to come up downgrades
	// to a warning; the email is the deliverable.
	var notifiers []report.CompletionNotifier
	if cfg.AMQP.URL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without completion event", "error", err)
		} else {
			defer amqpClient.Close()
			notifiers = append(notifiers, amqpClient)
			logger.Info("AMQP client initialized", "exchange", cfg.AMQP.Exchange, "queue", cfg.AMQP.Queue)
		}
	}
	if cfg.Sheets.SpreadsheetID != "" {
		sheetsClient, err := sheets.New(ctx,
			cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName,
			cfg.Sheets.ServiceAccountJSON, cfg.Sheets.ServiceAccountFile,
		)
		if err != nil {
			logger.Warn("Failed to initialize summary sheet client, continuing without it", "error", err)
		} else {
			notifiers = append(notifiers, sheetsClient)
			logger.Info("Summary sheet client initialized", "sheet", cfg.Sheets.SheetName)
		}
	}

	runner := report.NewRunner(store, export.NewCSV(), dispatcher, report.Options{
		Mode:           report.QueryMode(cfg.Report.QueryMode),
		RoundTotals:    cfg.Report.RoundTotals,
		AttachmentName: cfg.Report.AttachmentName,
	}, notifiers...)

	if err := runner.Run(ctx); err != nil {
		fail(logger, runLog, err)
	}

	if err := runLog.Success(time.Now()); err != nil {
		logger.Warn("Failed to record successful run", "error", err)
	}
	logger.Info("Run complete")
}

// fail records the error in the run log and terminates with a
// non-zero exit code. Only main terminates the process.
func fail(logger *slog.Logger, runLog *runlog.Log, err error) {
	if logErr := runLog.Failure(err); logErr != nil {
		logger.Error("Failed to write run log", "error", logErr)
	}
	logger.Error("Run failed", "error", err)
	os.Exit(1)
}

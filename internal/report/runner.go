package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dailyrecon/internal/core"
)

// QueryMode selects which ledger query shapes a run executes.
type QueryMode string

const (
	// QueryModeDual runs the general-payments query for the last
	// working day plus the bank-transfer query bounded by today.
	QueryModeDual QueryMode = "dual"

	// QueryModeBankTransfer runs only the bank-transfer-shaped query,
	// bounded by the last working day.
	QueryModeBankTransfer QueryMode = "banktransfer"
)

// Valid reports whether the mode is one of the known query modes.
func (m QueryMode) Valid() bool {
	return m == QueryModeDual || m == QueryModeBankTransfer
}

// Stage identifies where in the run a failure happened.
type Stage string

const (
	StageQuery     Stage = "query"
	StageAggregate Stage = "aggregate"
	StageExport    Stage = "export"
	StageDispatch  Stage = "dispatch"
)

// StageError tags a failure with the run stage it came from. The
// driver logs it and exits; no stage is retried.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options configures a Runner.
type Options struct {
	Mode           QueryMode
	RoundTotals    bool
	AttachmentName string

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Runner executes one reconciliation run end to end: resolve the
// reporting window, query the ledger, aggregate, render, dispatch.
// The run either fully completes or fails with a stage-tagged error;
// there is no partial success.
type Runner struct {
	source     TransactionSource
	exporter   Exporter
	dispatcher Dispatcher
	notifiers  []CompletionNotifier
	opts       Options
}

// NewRunner wires a Runner from its collaborators. Notifiers are
// optional side channels; pass none to disable them.
func NewRunner(source TransactionSource, exporter Exporter, dispatcher Dispatcher, opts Options, notifiers ...CompletionNotifier) *Runner {
	if opts.Mode == "" {
		opts.Mode = QueryModeDual
	}
	if opts.AttachmentName == "" {
		opts.AttachmentName = "yesterday.csv"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		source:     source,
		exporter:   exporter,
		dispatcher: dispatcher,
		notifiers:  notifiers,
		opts:       opts,
	}
}

// Run performs a single reconciliation run. Each stage runs in
// sequence; the first failure aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	today := r.opts.Now()
	lastWorkingDay := QueryDate(LastWorkingDay(today))

	slog.InfoContext(ctx, "Starting reconciliation run",
		"last_working_day", lastWorkingDay,
		"mode", string(r.opts.Mode),
		"round_totals", r.opts.RoundTotals)

	txs, err := r.fetch(ctx, lastWorkingDay, QueryDate(today))
	if err != nil {
		return &StageError{Stage: StageQuery, Err: err}
	}
	slog.InfoContext(ctx, "Fetched ledger transactions", "count", len(txs))

	totals, err := Aggregate(txs, r.opts.RoundTotals)
	if err != nil {
		return &StageError{Stage: StageAggregate, Err: err}
	}

	attachment, err := r.exporter.Render(totals)
	if err != nil {
		return &StageError{Stage: StageExport, Err: err}
	}

	if err := r.dispatcher.Send(ctx, attachment, r.opts.AttachmentName); err != nil {
		return &StageError{Stage: StageDispatch, Err: err}
	}
	slog.InfoContext(ctx, "Report dispatched", "attachment", r.opts.AttachmentName)

	for _, n := range r.notifiers {
		if err := n.ReportCompleted(ctx, lastWorkingDay, totals); err != nil {
			slog.WarnContext(ctx, "Completion notification failed", "error", err)
		}
	}

	return nil
}

func (r *Runner) fetch(ctx context.Context, lastWorkingDay, today string) ([]core.Transaction, error) {
	switch r.opts.Mode {
	case QueryModeDual:
		general, err := r.source.GeneralPayments(ctx, lastWorkingDay)
		if err != nil {
			return nil, fmt.Errorf("general payments: %w", err)
		}
		transfers, err := r.source.BankTransfers(ctx, today)
		if err != nil {
			return nil, fmt.Errorf("bank transfers: %w", err)
		}
		return append(general, transfers...), nil
	case QueryModeBankTransfer:
		transfers, err := r.source.BankTransfers(ctx, lastWorkingDay)
		if err != nil {
			return nil, fmt.Errorf("bank transfers: %w", err)
		}
		return transfers, nil
	default:
		return nil, fmt.Errorf("unknown query mode %q", r.opts.Mode)
	}
}

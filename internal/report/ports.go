package report

import (
	"context"

	"dailyrecon/internal/core"
)

// Ports for outbound collaborators.
type (
	// TransactionSource runs the ledger queries for one reporting day.
	TransactionSource interface {
		// GeneralPayments returns non-bank-transfer payments whose
		// transaction date falls on day.
		GeneralPayments(ctx context.Context, day string) ([]core.Transaction, error)

		// BankTransfers returns payments recognized by posting date:
		// transaction date strictly before bound, posting date on or
		// after bound. Bank transfers clear with a delay, so they are
		// picked up by posting date rather than transaction date.
		BankTransfers(ctx context.Context, bound string) ([]core.Transaction, error)
	}

	// Exporter renders a totals report to an attachment byte stream.
	Exporter interface {
		Render(totals core.TotalsReport) ([]byte, error)
	}

	// Dispatcher delivers the rendered report to the recipient.
	Dispatcher interface {
		Send(ctx context.Context, attachment []byte, filename string) error
	}

	// CompletionNotifier announces a finished run to optional side
	// channels (message broker, summary spreadsheet). Failures are
	// reported but never fail the run.
	CompletionNotifier interface {
		ReportCompleted(ctx context.Context, reportDate string, totals core.TotalsReport) error
	}
)

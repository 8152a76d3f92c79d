// Package report implements the daily reconciliation run: resolving
// the previous working day, aggregating ledger payments into signed
// totals, and driving the export and dispatch collaborators.
package report

import "time"

// queryDateLayout is the textual date form the ledger stores and
// compares dates in. The format sorts correctly as text, which the
// query bounds rely on.
const queryDateLayout = "2006/01/02"

// LastWorkingDay returns the most recent working day before today.
// Monday goes back to the preceding Friday; every other day goes back
// one calendar day. Public holidays are not skipped — the job assumes
// any non-Monday follows a working day. Known limitation, kept as is.
func LastWorkingDay(today time.Time) time.Time {
	if today.Weekday() == time.Monday {
		return today.AddDate(0, 0, -3)
	}
	return today.AddDate(0, 0, -1)
}

// QueryDate formats a date the way the ledger queries expect it.
func QueryDate(t time.Time) string {
	return t.Format(queryDateLayout)
}

// Package sheets appends each run's totals to the bank balances
// summary spreadsheet, saving the recipient the paste step. Like the
// AMQP notifier it is optional: a missing or failing spreadsheet
// never fails the run.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"dailyrecon/internal/core"
	"dailyrecon/internal/report"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ report.CompletionNotifier = (*Client)(nil)

// New creates a Sheets client authenticated with a service account.
// Credentials come either inline as JSON or from a file path; exactly
// one is required.
func New(ctx context.Context, spreadsheetID, sheetName, credentialsJSON, credentialsFile string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if sheetName == "" {
		sheetName = "Daily Totals"
	}

	var creds []byte
	switch {
	case credentialsJSON != "":
		creds = []byte(credentialsJSON)
	case credentialsFile != "":
		var err error
		creds, err = os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ReportCompleted appends one row: the report date followed by the
// five totals in category order.
func (c *Client) ReportCompleted(ctx context.Context, reportDate string, totals core.TotalsReport) error {
	row := []any{reportDate}
	for _, v := range totals.Values() {
		row = append(row, v.String())
	}

	rng := fmt.Sprintf("%s!A:F", c.sheetName)
	vr := &gsheet.ValueRange{Values: [][]any{row}}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append totals to sheet %s: %w", c.sheetName, err)
	}
	return nil
}

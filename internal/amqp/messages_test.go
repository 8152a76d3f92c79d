package amqp

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"dailyrecon/internal/core"
)

func TestNewReportCompletedMessage(t *testing.T) {
	totals := core.TotalsReport{
		Cash:         decimal.RequireFromString("-1000.00"),
		BankTransfer: decimal.RequireFromString("-200.00"),
	}

	msg := NewReportCompletedMessage("2024/06/10", totals)

	if msg.ReportDate != "2024/06/10" {
		t.Errorf("ReportDate = %q, want 2024/06/10", msg.ReportDate)
	}
	if msg.Cash != "-1000" {
		t.Errorf("Cash = %q, want -1000", msg.Cash)
	}
	if msg.BankTransfer != "-200" {
		t.Errorf("BankTransfer = %q, want -200", msg.BankTransfer)
	}
	if msg.Card != "0" || msg.SagePay != "0" || msg.Cheque != "0" {
		t.Errorf("zero totals = %q, %q, %q; want 0", msg.Card, msg.SagePay, msg.Cheque)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestReportCompletedMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 6, 11, 7, 0, 0, 0, time.UTC)
	msg := &ReportCompletedMessage{
		ReportDate:   "2024/06/10",
		Card:         "-25.50",
		SagePay:      "0",
		Cash:         "-1000",
		Cheque:       "-50",
		BankTransfer: "-200",
		Timestamp:    timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ReportCompletedMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ReportCompletedMessageFromJSON() error = %v", err)
	}

	if parsed.ReportDate != msg.ReportDate {
		t.Errorf("parsed ReportDate = %q, want %q", parsed.ReportDate, msg.ReportDate)
	}
	if parsed.Card != msg.Card {
		t.Errorf("parsed Card = %q, want %q", parsed.Card, msg.Card)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestReportCompletedMessage_InvalidJSON(t *testing.T) {
	_, err := ReportCompletedMessageFromJSON([]byte(`{"report_date": 42}`))
	if err == nil {
		t.Error("ReportCompletedMessageFromJSON() should fail with invalid JSON")
	}
}

package amqp

import (
	"encoding/json"
	"time"

	"dailyrecon/internal/core"
)

// ReportCompletedMessage announces a finished reconciliation run. The
// totals are carried as decimal strings so consumers never touch
// floats.
type ReportCompletedMessage struct {
	ReportDate   string    `json:"report_date"`
	Card         string    `json:"card"`
	SagePay      string    `json:"sage_pay"`
	Cash         string    `json:"cash"`
	Cheque       string    `json:"cheque"`
	BankTransfer string    `json:"bank_transfer"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewReportCompletedMessage(reportDate string, totals core.TotalsReport) *ReportCompletedMessage {
	return &ReportCompletedMessage{
		ReportDate:   reportDate,
		Card:         totals.Card.String(),
		SagePay:      totals.SagePay.String(),
		Cash:         totals.Cash.String(),
		Cheque:       totals.Cheque.String(),
		BankTransfer: totals.BankTransfer.String(),
		Timestamp:    time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportCompletedMessageFromJSON creates a message from JSON bytes.
func ReportCompletedMessageFromJSON(data []byte) (*ReportCompletedMessage, error) {
	var msg ReportCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

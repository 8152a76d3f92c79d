// Package mail delivers the rendered report to the finance team over
// SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

const (
	subject = "Yesterday's numbers"
	body    = "The attachment contains the results of the reports used to complete the bank balances summary spreadsheet."

	// sendTimeout bounds the SMTP dial; a hung transport fails the run
	// rather than blocking it indefinitely.
	sendTimeout = 5 * time.Second
)

// Dispatcher sends the CSV report as an email attachment using
// STARTTLS and PLAIN authentication. There is no retry: a failed send
// fails the run.
type Dispatcher struct {
	client    *mail.Client
	from      string
	recipient string
}

func NewDispatcher(host string, port int, username, password, recipient string) (*Dispatcher, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Dispatcher{
		client:    client,
		from:      username,
		recipient: recipient,
	}, nil
}

// Send emails the attachment to the configured recipient.
func (d *Dispatcher) Send(ctx context.Context, attachment []byte, filename string) error {
	msg := mail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(d.recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := msg.AttachReader(filename, bytes.NewReader(attachment),
		mail.WithFileContentType("text/csv")); err != nil {
		return fmt.Errorf("attach %s: %w", filename, err)
	}

	if err := d.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}

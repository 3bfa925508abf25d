package noop

import (
	"context"
	"log"

	"designdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, email *port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s), amount due %.2f",
		email.InvoiceNumber, email.ToName, email.ToEmail, email.AmountDue)
	return nil
}

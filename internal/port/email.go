package port

import "context"

// InvoiceEmail is the data needed to send an invoice to a client.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	InvoiceNumber string
	AmountDue     float64
	DueDate       string
	DownloadURL   string
}

// EmailSender delivers transactional email to clients.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, email *InvoiceEmail) error
}

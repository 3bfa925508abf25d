package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"designdesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceEmail(ctx context.Context, email *port.InvoiceEmail) error {
	subject := fmt.Sprintf("Invoice %s from %s", email.InvoiceNumber, s.fromName)
	htmlBody := buildInvoiceHTML(email)
	textBody := buildInvoiceText(email)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{email.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInvoiceText(email *port.InvoiceEmail) string {
	body := fmt.Sprintf("Hi %s,\n\nPlease find your invoice %s attached below.\n\nAmount due: Rs. %.2f",
		email.ToName, email.InvoiceNumber, email.AmountDue)
	if email.DueDate != "" {
		body += fmt.Sprintf("\nDue date: %s", email.DueDate)
	}
	if email.DownloadURL != "" {
		body += fmt.Sprintf("\n\nDownload: %s", email.DownloadURL)
	}
	return body + "\n\nThank you for your business."
}

func buildInvoiceHTML(email *port.InvoiceEmail) string {
	due := ""
	if email.DueDate != "" {
		due = fmt.Sprintf(`<p>Due date: <strong>%s</strong></p>`, email.DueDate)
	}
	download := ""
	if email.DownloadURL != "" {
		download = fmt.Sprintf(`<p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download Invoice</a>
  </p>`, email.DownloadURL)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Hi %s,</p>
  <p>Amount due: <strong>&#8377;%.2f</strong></p>
  %s
  %s
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Thank you for your business.</p>
</body>
</html>`, email.InvoiceNumber, email.ToName, email.AmountDue, due, download)
}

package utils

import (
	"fmt"

	"github.com/keighl/postmark"
	"github.com/rs/zerolog"
)

// EmailService sends notification emails using Postmark. Delivery is
// best-effort: a failed send is logged and never fails the request that
// triggered it.
type EmailService struct {
	client *postmark.Client
	sender string
	logger zerolog.Logger
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when no API token is configured, which disables notifications.
func NewEmailService(apiToken, sender string, logger zerolog.Logger) *EmailService {
	if apiToken == "" {
		logger.Info().Msg("POSTMARK_API_TOKEN not set, email notifications disabled")
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
		logger: logger,
	}
}

func (es *EmailService) send(toEmail, subject, htmlContent string) {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		es.logger.Error().Err(err).Str("to", toEmail).Str("subject", subject).Msg("failed to send email")
	}
}

// FundingReceipt thanks a donor for a completed funding.
func (es *EmailService) FundingReceipt(toEmail, name string, amount float64) {
	if es == nil {
		return
	}
	subject := "Thank You for Your Donation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your generous donation of <strong>$%.2f</strong>. Your support helps us keep blood available for those who need it most.",
		name, amount,
	)
	es.send(toEmail, subject, htmlContent)
}

// RequestStatusChanged notifies a requester that their donation request moved
// to a new status.
func (es *EmailService) RequestStatusChanged(toEmail, recipientName, status string) {
	if es == nil {
		return
	}
	subject := "Donation Request Update"
	htmlContent := fmt.Sprintf(
		"<strong>Hello,</strong><br><br>Your blood donation request for <strong>%s</strong> is now <strong>%s</strong>.",
		recipientName, status,
	)
	es.send(toEmail, subject, htmlContent)
}

// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"

	"github.com/pageforge/pageforge-go/internal/infrastructure/email/templates"
	"github.com/pageforge/pageforge-go/pkg/config"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendPageShareEmail(toEmail, pageTitle, pageURL, senderNote string) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.EmailFrom,
		fromName:  config.EmailFromName,
	}, nil
}

// SendPageShareEmail composes and sends a page share notification.
func (c *ResendClient) SendPageShareEmail(toEmail, pageTitle, pageURL, senderNote string) error {
	subject := fmt.Sprintf("A page was shared with you: %s", pageTitle)

	content := templates.GetShareEmailContent(templates.ShareEmailProps{
		SenderNote: senderNote,
		PageTitle:  pageTitle,
		PageURL:    pageURL,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send share email via Resend: %w", err)
	}

	return nil
}

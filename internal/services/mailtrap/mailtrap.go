// Package mailtrap provides email sending functionality via Mailtrap API.
//
// The auth handlers treat this as a fire-and-forget notification sink: a
// delivery failure is logged and captured but never surfaced to the client.
package mailtrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Service is the outbound email collaborator consumed by the auth handlers.
type Service interface {
	SendVerificationEmail(toEmail, verificationURL string) error
}

type MailtrapService struct {
	APIKey    string
	URL       string
	FromEmail string
	FromName  string

	client *http.Client
}

func NewMailtrapService(apiKey, url string) *MailtrapService {
	return &MailtrapService{
		APIKey:    apiKey,
		URL:       url,
		FromEmail: "noreply@popcorn.app",
		FromName:  "Popcorn",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// EmailRecipient represents an email recipient
type EmailRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// EmailRequest represents the request payload for sending an email
type EmailRequest struct {
	From     EmailRecipient   `json:"from"`
	To       []EmailRecipient `json:"to"`
	Subject  string           `json:"subject"`
	HTML     string           `json:"html,omitempty"`
	Text     string           `json:"text,omitempty"`
	Category string           `json:"category,omitempty"`
}

// SendVerificationEmail sends the email-confirmation link to a new account.
func (m *MailtrapService) SendVerificationEmail(toEmail, verificationURL string) error {
	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Verify Your Email</title>
		</head>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<h2>Welcome to Popcorn</h2>
				<p>Thanks for signing up. Click the button below to verify your email address:</p>
				<p style="margin: 30px 0;">
					<a href="%s" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Verify Email</a>
				</p>
				<p>Or copy and paste this link into your browser:</p>
				<p style="word-break: break-all; color: #007bff;">%s</p>
				<p>If you didn't create an account, you can safely ignore this email.</p>
				<hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
				<p style="font-size: 12px; color: #666;">This is an automated message, please do not reply.</p>
			</div>
		</body>
		</html>
	`, verificationURL, verificationURL)

	textBody := fmt.Sprintf(`
Welcome to Popcorn

Thanks for signing up. Open the link below to verify your email address:

%s

If you didn't create an account, you can safely ignore this email.

---
This is an automated message, please do not reply.
	`, verificationURL)

	emailReq := EmailRequest{
		From: EmailRecipient{
			Email: m.FromEmail,
			Name:  m.FromName,
		},
		To: []EmailRecipient{
			{Email: toEmail},
		},
		Subject:  "Verify your email address",
		HTML:     htmlBody,
		Text:     textBody,
		Category: "email_verification",
	}

	return m.sendEmail(emailReq)
}

// sendEmail sends an email via the Mailtrap API
func (m *MailtrapService) sendEmail(emailReq EmailRequest) error {
	payload, err := json.Marshal(emailReq)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.URL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mailtrap API returned status: %d", resp.StatusCode)
	}

	return nil
}

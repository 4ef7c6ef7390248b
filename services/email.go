package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends e-mail through the Resend API.
type Mailer struct {
	APIKey   string
	From     string
	Endpoint string
	Client   *http.Client
}

// NewMailerFromConfig requires RESEND_API_KEY and RESEND_FROM_EMAIL.
func NewMailerFromConfig(c map[string]string) (*Mailer, error) {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not set")
	}
	fromEmail := config.GetString(c, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return nil, fmt.Errorf("RESEND_FROM_EMAIL is not set")
	}
	return &Mailer{
		APIKey:   apiKey,
		From:     fromEmail,
		Endpoint: resendEndpoint,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Send delivers one HTML message. replyTo may be empty.
func (m *Mailer) Send(ctx context.Context, subject, body, replyTo string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    m.From,
		To:      recipients,
		Subject: subject,
		Html:    body,
		ReplyTo: replyTo,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}

// EmailNotifier mails each new contact message to the site owner.
type EmailNotifier struct {
	Mailer   *Mailer
	To       []string
	AdminURL string
}

func (n *EmailNotifier) NotifyContact(ctx context.Context, c models.Contact) error {
	subject := fmt.Sprintf("New contact: %s", truncate(c.Subject, 80))

	var b bytes.Buffer
	fmt.Fprintf(&b, "<p><strong>%s</strong> &lt;%s&gt; wrote:</p>", html.EscapeString(c.FullName()), html.EscapeString(c.Email))
	fmt.Fprintf(&b, "<p><em>%s</em></p>", html.EscapeString(c.Subject))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(c.Message))
	if n.AdminURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s">Open the dashboard</a></p>`, html.EscapeString(n.AdminURL))
	}

	return n.Mailer.Send(ctx, subject, b.String(), c.Email, n.To)
}

package services

import (
	"context"
	"fmt"

	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the Twilio call used to send an SMS.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSNotifier texts a short summary of each new contact message.
type SMSNotifier struct {
	api      messageCreator
	From     string
	To       string
	AdminURL string
}

// NewSMSNotifierFromConfig requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN,
// TWILIO_FROM_NUMBER and CONTACT_NOTIFY_PHONE.
func NewSMSNotifierFromConfig(c map[string]string) (*SMSNotifier, error) {
	sid := config.GetString(c, "TWILIO_ACCOUNT_SID", "")
	token := config.GetString(c, "TWILIO_AUTH_TOKEN", "")
	from := config.GetString(c, "TWILIO_FROM_NUMBER", "")
	to := config.GetString(c, "CONTACT_NOTIFY_PHONE", "")
	if sid == "" || token == "" || from == "" || to == "" {
		return nil, fmt.Errorf("twilio credentials or phone numbers not set")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return &SMSNotifier{api: client.Api, From: from, To: to}, nil
}

func (n *SMSNotifier) NotifyContact(ctx context.Context, c models.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := fmt.Sprintf("New message from %s: %s", c.FullName(), truncate(c.Subject, 60))
	if n.AdminURL != "" {
		body += " " + n.AdminURL
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.To)
	params.SetFrom(n.From)
	params.SetBody(body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Info().Str("messageSid", *resp.Sid).Msg("Sent contact SMS via Twilio")
	}
	return nil
}

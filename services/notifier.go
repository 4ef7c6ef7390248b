package services

import (
	"context"

	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Notifier tells the site owner about a new contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, contact models.Contact) error
}

// MultiNotifier runs every notifier concurrently. All of them are attempted;
// the first error is returned.
type MultiNotifier []Notifier

func (m MultiNotifier) NotifyContact(ctx context.Context, contact models.Contact) error {
	var g errgroup.Group
	for _, n := range m {
		g.Go(func() error {
			return n.NotifyContact(ctx, contact)
		})
	}
	return g.Wait()
}

// NewNotifier builds the notifiers enabled by configuration. With nothing
// configured the result is an empty MultiNotifier that does nothing.
func NewNotifier(c map[string]string) MultiNotifier {
	var notifiers MultiNotifier
	adminURL := AdminContactsURL(config.GetString(c, "BASE_URL", ""))

	if mailer, err := NewMailerFromConfig(c); err == nil {
		if to := config.GetStrings(c, "CONTACT_NOTIFY_EMAIL", nil); len(to) > 0 {
			notifiers = append(notifiers, &EmailNotifier{Mailer: mailer, To: to, AdminURL: adminURL})
		}
	} else {
		log.Info().Err(err).Msg("E-mail notifications disabled")
	}

	if sms, err := NewSMSNotifierFromConfig(c); err == nil {
		sms.AdminURL = adminURL
		notifiers = append(notifiers, sms)
	} else {
		log.Info().Err(err).Msg("SMS notifications disabled")
	}

	return notifiers
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var testContact = models.Contact{
	FirstName: "Grace",
	LastName:  "Hopper",
	Email:     "grace@example.com",
	Subject:   "Oscilloscope <question>",
	Message:   "Which probe should I buy?",
}

func TestEmailNotifierSendsResendRequest(t *testing.T) {
	var got ResendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	mailer := &Mailer{APIKey: "re_test", From: "Site <site@example.com>", Endpoint: srv.URL, Client: srv.Client()}
	n := &EmailNotifier{Mailer: mailer, To: []string{"owner@example.com"}, AdminURL: "https://example.com/admin/contacts"}

	require.NoError(t, n.NotifyContact(context.Background(), testContact))
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "grace@example.com", got.ReplyTo)
	assert.Contains(t, got.Subject, "Oscilloscope")
	assert.Contains(t, got.Html, "&lt;question&gt;")
	assert.Contains(t, got.Html, "https://example.com/admin/contacts")
}

func TestMailerReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	mailer := &Mailer{APIKey: "k", From: "bad", Endpoint: srv.URL, Client: srv.Client()}
	err := mailer.Send(context.Background(), "s", "b", "", []string{"a@b.co"})
	assert.ErrorContains(t, err, "invalid from address")

	err = mailer.Send(context.Background(), "s", "b", "", nil)
	assert.Error(t, err)
}

type fakeMessages struct {
	params []*twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = append(f.params, p)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSMSNotifier(t *testing.T) {
	fake := &fakeMessages{}
	n := &SMSNotifier{api: fake, From: "+15550001111", To: "+15552223333"}

	require.NoError(t, n.NotifyContact(context.Background(), testContact))
	require.Len(t, fake.params, 1)
	assert.Equal(t, "+15552223333", *fake.params[0].To)
	assert.Equal(t, "+15550001111", *fake.params[0].From)
	assert.Contains(t, *fake.params[0].Body, "Grace Hopper")

	fake.err = errors.New("unverified number")
	assert.ErrorContains(t, n.NotifyContact(context.Background(), testContact), "unverified number")
}

type countingNotifier struct {
	calls atomic.Int32
	err   error
}

func (c *countingNotifier) NotifyContact(context.Context, models.Contact) error {
	c.calls.Add(1)
	return c.err
}

func TestMultiNotifierAttemptsAll(t *testing.T) {
	failing := &countingNotifier{err: errors.New("boom")}
	ok := &countingNotifier{}

	err := MultiNotifier{failing, ok}.NotifyContact(context.Background(), testContact)
	assert.ErrorContains(t, err, "boom")
	assert.EqualValues(t, 1, failing.calls.Load())
	assert.EqualValues(t, 1, ok.calls.Load())

	assert.NoError(t, MultiNotifier{}.NotifyContact(context.Background(), testContact))
}

func TestNewNotifierFromConfig(t *testing.T) {
	assert.Empty(t, NewNotifier(map[string]string{}))

	n := NewNotifier(map[string]string{
		"RESEND_API_KEY":       "re_x",
		"RESEND_FROM_EMAIL":    "site@example.com",
		"CONTACT_NOTIFY_EMAIL": "a@example.com, b@example.com",
		"TWILIO_ACCOUNT_SID":   "AC1",
		"TWILIO_AUTH_TOKEN":    "tok",
		"TWILIO_FROM_NUMBER":   "+1555",
		"CONTACT_NOTIFY_PHONE": "+1666",
		"BASE_URL":             "https://example.com/",
	})
	require.Len(t, n, 2)
	email, ok := n[0].(*EmailNotifier)
	require.True(t, ok)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, email.To)
	assert.Equal(t, "https://example.com/admin/contacts", email.AdminURL)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "", AdminContactsURL(""))
}

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rpupo63/electronics-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const notifyTimeout = 30 * time.Second

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
	notifier  services.Notifier
}

func newContactHandler(storage database.Storage, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
		notifier:  notifier,
	}
}

// createContact stores a contact-form message and notifies the owner
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Message"
// @Success 201 {object} ContactCreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid form data"
// @Failure 500 {object} ErrorResponse "Failed to send message"
// @Router /contact [post]
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := decodeJSON(w, r, "contact", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		req.FirstName = strings.TrimSpace(req.FirstName)
		req.LastName = strings.TrimSpace(req.LastName)
		req.Email = strings.TrimSpace(req.Email)
		req.Subject = strings.TrimSpace(req.Subject)
		req.Message = strings.TrimSpace(req.Message)
		if err := validateStruct("Invalid form data", req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact := models.Contact{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
		}
		if err := h.storage.CreateContact(r.Context(), &contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("send", "message", err))
			return
		}

		h.notify(r.Context(), contact)
		h.responder.WriteJSONStatus(w, http.StatusCreated, ContactCreatedResponse{
			Message: "Message sent successfully",
			ID:      contact.ID,
		})
	}
}

// notify runs the notifiers in the background; failures are only logged.
func (h contactHandler) notify(ctx context.Context, contact models.Contact) {
	if h.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	go func() {
		defer cancel()
		if err := h.notifier.NotifyContact(ctx, contact); err != nil {
			h.logger.Error().Err(err).Str("contactID", contact.ID.String()).Msg("Failed to notify about contact message")
		}
	}()
}

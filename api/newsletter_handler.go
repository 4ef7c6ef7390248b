package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type newsletterHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newNewsletterHandler(storage database.Storage) newsletterHandler {
	logger := log.With().Str("handlerName", "newsletterHandler").Logger()

	return newsletterHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// subscribe adds an address to the newsletter; repeats are accepted silently
// @Summary Subscribe to newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param body body NewsletterRequest true "Subscriber"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Email is required"
// @Router /newsletter [post]
func (h newsletterHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewsletterRequest
		if err := decodeJSON(w, r, "newsletter", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email", "Email is required"))
			return
		}

		if _, err := h.storage.AddToNewsletter(r.Context(), req.Email); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("subscribe to", "newsletter", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, MessageResponse{Message: "Successfully subscribed to newsletter"})
	}
}

func (h newsletterHandler) getSubscribers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscribers, err := h.storage.GetNewsletterSubscribers(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "newsletter subscribers", err))
			return
		}
		h.responder.WriteJSON(w, subscribers)
	}
}

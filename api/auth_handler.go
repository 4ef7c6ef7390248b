package api

import (
	"net/http"

	"github.com/rpupo63/electronics-site-backend/auth"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      *auth.Gate
}

func newAuthHandler(gate *auth.Gate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

// login exchanges a username and password for a credential
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Username and password required"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(w, r, "login", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Username and password required", req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, user, err := h.gate.Issue(r.Context(), req.Username, req.Password)
		if err != nil {
			if errs.IsInvalidCredentialsError(err) {
				h.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("userID", user.ID.String()).Msg("User logged in")
		h.responder.WriteJSON(w, LoginResponse{Token: token, User: newPublicUser(user)})
	}
}

// verify echoes the identity carried by a still-valid credential
// @Summary Verify credential
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 403 {object} ErrorResponse "Invalid or expired token"
// @Router /auth/verify [post]
func (h authHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := ctxGetIdentity(r.Context())
		if identity == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}
		h.responder.WriteJSON(w, VerifyResponse{Valid: true, User: *identity})
	}
}

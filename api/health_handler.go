package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	storage     database.Storage
	startupTime time.Time
}

func newHealthHandler(storage database.Storage, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		storage:     storage,
		startupTime: startupTime,
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.storage.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("Database ping failed")
			h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}

		h.responder.WriteJSON(w, HealthResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/electronics-site-backend/auth"
	"github.com/rpupo63/electronics-site-backend/blobstore"
	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/services"
	"github.com/rs/zerolog/log"
)

const defaultMaxUploadBytes = 10 << 20

// Dependencies are the components the API is built from. They are created
// once at startup and shared by every request.
type Dependencies struct {
	Storage  database.Storage
	Gate     *auth.Gate
	Blobs    blobstore.Store
	Notifier services.Notifier
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, deps Dependencies) (Server, error) {
	if deps.Storage == nil || deps.Gate == nil || deps.Blobs == nil {
		return Server{}, fmt.Errorf("storage, gate and blob store are required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	readTimeout := config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180*time.Second)
	writeTimeout := config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180*time.Second)
	idleTimeout := config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180*time.Second)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	acceptedOrigins := config.GetStrings(router.config, "ACCEPTED_ORIGINS", []string{"*"})
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	maxUpload := config.GetInt64(router.config, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	handlers := initializeHandlers(deps, maxUpload, router.startupTime)
	authMiddleware := newAuthMiddleware(deps.Gate)

	chiRouter.Route("/api", func(r chi.Router) {
		setupPublicRoutes(r, handlers)
		setupAdminRoutes(r, handlers, authMiddleware)
	})

	// Locally stored media is served by the store itself
	if disk, ok := deps.Blobs.(*blobstore.DiskStore); ok {
		chiRouter.Handle(disk.MountPath()+"/*", disk)
	}

	notFound := NewResponder(log.Logger)
	chiRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
		notFound.WriteJSONStatus(w, http.StatusNotFound, ErrorResponse{Message: "Route not found"})
	})
	chiRouter.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		notFound.WriteJSONStatus(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed"})
	})

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

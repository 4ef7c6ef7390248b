package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newProjectHandler(storage database.Storage) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// getPublishedProjects lists published projects, newest first
// @Summary List published projects
// @Tags Projects
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h projectHandler) getPublishedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.storage.GetPublishedProjects(r.Context(), pageFromQuery(r, publicPageSize))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "projects", err))
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProjectBySlug returns one project and counts the view
// @Summary Get project by slug
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.storage.GetProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.storage.IncrementProjectViews(r.Context(), project.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.storage.GetProjects(r.Context(), pageFromQuery(r, adminPageSize))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "projects", err))
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.storage.GetProject(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a project authored by the caller
// @Summary Create project
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid project data"
// @Failure 409 {object} ErrorResponse "Project already exists"
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProjectRequest
		if err := decodeJSON(w, r, "project", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Invalid project data", req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkSlug(req.Slug, req.Title); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := req.toModel()
		project.AuthorID = authorID(r)
		if err := h.storage.CreateProject(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "Project", err))
			return
		}

		h.logger.Info().Str("projectID", project.ID.String()).Str("slug", project.Slug).Msg("Project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ProjectPatch
		if err := decodeJSON(w, r, "project", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Invalid project data", patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.storage.UpdateProject(r.Context(), id, patch)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "Project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.storage.DeleteProject(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.logger.Info().Str("projectID", id.String()).Msg("Project deleted")
		h.responder.WriteJSON(w, MessageResponse{Message: "Project deleted"})
	}
}

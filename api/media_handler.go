package api

import (
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rpupo63/electronics-site-backend/blobstore"
	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const multipartMemory = 8 << 20

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
	blobs     blobstore.Store
	maxUpload int64
}

func newMediaHandler(storage database.Storage, blobs blobstore.Store, maxUpload int64) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
		blobs:     blobs,
		maxUpload: maxUpload,
	}
}

func (h mediaHandler) getMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		media, err := h.storage.GetMedia(r.Context(), pageFromQuery(r, adminPageSize))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "media", err))
			return
		}
		h.responder.WriteJSON(w, media)
	}
}

// uploadMedia stores the multipart "file" field and records it
// @Summary Upload media
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} models.Media
// @Failure 400 {object} ErrorResponse "file is required"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Router /admin/media [post]
func (h mediaHandler) uploadMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Leave room for the multipart envelope around the file itself
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+64<<10)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(h.maxUpload))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file", "file is required"))
			return
		}
		defer file.Close()

		if header.Size > h.maxUpload {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(h.maxUpload))
			return
		}

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = mime.TypeByExtension(path.Ext(header.Filename))
		}
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		key := blobstore.NewKey(header.Filename, time.Now())
		url, err := h.blobs.Put(r.Context(), key, file, header.Size, mimeType)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to store file", err))
			return
		}

		media := models.Media{
			Filename:     key,
			OriginalName: path.Base(header.Filename),
			MimeType:     mimeType,
			Size:         header.Size,
			URL:          url,
			UploadedBy:   authorID(r),
		}
		if err := h.storage.UploadMedia(r.Context(), &media); err != nil {
			if delErr := h.blobs.Delete(r.Context(), key); delErr != nil {
				h.logger.Error().Err(delErr).Str("key", key).Msg("Failed to remove orphaned media object")
			}
			h.responder.WriteError(w, wrapDatabaseError("save", "media", err))
			return
		}

		h.logger.Info().Str("mediaID", media.ID.String()).Int64("size", media.Size).Msg("Media uploaded")
		h.responder.WriteJSONStatus(w, http.StatusCreated, media)
	}
}

func (h mediaHandler) deleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		media, err := h.storage.GetMediaItem(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "media", err))
			return
		}
		if media == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Media not found"))
			return
		}

		if err := h.blobs.Delete(r.Context(), media.Filename); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to delete file", err))
			return
		}
		if _, err := h.storage.DeleteMedia(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "media", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Media deleted"})
	}
}

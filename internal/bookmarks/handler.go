package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sundayezeilo/bookmarkd/internal/errx"
	"github.com/sundayezeilo/bookmarkd/internal/httpx"
)

// createBookmarkRequest is the JSON request body for creating a bookmark.
// Rating decodes as a JSON number so fractional values can be rejected
// explicitly instead of failing decode.
type createBookmarkRequest struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

// updateBookmarkRequest is the JSON request body for a partial update.
// Pointer fields distinguish "absent" from "present"; falsy values (empty
// string, zero rating) still count as not provided.
type updateBookmarkRequest struct {
	Title       *string  `json:"title"`
	URL         *string  `json:"url"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
}

// bookmarkResponse is the JSON shape of a bookmark on the wire.
type bookmarkResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

func serializeBookmark(b Bookmark) bookmarkResponse {
	s := sanitized(b)
	return bookmarkResponse{
		ID:          s.ID,
		Title:       s.Title,
		URL:         s.URL,
		Description: s.Description,
		Rating:      s.Rating,
	}
}

const (
	msgNotFound  = "Bookmark doesn't exist"
	msgBadRating = "Rating must be a number between 0 and 5"
)

type contextKey string

const bookmarkContextKey contextKey = "bookmark"

// Handler provides HTTP handlers for the bookmarks resource.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

// HandlerConfig holds configuration for the handler.
type HandlerConfig struct {
	Repo   Repository
	Logger *slog.Logger
}

// NewHandler creates a new Handler instance.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		repo:   cfg.Repo,
		logger: logger,
	}
}

// List handles GET requests on the collection. An empty table yields 204 with
// no body, never an error.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	all, err := h.repo.List(ctx)
	if err != nil {
		h.serverError(ctx, w, err)
		return
	}

	if len(all) == 0 {
		httpx.WriteNoContent(w)
		return
	}

	out := make([]bookmarkResponse, 0, len(all))
	for _, b := range all {
		out = append(out, serializeBookmark(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Create handles POST requests on the collection. Validation order: required
// fields title, url, rating (first falsy one wins), then URL shape, then
// rating range.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.requestLogger(r)

	req, err := httpx.DecodeJSON[createBookmarkRequest](r)
	if err != nil {
		logger.WarnContext(ctx, "failed to decode request", "error", err.Error())
		// A rating of the wrong JSON type (e.g. "5") fails the integer
		// check, not decoding.
		var fieldErr *httpx.FieldError
		if errors.As(err, &fieldErr) && fieldErr.Field == "rating" {
			httpx.WriteError(w, http.StatusBadRequest, msgBadRating)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	required := []struct {
		field  string
		absent bool
	}{
		{"title", req.Title == ""},
		{"url", req.URL == ""},
		// Zero is treated as missing; existing clients rely on this
		// response.
		{"rating", req.Rating == 0},
	}
	for _, c := range required {
		if c.absent {
			logger.WarnContext(ctx, "missing required field", "field", c.field)
			httpx.WriteError(w, http.StatusBadRequest,
				fmt.Sprintf("Must provide '%s' in request.", c.field))
			return
		}
	}

	if !validURL(req.URL) {
		logger.WarnContext(ctx, "malformed url", "url", req.URL)
		httpx.WriteError(w, http.StatusBadRequest, "URL format is incorrect")
		return
	}

	if !validRating(req.Rating) {
		logger.WarnContext(ctx, "rating out of range", "rating", req.Rating)
		httpx.WriteError(w, http.StatusBadRequest, msgBadRating)
		return
	}

	created, err := h.repo.Insert(ctx, Bookmark{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Rating:      int(req.Rating),
	})
	if err != nil {
		h.serverError(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "bookmark created", "bookmark_id", created.ID)

	w.Header().Set("Location", fmt.Sprintf("/bookmarks/%d", created.ID))
	httpx.WriteJSON(w, http.StatusCreated, serializeBookmark(created))
}

// BookmarkCtx is a middleware guarding all single-resource routes: it resolves
// the path identifier, 404s when no row matches, and stashes the record in the
// request context for the verb handlers.
func (h *Handler) BookmarkCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "bookmarkID"), 10, 64)
		if err != nil {
			// Non-numeric identifiers cannot match any row.
			httpx.WriteError(w, http.StatusNotFound, msgNotFound)
			return
		}

		b, err := h.repo.GetByID(ctx, id)
		if err != nil {
			if errx.KindOf(err) == errx.NotFound {
				httpx.WriteError(w, http.StatusNotFound, msgNotFound)
				return
			}
			h.serverError(ctx, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, bookmarkContextKey, b)))
	})
}

// Get handles GET requests on a single bookmark.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := bookmarkFromContext(r.Context())
	if !ok {
		h.serverError(r.Context(), w, fmt.Errorf("bookmark missing from request context"))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, serializeBookmark(b))
}

// Delete handles DELETE requests on a single bookmark. BookmarkCtx has already
// 404'd if the row was absent; the delete itself ignores matched-row count.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, ok := bookmarkFromContext(ctx)
	if !ok {
		h.serverError(ctx, w, fmt.Errorf("bookmark missing from request context"))
		return
	}

	if err := h.repo.Delete(ctx, b.ID); err != nil {
		h.serverError(ctx, w, err)
		return
	}

	h.requestLogger(r).InfoContext(ctx, "bookmark deleted", "bookmark_id", b.ID)
	httpx.WriteNoContent(w)
}

// Update handles PATCH requests on a single bookmark. Only fields carrying a
// value are written; no URL-shape or rating-range validation applies here.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.requestLogger(r)

	b, ok := bookmarkFromContext(ctx)
	if !ok {
		h.serverError(ctx, w, fmt.Errorf("bookmark missing from request context"))
		return
	}

	req, err := httpx.DecodeJSON[updateBookmarkRequest](r)
	if err != nil {
		logger.WarnContext(ctx, "failed to decode request", "error", err.Error())
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := patchFromRequest(req)
	if patch.IsEmpty() {
		logger.WarnContext(ctx, "empty update payload", "bookmark_id", b.ID)
		httpx.WriteError(w, http.StatusBadRequest, "Request must contain at least one value to update")
		return
	}

	if err := h.repo.Update(ctx, b.ID, patch); err != nil {
		h.serverError(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "bookmark updated", "bookmark_id", b.ID)
	httpx.WriteNoContent(w)
}

// patchFromRequest keeps only fields that carry a value: absent, null, empty
// and zero fields are all treated as not provided.
func patchFromRequest(req updateBookmarkRequest) Patch {
	var patch Patch

	if req.Title != nil && *req.Title != "" {
		patch.Title = req.Title
	}
	if req.URL != nil && *req.URL != "" {
		patch.URL = req.URL
	}
	if req.Description != nil && *req.Description != "" {
		patch.Description = req.Description
	}
	if req.Rating != nil && *req.Rating != 0 {
		// Fractional ratings are stored the way the integer column would
		// coerce them: rounded half away from zero.
		rating := int(math.Round(*req.Rating))
		patch.Rating = &rating
	}
	return patch
}

func bookmarkFromContext(ctx context.Context) (Bookmark, bool) {
	b, ok := ctx.Value(bookmarkContextKey).(Bookmark)
	return b, ok
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	return h.logger.With(
		"request_id", httpx.GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
	)
}

// serverError surfaces a storage failure as a generic 500 without leaking
// internal detail to the client.
func (h *Handler) serverError(ctx context.Context, w http.ResponseWriter, err error) {
	h.logger.ErrorContext(ctx, "unexpected error",
		"request_id", httpx.GetRequestID(ctx),
		"error", err.Error(),
		"error_kind", errx.KindOf(err).String(),
		"operation", errx.OpOf(err),
	)
	httpx.WriteError(w, http.StatusInternalServerError, "server error")
}

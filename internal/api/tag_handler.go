package api

import (
	"log/slog"
	"net/http"

	"github.com/jalvarado/contacts-api/internal/api/shared"
	"github.com/jalvarado/contacts-api/internal/platform/logger"
	"github.com/jalvarado/contacts-api/internal/store"
)

// CreateTagRequest represents the body of POST /api/tags.
type CreateTagRequest struct {
	TagName string `json:"tagName" validate:"required"`
}

// TagHandler handles tag registry HTTP requests
type TagHandler struct {
	registry store.TagRegistry
	logger   *slog.Logger
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(registry store.TagRegistry, logger *slog.Logger) *TagHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TagHandler")
	}

	return &TagHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "tag_handler")),
	}
}

// ListTags handles GET /api/tags requests.
// The body is the bare sorted array of registered tag names.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.registry.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tags)
}

// CreateTag handles POST /api/tags requests.
// Registering a name that already exists (compared case-insensitively) is
// not an error: the response is 200 with the unchanged registry. A genuinely
// new name answers 201. Either way the body is the full sorted registry.
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTagRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tags, created, err := h.registry.Create(r.Context(), req.TagName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		log.Debug("tag registered", slog.String("tag", req.TagName))
	}
	shared.RespondWithJSON(w, r, status, tags)
}

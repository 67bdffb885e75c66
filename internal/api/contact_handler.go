package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jalvarado/contacts-api/internal/api/shared"
	"github.com/jalvarado/contacts-api/internal/domain"
	"github.com/jalvarado/contacts-api/internal/platform/logger"
	"github.com/jalvarado/contacts-api/internal/store"
)

// Listing defaults applied when the query parameters are absent or unusable.
const (
	defaultPage  = 1
	defaultLimit = 50
)

// ContactResponse represents the response data for a single contact.
type ContactResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	IsFavorite bool     `json:"isFavorite"`
	Tags       []string `json:"tags"`
}

// ContactListResponse is the paginated envelope for contact listings.
type ContactListResponse struct {
	Contacts    []ContactResponse `json:"contacts"`
	TotalCount  int               `json:"totalCount"`
	Page        int               `json:"page"`
	HasNextPage bool              `json:"hasNextPage"`
}

// CreateContactRequest represents the body of POST /api/contacts.
// Name and phone are required. The remaining fields are deliberately loose:
// values of the wrong shape are dropped during sanitization, never rejected.
type CreateContactRequest struct {
	Name     string          `json:"name" validate:"required"`
	Phone    string          `json:"phone" validate:"required"`
	Email    json.RawMessage `json:"email"`
	ImageURL json.RawMessage `json:"imageUrl"`
	Tags     json.RawMessage `json:"tags"`
}

// UpdateContactRequest represents the body of PUT /api/contacts/{id}.
// Both fields are optional; an absent field leaves the contact unchanged.
type UpdateContactRequest struct {
	IsFavorite json.RawMessage `json:"isFavorite"`
	Tags       json.RawMessage `json:"tags"`
}

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contacts store.ContactStore
	logger   *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts store.ContactStore, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ContactHandler")
	}

	return &ContactHandler{
		contacts: contacts,
		logger:   logger.With(slog.String("component", "contact_handler")),
	}
}

// ListContacts handles GET /api/contacts requests.
// Query parameters: page and limit (positive integers, defaulted when absent
// or malformed), search (substring over name, phone digits, and email), and
// tag ("All" or empty disables, "Favourite" selects favorites, anything else
// matches the exact tag).
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	params := store.ListContactsParams{
		Page:   parseIntOrDefault(query.Get("page"), defaultPage),
		Limit:  parseIntOrDefault(query.Get("limit"), defaultLimit),
		Search: query.Get("search"),
		Tag:    query.Get("tag"),
	}

	page, err := h.contacts.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("contacts listed",
		slog.Int("total_count", page.TotalCount),
		slog.Int("page", page.Page),
		slog.Int("returned", len(page.Contacts)))
	shared.RespondWithJSON(w, r, http.StatusOK, contactPageToResponse(page))
}

// CreateContact handles POST /api/contacts requests.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateContactRequest
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

	created, err := h.contacts.Create(r.Context(), store.CreateContactParams{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    domain.SanitizeEmail(req.Email),
		ImageURL: domain.SanitizeImageURL(req.ImageURL),
		Tags:     domain.SanitizeTags(req.Tags),
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("contact created", slog.String("contact_id", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, contactToResponse(created))
}

// UpdateContact handles PUT /api/contacts/{id} requests.
// Only the favorite flag and the tag list can change. A tags value that is
// present but not a usable array clears the contact's tags.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := chi.URLParam(r, "id")

	var req UpdateContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	params := store.UpdateContactParams{
		IsFavorite: domain.SanitizeFavorite(req.IsFavorite),
	}
	if len(req.Tags) > 0 {
		tags := domain.SanitizeTags(req.Tags)
		params.Tags = &tags
	}

	updated, err := h.contacts.Update(r.Context(), id, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("contact updated", slog.String("contact_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(updated))
}

// DeleteContact handles DELETE /api/contacts/{id} requests.
// The response body carries the contact as it was just before removal.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := chi.URLParam(r, "id")

	removed, err := h.contacts.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("contact deleted", slog.String("contact_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(removed))
}

// contactToResponse transforms a domain contact into its response form.
func contactToResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:         contact.ID,
		Name:       contact.Name,
		Phone:      contact.Phone,
		Email:      contact.Email,
		ImageURL:   contact.ImageURL,
		IsFavorite: contact.IsFavorite,
		Tags:       contact.Tags,
	}
}

// contactPageToResponse transforms a store page into the listing envelope.
func contactPageToResponse(page *store.ContactPage) ContactListResponse {
	contacts := make([]ContactResponse, 0, len(page.Contacts))
	for _, contact := range page.Contacts {
		contacts = append(contacts, contactToResponse(contact))
	}
	return ContactListResponse{
		Contacts:    contacts,
		TotalCount:  page.TotalCount,
		Page:        page.Page,
		HasNextPage: page.HasNextPage,
	}
}

// parseIntOrDefault parses a numeric query parameter, falling back to the
// default when the value is absent, non-numeric, or zero. Negative values
// pass through and are clamped by the listing itself.
func parseIntOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v == 0 {
		return def
	}
	return v
}

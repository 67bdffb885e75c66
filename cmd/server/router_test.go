package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalvarado/contacts-api/internal/api"
	"github.com/jalvarado/contacts-api/internal/config"
	"github.com/jalvarado/contacts-api/internal/platform/logger"
	"github.com/jalvarado/contacts-api/internal/platform/memory"
	"github.com/jalvarado/contacts-api/internal/seed"
)

// newTestApplication builds an application around empty in-memory stores,
// skipping synthetic seeding so tests control the collection exactly.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
		},
		logger:       log,
		contactStore: memory.NewMemoryContactStore(nil, log),
		tagRegistry:  memory.NewMemoryTagRegistry(seed.Tags(), log),
	}
}

func doRequest(
	t *testing.T,
	handler http.Handler,
	method, path, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := doRequest(t, router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

// TestRouter_ContactLifecycle drives a contact through create, search,
// favorite toggling, and deletion against the real stores.
func TestRouter_ContactLifecycle(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	// Create
	w := doRequest(t, router, http.MethodPost, "/api/contacts",
		`{"name":"Alice Johnson","phone":"(212) 555-0184","email":"alice@example.com","tags":["Work"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created api.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.False(t, created.IsFavorite, "new contacts never start as favorites")
	assert.Equal(t, []string{"Work"}, created.Tags)

	// Search finds it by folded name fragment
	w = doRequest(t, router, http.MethodGet, "/api/contacts?search=ALICE", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listing api.ContactListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.TotalCount)
	assert.Equal(t, created.ID, listing.Contacts[0].ID)

	// Search finds it by phone digits regardless of formatting
	w = doRequest(t, router, http.MethodGet, "/api/contacts?search=2125550184", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.TotalCount)

	// Mark favorite; tags must survive untouched
	w = doRequest(t, router, http.MethodPut, "/api/contacts/"+created.ID, `{"isFavorite":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated api.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, []string{"Work"}, updated.Tags)

	// The Favourite filter now selects it
	w = doRequest(t, router, http.MethodGet, "/api/contacts?tag=Favourite", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.TotalCount)
	assert.Equal(t, created.ID, listing.Contacts[0].ID)

	// Delete answers with the contact's final state
	w = doRequest(t, router, http.MethodDelete, "/api/contacts/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var removed api.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removed))
	assert.Equal(t, created.ID, removed.ID)
	assert.True(t, removed.IsFavorite)

	// Collection is empty again
	w = doRequest(t, router, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 0, listing.TotalCount)
	assert.Empty(t, listing.Contacts)
}

func TestRouter_ListOrderingAndPagination(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	for _, payload := range []string{
		`{"name":"Zoe Hart","phone":"(917) 555-0001"}`,
		`{"name":"adam Lowe","phone":"(917) 555-0002"}`,
		`{"name":"Bob Smith","phone":"(917) 555-0003"}`,
	} {
		w := doRequest(t, router, http.MethodPost, "/api/contacts", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	namesOn := func(path string) ([]string, api.ContactListResponse) {
		w := doRequest(t, router, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code)

		var listing api.ContactListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))

		names := make([]string, 0, len(listing.Contacts))
		for _, c := range listing.Contacts {
			names = append(names, c.Name)
		}
		return names, listing
	}

	// Ordering ignores letter case
	names, listing := namesOn("/api/contacts?limit=2&page=1")
	assert.Equal(t, []string{"adam Lowe", "Bob Smith"}, names)
	assert.Equal(t, 3, listing.TotalCount)
	assert.True(t, listing.HasNextPage)

	names, listing = namesOn("/api/contacts?limit=2&page=2")
	assert.Equal(t, []string{"Zoe Hart"}, names)
	assert.False(t, listing.HasNextPage)

	// A page beyond the collection is empty, not an error
	names, listing = namesOn("/api/contacts?limit=2&page=9")
	assert.Empty(t, names)
	assert.Equal(t, 3, listing.TotalCount)
	assert.False(t, listing.HasNextPage)
}

func TestRouter_TagLifecycle(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := doRequest(t, router, http.MethodGet, "/api/tags", "")
	require.Equal(t, http.StatusOK, w.Code)

	var tags []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Equal(t, seed.Tags(), tags)

	// A fresh name lands sorted into the registry
	w = doRequest(t, router, http.MethodPost, "/api/tags", `{"tagName":"Book Club"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Contains(t, tags, "Book Club")
	assert.Equal(t, "Book Club", tags[0])

	// Re-registering under different casing is a no-op
	w = doRequest(t, router, http.MethodPost, "/api/tags", `{"tagName":"book club"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var unchanged []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unchanged))
	assert.Equal(t, tags, unchanged)

	// Blank names are rejected
	w = doRequest(t, router, http.MethodPost, "/api/tags", `{"tagName":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnknownContactAnswers404WithTrace(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	for _, tc := range []struct {
		method string
		body   string
	}{
		{method: http.MethodPut, body: `{"isFavorite":true}`},
		{method: http.MethodDelete, body: ""},
	} {
		w := doRequest(t, router, tc.method, "/api/contacts/"+uuid.NewString(), tc.body)
		require.Equal(t, http.StatusNotFound, w.Code, "method %s", tc.method)

		var respBody map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
		assert.Equal(t, "Contact not found", respBody["error"])

		traceID, ok := respBody["trace_id"].(string)
		assert.True(t, ok, "error responses must carry a trace id")
		assert.Len(t, traceID, 32)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := doRequest(t, router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

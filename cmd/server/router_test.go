package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmallory/roster-api/internal/api"
	"github.com/jmallory/roster-api/internal/config"
	"github.com/jmallory/roster-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires a real in-memory store behind the production
// router, bypassing config loading and signal handling.
func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
			Store:  config.StoreConfig{DefaultPageLimit: 20, MaxPageLimit: 100},
		},
		logger:      slog.Default(),
		recordStore: memory.NewRecordStore(nil),
	}
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApplication().setupRouter()

	rr := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRecordLifecycleOverHTTP(t *testing.T) {
	router := newTestApplication().setupRouter()

	// Create John and Jane.
	rr := doJSON(t, router, http.MethodPost, "/api/records",
		`{"name":"John","email":"j@x.com","age":30}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var john api.RecordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &john))
	assert.Equal(t, int64(1), john.ID)
	assert.False(t, john.CreatedAt.IsZero())

	rr = doJSON(t, router, http.MethodPost, "/api/records",
		`{"name":"Jane","email":"jane@x.com","age":25}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var jane api.RecordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &jane))
	assert.Equal(t, int64(2), jane.ID)

	// A colliding email is a conflict.
	rr = doJSON(t, router, http.MethodPost, "/api/records",
		`{"name":"Impostor","email":"j@x.com","age":50}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Delete John; his identifier is retired for good.
	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/records/%d", john.ID), "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/records/%d", john.ID), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/records",
		`{"name":"Joe","email":"joe@x.com","age":40}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var joe api.RecordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &joe))
	assert.Equal(t, int64(3), joe.ID)

	// Listing shows Jane and Joe in insertion order.
	rr = doJSON(t, router, http.MethodGet, "/api/records", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list api.RecordListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Records, 2)
	assert.Equal(t, int64(2), list.Records[0].ID)
	assert.Equal(t, int64(3), list.Records[1].ID)
}

func TestUpdateSemanticsOverHTTP(t *testing.T) {
	router := newTestApplication().setupRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/records",
		`{"name":"John","email":"j@x.com","age":30}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created api.RecordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	// PATCH changes only the supplied field.
	rr = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/records/%d", created.ID),
		`{"age":31}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var patched api.RecordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &patched))
	assert.Equal(t, 31, patched.Age)
	assert.Equal(t, created.Name, patched.Name)
	assert.Equal(t, created.Email, patched.Email)

	// PUT overwrites everything.
	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/records/%d", created.ID),
		`{"name":"Johnny","email":"johnny@x.com","age":32}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var replaced api.RecordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &replaced))
	assert.Equal(t, "Johnny", replaced.Name)
	assert.Equal(t, "johnny@x.com", replaced.Email)
	assert.Equal(t, 32, replaced.Age)

	// PUT with a missing field is rejected; partial updates go through PATCH.
	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/records/%d", created.ID),
		`{"name":"NoEmail","age":33}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListFilteringOverHTTP(t *testing.T) {
	router := newTestApplication().setupRouter()

	people := []string{
		`{"name":"John Smith","email":"john@x.com","age":30}`,
		`{"name":"Jane Smith","email":"jane@x.com","age":25}`,
		`{"name":"Joe Bloggs","email":"joe@x.com","age":40}`,
		`{"name":"Mary Major","email":"mary@x.com","age":35}`,
		`{"name":"Max Minor","email":"max@x.com","age":20}`,
	}
	for _, body := range people {
		rr := doJSON(t, router, http.MethodPost, "/api/records", body)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(t, router, http.MethodGet, "/api/records?limit=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var page api.RecordListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "John Smith", page.Records[0].Name)
	assert.Equal(t, "Jane Smith", page.Records[1].Name)

	rr = doJSON(t, router, http.MethodGet, "/api/records?min_age=30&name_contains=m", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var filtered api.RecordListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &filtered))
	assert.Equal(t, 2, filtered.Total)
	require.Len(t, filtered.Records, 2)
	assert.Equal(t, "John Smith", filtered.Records[0].Name)
	assert.Equal(t, "Mary Major", filtered.Records[1].Name)
}

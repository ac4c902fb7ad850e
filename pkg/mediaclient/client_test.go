package mediaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	mediaapi "media-catalog/internal/api/media"
	"media-catalog/internal/apperrors"
	domain "media-catalog/internal/domain/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// catalogServer fakes the API: 25 records, offset pagination, and a counter
// of list fetches so tests can observe cache hits versus refetches.
func catalogServer(t *testing.T, listFetches *atomic.Int64) *httptest.Server {
	t.Helper()
	total := 25

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/media", func(w http.ResponseWriter, r *http.Request) {
		listFetches.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = 10
		}

		start := (page - 1) * limit
		items := make([]domain.Media, 0, limit)
		for i := start; i < start+limit && i < total; i++ {
			items = append(items, domain.Media{ID: uint(i + 1), Title: fmt.Sprintf("Film %02d", i+1), Type: domain.TypeMovie})
		}

		totalPages := (total + limit - 1) / limit
		writeJSON(w, http.StatusOK, serverEnvelope{Success: true, Data: mediaapi.PaginatedMedia{
			Data: items,
			Pagination: mediaapi.PaginationMeta{
				CurrentPage:     page,
				TotalPages:      totalPages,
				TotalCount:      int64(total),
				HasNextPage:     page < totalPages,
				HasPreviousPage: page > 1,
				Limit:           limit,
			},
		}})
	})
	mux.HandleFunc("GET /api/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		writeJSON(w, http.StatusOK, serverEnvelope{Success: true, Data: domain.Media{ID: uint(id), Title: "Single", Type: domain.TypeMovie}})
	})
	mux.HandleFunc("POST /api/media", func(w http.ResponseWriter, r *http.Request) {
		var req mediaapi.CreateMediaRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Title == "" {
			writeJSON(w, http.StatusBadRequest, serverEnvelope{Success: false, Error: map[string]interface{}{
				"message":    "Validation failed",
				"statusCode": 400,
				"validationErrors": []apperrors.ValidationError{
					{Field: "title", Message: "Title is required", Code: "required"},
				},
			}})
			return
		}
		writeJSON(w, http.StatusCreated, serverEnvelope{Success: true, Data: domain.Media{ID: 99, Title: req.Title, Type: domain.MediaType(req.Type)}})
	})
	mux.HandleFunc("PUT /api/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		writeJSON(w, http.StatusOK, serverEnvelope{Success: true, Data: domain.Media{ID: uint(id), Title: "Updated", Type: domain.TypeMovie}})
	})
	mux.HandleFunc("DELETE /api/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		writeJSON(w, http.StatusOK, serverEnvelope{Success: true, Data: map[string]int{"id": id}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func TestList_AccumulatesPages(t *testing.T) {
	var fetches atomic.Int64
	srv := catalogServer(t, &fetches)
	c := New(srv.URL)
	ctx := context.Background()
	params := Params{Limit: 10}

	items, err := c.List(ctx, params)
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(25), c.TotalCount(params))
	assert.Equal(t, int64(1), fetches.Load())

	// cached: no extra fetch
	items, err = c.List(ctx, params)
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(1), fetches.Load())

	more, err := c.FetchNextPage(ctx, params)
	require.NoError(t, err)
	assert.True(t, more)
	items, _ = c.List(ctx, params)
	assert.Len(t, items, 20)
	assert.Equal(t, "Film 11", items[10].Title)

	more, err = c.FetchNextPage(ctx, params)
	require.NoError(t, err)
	assert.False(t, more)
	items, _ = c.List(ctx, params)
	assert.Len(t, items, 25)

	// no next page left: no request goes out
	before := fetches.Load()
	more, err = c.FetchNextPage(ctx, params)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, before, fetches.Load())
}

func TestList_FilterChangeIsANewCacheEntry(t *testing.T) {
	var fetches atomic.Int64
	srv := catalogServer(t, &fetches)
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.List(ctx, Params{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), fetches.Load())

	// different filter set fetches fresh, starting at page 1
	_, err = c.List(ctx, Params{Limit: 10, Search: "Matrix"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetches.Load())

	// the original filter set is still cached
	_, err = c.List(ctx, Params{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetches.Load())
}

func TestMutations_InvalidateListCache(t *testing.T) {
	var fetches atomic.Int64
	srv := catalogServer(t, &fetches)
	c := New(srv.URL)
	ctx := context.Background()
	params := Params{Limit: 10}

	_, err := c.List(ctx, params)
	require.NoError(t, err)
	require.Equal(t, int64(1), fetches.Load())

	created, err := c.Create(ctx, mediaapi.CreateMediaRequest{Title: "New Film", Type: "MOVIE"})
	require.NoError(t, err)
	assert.Equal(t, uint(99), created.ID)

	// the list refetches instead of patching in place
	_, err = c.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetches.Load())

	_, err = c.Update(ctx, 5, mediaapi.UpdateMediaRequest{})
	require.NoError(t, err)
	_, err = c.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fetches.Load())

	require.NoError(t, c.Delete(ctx, 5))
	_, err = c.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(4), fetches.Load())
}

func TestGet_CachesUntilUpdate(t *testing.T) {
	var fetches atomic.Int64
	srv := catalogServer(t, &fetches)
	c := New(srv.URL)
	ctx := context.Background()

	first, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), first.ID)

	// second read is served from the item cache (mutating the copy is safe)
	first.Title = "mutated locally"
	second, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Single", second.Title)

	// update drops the entry; next Get refetches
	_, err = c.Update(ctx, 7, mediaapi.UpdateMediaRequest{})
	require.NoError(t, err)
	third, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Single", third.Title)
}

func TestCreate_SurfacesValidationErrors(t *testing.T) {
	var fetches atomic.Int64
	srv := catalogServer(t, &fetches)
	c := New(srv.URL)

	_, err := c.Create(context.Background(), mediaapi.CreateMediaRequest{Type: "MOVIE"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", apiErr.Message)
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, []string{"title: Title is required"}, apiErr.FieldMessages())
}

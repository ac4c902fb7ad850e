// Package mediaclient is a Go client for the media catalog API with the same
// caching discipline as the web frontend: list pages accumulate per filter
// set, and any mutation invalidates cached lists instead of patching them in
// place.
package mediaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	mediaapi "media-catalog/internal/api/media"
	"media-catalog/internal/apperrors"
	domain "media-catalog/internal/domain/media"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Message          string                      `json:"message"`
		StatusCode       int                         `json:"statusCode"`
		ValidationErrors []apperrors.ValidationError `json:"validationErrors"`
	} `json:"error"`
}

// listState is the accumulated page sequence for one filter set.
type listState struct {
	items      []domain.Media
	totalCount int64
	nextPage   int
	hasNext    bool
}

// Client talks to the media API and keeps a forward-only paginated cache.
// It is safe for concurrent use; concurrent fetches of the same page are
// collapsed into one request.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	lists    map[string]*listState
	items    map[uint]*domain.Media
	inflight map[string]chan struct{}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		lists:      map[string]*listState{},
		items:      map[uint]*domain.Media{},
		inflight:   map[string]chan struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// ---------- list cache

// List returns the accumulated items for the filter set, fetching page 1 on
// a cold cache. Changing any filter value yields a different key, so the old
// page sequence is simply not reused.
func (c *Client) List(ctx context.Context, p Params) ([]domain.Media, error) {
	key := p.key()

	c.mu.Lock()
	_, ok := c.lists[key]
	c.mu.Unlock()
	if ok {
		return c.snapshot(key), nil
	}

	if err := c.fetchPage(ctx, p, 1); err != nil {
		return nil, err
	}
	return c.snapshot(key), nil
}

// FetchNextPage appends the next page for the filter set and reports whether
// more pages remain. It is a no-op when the cache is cold (call List first)
// or when every page is already loaded.
func (c *Client) FetchNextPage(ctx context.Context, p Params) (bool, error) {
	key := p.key()

	c.mu.Lock()
	state, ok := c.lists[key]
	if !ok || !state.hasNext {
		has := ok && state.hasNext
		c.mu.Unlock()
		return has, nil
	}
	page := state.nextPage
	c.mu.Unlock()

	if err := c.fetchPage(ctx, p, page); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if state, ok := c.lists[key]; ok {
		return state.hasNext, nil
	}
	return false, nil
}

// TotalCount reports the server-side total for a cached filter set.
func (c *Client) TotalCount(p Params) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if state, ok := c.lists[p.key()]; ok {
		return state.totalCount
	}
	return 0
}

// fetchPage loads one page and appends it to the filter set's state. At most
// one fetch per (filter set, page) is in flight; latecomers wait for the
// winner and use its result.
func (c *Client) fetchPage(ctx context.Context, p Params, page int) error {
	flight := p.key() + "#" + strconv.Itoa(page)

	c.mu.Lock()
	if ch, ok := c.inflight[flight]; ok {
		c.mu.Unlock()
		select {
		case <-ch:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	ch := make(chan struct{})
	c.inflight[flight] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, flight)
		c.mu.Unlock()
		close(ch)
	}()

	var result mediaapi.PaginatedMedia
	if err := c.do(ctx, http.MethodGet, "/api/media", p.values(page), nil, &result); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := p.key()
	state, ok := c.lists[key]
	if !ok {
		state = &listState{}
		c.lists[key] = state
	}
	// Forward-only append; a page fetched twice (e.g. after a concurrent
	// invalidation re-primed page 1) replaces from its offset.
	offset := (result.Pagination.CurrentPage - 1) * result.Pagination.Limit
	if offset <= len(state.items) {
		state.items = append(state.items[:offset], result.Data...)
	} else {
		state.items = append(state.items, result.Data...)
	}
	state.totalCount = result.Pagination.TotalCount
	state.hasNext = result.Pagination.HasNextPage
	state.nextPage = result.Pagination.CurrentPage + 1
	return nil
}

func (c *Client) snapshot(key string) []domain.Media {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.lists[key]
	if !ok {
		return nil
	}
	out := make([]domain.Media, len(state.items))
	copy(out, state.items)
	return out
}

// InvalidateLists drops every cached page sequence, forcing refetches.
func (c *Client) InvalidateLists() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists = map[string]*listState{}
}

// ---------- single items

func (c *Client) Get(ctx context.Context, id uint) (*domain.Media, error) {
	c.mu.Lock()
	if m, ok := c.items[id]; ok {
		cached := *m
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	var m domain.Media
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/media/%d", id), nil, nil, &m); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[id] = &m
	c.mu.Unlock()
	result := m
	return &result, nil
}

// ---------- mutations

// Create posts a new record. On success every cached list is invalidated;
// the next List call refetches from the server.
func (c *Client) Create(ctx context.Context, req mediaapi.CreateMediaRequest) (*domain.Media, error) {
	var m domain.Media
	if err := c.do(ctx, http.MethodPost, "/api/media", nil, req, &m); err != nil {
		return nil, err
	}
	c.InvalidateLists()
	return &m, nil
}

// Update puts a partial update. Cached lists and the item entry for id are
// both invalidated rather than patched.
func (c *Client) Update(ctx context.Context, id uint, req mediaapi.UpdateMediaRequest) (*domain.Media, error) {
	var m domain.Media
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/media/%d", id), nil, req, &m); err != nil {
		return nil, err
	}
	c.InvalidateLists()
	c.mu.Lock()
	delete(c.items, id)
	c.mu.Unlock()
	return &m, nil
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	var resp struct {
		ID uint `json:"id"`
	}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/media/%d", id), nil, nil, &resp); err != nil {
		return err
	}
	c.InvalidateLists()
	c.mu.Lock()
	delete(c.items, id)
	c.mu.Unlock()
	return nil
}

// Stats fetches the aggregate overview. Stats are cheap and always read
// fresh.
func (c *Client) Stats(ctx context.Context) (*mediaapi.MediaStats, error) {
	var stats mediaapi.MediaStats
	if err := c.do(ctx, http.MethodGet, "/api/media/stats/overview", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ---------- transport

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		if env.Error != nil {
			apiErr.Message = env.Error.Message
			apiErr.ValidationErrors = env.Error.ValidationErrors
			if env.Error.StatusCode != 0 {
				apiErr.StatusCode = env.Error.StatusCode
			}
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

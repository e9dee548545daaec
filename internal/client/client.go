// Package client talks to the recipe HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"recipe-backend/internal/domain"
	"recipe-backend/internal/query"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// Client is a thin JSON client for the recipe API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: defaultTimeout},
	}
}

// CreateResult is the body of a successful create.
type CreateResult struct {
	Message string        `json:"message"`
	Recipe  domain.Recipe `json:"recipe"`
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]domain.Recipe, error) {
	var out []domain.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Query asks the server to search, filter and sort. Favorites and ratings are
// client-local, so FavoritesOnly and rating sorts are not sent.
func (c *Client) Query(ctx context.Context, q query.Query) ([]domain.Recipe, error) {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Filters.Category != "" {
		v.Set("category", q.Filters.Category)
	}
	if q.Filters.Difficulty != "" {
		v.Set("difficulty", q.Filters.Difficulty)
	}
	if q.Filters.MaxTime > 0 {
		v.Set("maxTime", strconv.FormatFloat(q.Filters.MaxTime, 'f', -1, 64))
	}
	if q.Sort != "" && q.Sort != query.RatingDesc {
		v.Set("sort", string(q.Sort))
	}
	path := "/recipes"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out []domain.Recipe
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories fetches the distinct categories in the collection.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/recipes/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a recipe. payload is sent as-is so the server performs all
// validation.
func (c *Client) Create(ctx context.Context, payload map[string]any) (CreateResult, error) {
	var out CreateResult
	if err := c.do(ctx, http.MethodPost, "/recipes", payload, &out); err != nil {
		return CreateResult{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsConflict reports whether err is a 409 from the server.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict
}

// Package client talks to the food catalogue REST API.
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
	"strings"
	"time"

	"food-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("food api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("food api: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client is an HTTP client for the /foods endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout. It works on a copy, so an http.Client
// passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With().Str("component", "food-client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListFoods fetches the whole catalogue.
func (c *Client) ListFoods(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := c.do(ctx, http.MethodGet, "/foods", nil, &foods); err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []model.Food{}
	}
	return foods, nil
}

// CreateFood sends draft with availability switched on and returns the stored food.
func (c *Client) CreateFood(ctx context.Context, draft model.FoodDraft) (model.Food, error) {
	var created model.Food
	err := c.do(ctx, http.MethodPost, "/foods", model.NewCreateFoodRequest(draft), &created)
	return created, err
}

// UpdateFood replaces the food with the given id.
func (c *Client) UpdateFood(ctx context.Context, id string, food model.Food) (model.Food, error) {
	if id == "" {
		return model.Food{}, fmt.Errorf("update food: %w", model.ErrMissingFoodID)
	}

	var updated model.Food
	err := c.do(ctx, http.MethodPut, "/foods/"+url.PathEscape(id), food, &updated)
	return updated, err
}

// DeleteFood removes the food with the given id.
func (c *Client) DeleteFood(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete food: %w", model.ErrMissingFoodID)
	}
	return c.do(ctx, http.MethodDelete, "/foods/"+url.PathEscape(id), nil, nil)
}

// do performs a JSON request. out may be nil when no body is expected.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("food api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body model.ErrorResponse
	if json.Unmarshal(raw, &body) == nil && (body.Error != "" || body.Message != "") {
		apiErr.Code = body.Error
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

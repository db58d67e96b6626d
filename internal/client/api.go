// Package client talks to the goal tracker API and holds the optimistic
// view state a front end renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/goal-tracker/internal/domain"
)

// Fallback messages used when a non-2xx response carries no message of its own.
const (
	FallbackListMessage   = "Fetching the goals failed."
	FallbackCreateMessage = "Adding the goal failed."
	FallbackDeleteMessage = "Deleting the goal failed."
)

// RequestError is returned for any non-2xx response.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

// API is a thin typed wrapper over the goal tracker routes.
type API struct {
	baseURL string
	http    *http.Client
}

// Option configures an API.
type Option func(*API)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *API) { a.http = c }
}

// NewAPI returns a client for the server at baseURL. An empty baseURL uses
// the build's DefaultBaseURL.
func NewAPI(baseURL string, opts ...Option) *API {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	a := &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type listResponse struct {
	Goals []domain.Goal `json:"goals"`
}

type savedResponse struct {
	Message string      `json:"message"`
	Goal    domain.Goal `json:"goal"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListGoals fetches every stored goal.
func (a *API) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	var out listResponse
	if err := a.do(ctx, http.MethodGet, "/goals", nil, FallbackListMessage, &out); err != nil {
		return nil, err
	}
	if out.Goals == nil {
		out.Goals = []domain.Goal{}
	}
	return out.Goals, nil
}

// CreateGoal stores text and returns the goal the server created.
func (a *API) CreateGoal(ctx context.Context, text string) (domain.Goal, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return domain.Goal{}, fmt.Errorf("client.API.CreateGoal: %w", err)
	}
	var out savedResponse
	if err := a.do(ctx, http.MethodPost, "/goals", body, FallbackCreateMessage, &out); err != nil {
		return domain.Goal{}, err
	}
	return out.Goal, nil
}

// DeleteGoal asks the server to remove the goal with the given id.
func (a *API) DeleteGoal(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/goals/"+url.PathEscape(id), nil, FallbackDeleteMessage, nil)
}

func (a *API) do(ctx context.Context, method, path string, body []byte, fallback string, out any) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("client.API %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("client.API %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client.API %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var m messageResponse
		if json.Unmarshal(raw, &m) == nil && m.Message != "" {
			msg = m.Message
		}
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client.API %s %s: decode: %w", method, path, err)
	}
	return nil
}

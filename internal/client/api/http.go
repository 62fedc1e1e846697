package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"herbtrack/internal/client/models"
)

// HTTPClient is the concrete Client speaking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient constructs a client bound to the given base URL
// (including the /api/v1 prefix).
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, http: &http.Client{}}
}

// SetToken adopts the bearer credential for subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// ClearToken drops the bearer credential.
func (c *HTTPClient) ClearToken() {
	c.token = ""
}

// do is the single request entry point. It marshals body (when non-nil) as
// JSON, attaches Content-Type and the bearer token when one is set, and
// decodes a 2xx response into out (when non-nil). Any failure — a transport
// error or a non-2xx response — comes back as *Error carrying the service's
// error message, or a generic one if the body has none.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		msg := genericMessage
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			msg = e.Error
		}
		return &Error{Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Message: err.Error()}
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/register", body, nil)
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	body := map[string]string{"username": username, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	return &models.Session{Token: resp.AccessToken, User: resp.User}, nil
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := c.do(ctx, http.MethodGet, "/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Summary, error) {
	var summary models.Summary
	if err := c.do(ctx, http.MethodGet, "/entries/stats", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, req *CreateEntryRequest) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPost, "/entries", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", id), nil, nil)
}

// Package shopapi is the HTTP client for the remote shop platform backend.
//
// The client is deliberately thin: no retries, no caching, no credential
// storage. Every failure class the views care about is reported as an error
// and recovery is left to the user (re-submitting a form, reloading a page).
// Authenticated calls take the session credential explicitly rather than
// relying on ambient cookie-jar behavior.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/shopfront/internal/domain"
)

// Client implements domain.ShopAPI against a real backend.
type Client struct {
	baseURL string
	// No client-side timeout is set; callers bound each call with the
	// request context they pass in.
	http *http.Client
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Shop fetches the public tenant profile for a slug. GET /shop/{slug}.
func (c *Client) Shop(ctx context.Context, slug string) (*domain.Tenant, error) {
	resp, err := c.do(ctx, http.MethodGet, "/shop/"+url.PathEscape(slug), "", nil)
	if err != nil {
		return nil, fmt.Errorf("shop lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrShopNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readAPIError(resp)
	}

	var tenant domain.Tenant
	if err := json.NewDecoder(resp.Body).Decode(&tenant); err != nil {
		return nil, fmt.Errorf("decode shop profile: %w", err)
	}
	return &tenant, nil
}

// Dashboard performs the authenticated bootstrap query. GET /dashboard.
func (c *Client) Dashboard(ctx context.Context, cred domain.Credential) (*domain.DashboardData, error) {
	resp, err := c.do(ctx, http.MethodGet, "/dashboard", cred, nil)
	if err != nil {
		return nil, fmt.Errorf("dashboard bootstrap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domain.ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readAPIError(resp)
	}

	var data domain.DashboardData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode dashboard: %w", err)
	}
	if data.Shops == nil {
		data.Shops = []string{}
	}
	return &data, nil
}

// Register submits the full account-creation payload. POST /register.
func (c *Client) Register(ctx context.Context, reg *domain.Registration) error {
	resp, err := c.do(ctx, http.MethodPost, "/register", "", reg)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	return nil
}

// Login verifies the credentials and captures the session credential the
// backend issues via Set-Cookie. POST /login.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Credential, error) {
	body := map[string]string{"username": username, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/login", "", body)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", readAPIError(resp)
	}

	var pairs []string
	for _, cookie := range resp.Cookies() {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	if len(pairs) == 0 {
		return "", ErrNoCredential
	}
	return domain.Credential(strings.Join(pairs, "; ")), nil
}

// Logout invalidates the session server-side. POST /logout.
func (c *Client) Logout(ctx context.Context, cred domain.Credential) error {
	resp, err := c.do(ctx, http.MethodPost, "/logout", cred, struct{}{})
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	return nil
}

// do builds and issues a single request. A non-empty credential is attached
// as the Cookie header, mirroring how the backend issued it.
func (c *Client) do(ctx context.Context, method, path string, cred domain.Credential, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if cred != "" {
		req.Header.Set("Cookie", string(cred))
	}

	return c.http.Do(req)
}

// readAPIError converts a non-2xx response into an APIError, pulling the
// nested message field out of the body when it is structurally present.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

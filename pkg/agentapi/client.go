package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL matches the local development backend.
	DefaultBaseURL = "http://localhost:5000"

	defaultTimeout = 30 * time.Second

	// maxErrorBodyBytes bounds how much of an error body is kept for messages.
	maxErrorBodyBytes = 2048
)

// Client is the HTTP client for the Sentellent agent backend. It does
// network I/O only: no retries, no caching, no policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new agent backend client for the given base endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SendTurn submits one conversational turn via POST /chat.
func (c *Client) SendTurn(ctx context.Context, req SendTurnRequest) (*SendTurnResponse, error) {
	const op = "send turn"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var result SendTurnResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	return &result, nil
}

// GetMemory fetches the memory snapshot for a user via GET /memory.
func (c *Client) GetMemory(ctx context.Context, userID string) (*MemoryResponse, error) {
	const op = "fetch memory"

	reqURL := fmt.Sprintf("%s/memory?user_id=%s", c.baseURL, url.QueryEscape(userID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var result MemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode memory response: %w", err)
	}
	return &result, nil
}

// GetProfile fetches the signed-in user's profile via GET /me.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	const op = "fetch profile"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var result Profile
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return &result, nil
}

// Logout ends the backend session via GET /logout. The response body is
// irrelevant; only transport-level failure is reported.
func (c *Client) Logout(ctx context.Context) error {
	const op = "logout"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}
	return nil
}

// AuthURL asks the backend for the Google OAuth redirect target.
func (c *Client) AuthURL(ctx context.Context) (string, error) {
	const op = "begin auth"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/google", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build auth request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var result authURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode auth response: %w", err)
	}
	return result.URL, nil
}

// Health checks backend reachability via GET /.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	const op = "health check"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &result, nil
}

func readErrorBody(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	return string(raw)
}

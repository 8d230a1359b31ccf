package supabase

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
)

// Sentinel errors callers branch on.
var (
	ErrUnauthorized       = errors.New("supabase: unauthorized")
	ErrNotFound           = errors.New("supabase: not found")
	ErrServiceKeyRequired = errors.New("supabase: service-role key required")
)

const defaultTimeout = 15 * time.Second

// Config defines the inputs for a Supabase client.
type Config struct {
	// BaseURL is the project API base, e.g. https://<ref>.supabase.co.
	BaseURL string `env:"SUPABASE_URL"`
	// AnonKey is the public anonymous API key.
	AnonKey string `env:"SUPABASE_ANON_KEY"`
	// ServiceKey is the service-role secret. Only privileged clients set it.
	ServiceKey string `env:"SUPABASE_SERVICE_KEY"`
	// JWTSecret verifies access-token signatures when present.
	JWTSecret string `env:"SUPABASE_JWT_SECRET"`
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the Supabase REST surface with a fixed key.
type Client struct {
	baseURL    string
	apiKey     string
	jwtSecret  string
	privileged bool
	httpClient *http.Client
}

// New creates a client authenticated with the anonymous key. It validates
// configuration presence before any network call is made.
func New(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	anonKey := strings.TrimSpace(cfg.AnonKey)
	if anonKey == "" {
		return nil, fmt.Errorf("supabase: anon key is required")
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     anonKey,
		jwtSecret:  strings.TrimSpace(cfg.JWTSecret),
		httpClient: orDefaultClient(cfg.HTTPClient),
	}, nil
}

// NewService creates a privileged client authenticated with the service-role
// key. Service-role requests bypass RLS; only maintenance commands use them.
func NewService(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	serviceKey := strings.TrimSpace(cfg.ServiceKey)
	if serviceKey == "" {
		return nil, ErrServiceKeyRequired
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     serviceKey,
		jwtSecret:  strings.TrimSpace(cfg.JWTSecret),
		privileged: true,
		httpClient: orDefaultClient(cfg.HTTPClient),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("supabase: base URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("supabase: invalid base URL %q", raw)
	}
	return trimmed, nil
}

func orDefaultClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}

// apiError carries the backend's error payload for diagnostics.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("supabase: status %d: %s", e.StatusCode, e.Message)
}

func (e *apiError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// do issues one request and decodes a JSON response into out when non-nil.
// bearer overrides the Authorization token; empty means the client API key.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, bearer string, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	token := strings.TrimSpace(bearer)
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Message     string `json:"message"`
		Msg         string `json:"msg"`
		Description string `json:"error_description"`
		ErrorCode   string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Msg
	}
	if message == "" {
		message = payload.Description
	}
	if message == "" {
		message = payload.ErrorCode
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &apiError{StatusCode: resp.StatusCode, Message: message}
}

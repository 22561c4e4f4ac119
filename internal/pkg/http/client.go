package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// APIKeyHeader is the header name for the static API key
const APIKeyHeader = "X-API-Key"

// ErrBaseURLNotSet indicates a deployment error: no backend base URL is
// configured. This is the only adapter failure surfaced as an error rather
// than a Result.
var ErrBaseURLNotSet = errors.New("backend base URL is not set")

// Candidate is one (path, method) pair attempted during the fallback search
// against an uncertain backend route.
type Candidate struct {
	Path   string
	Method string
}

// Result is the uniform outcome of a backend call. Data holds the decoded
// JSON body, which may be an object, an array, or nil when the body was not
// valid JSON.
type Result struct {
	OK     bool
	Status int
	Data   interface{}
}

// Map returns the body as an object, or nil when it isn't one.
func (r *Result) Map() map[string]interface{} {
	if m, ok := r.Data.(map[string]interface{}); ok {
		return m
	}
	return nil
}

// Message extracts the upstream error/message field, if any.
func (r *Result) Message() string {
	m := r.Map()
	if m == nil {
		return ""
	}
	for _, key := range []string{"error", "message"} {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Success reports whether the call succeeded: HTTP status in the success
// range and no explicit ok:false flag in the body.
func (r *Result) Success() bool {
	return r.OK && !r.flaggedFailure()
}

// flaggedFailure reports whether the body explicitly carries ok:false.
func (r *Result) flaggedFailure() bool {
	m := r.Map()
	if m == nil {
		return false
	}
	v, exists := m["ok"]
	if !exists {
		return false
	}
	b, isBool := v.(bool)
	return isBool && !b
}

// Client issues JSON requests against the external REST backend. Bearer
// credentials are threaded per request; the static config bearer and API key
// act as fallbacks.
type Client struct {
	baseURL    string
	bearer     string
	apiKey     string
	probing    bool
	httpClient *nethttp.Client
}

// NewClient creates a backend client from configuration. No request timeout
// is configured; calls are bounded by the caller's context.
func NewClient(cfg models.BackendConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		bearer:     cfg.Bearer,
		apiKey:     cfg.APIKey,
		probing:    cfg.RouteProbing,
		httpClient: &nethttp.Client{},
	}
}

// Do performs a single request and decodes the JSON response. Transport
// failures return an error; HTTP-level failures return a Result with OK
// unset so callers can inspect the status.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, creds models.Credentials) (*Result, error) {
	if c.baseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token := c.resolveBearer(creds); token != "" {
		req.Header.Set("Authorization", token)
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Backend request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	result := &Result{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
	}

	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		// The backend's payload envelope is not fixed; tolerate non-JSON
		// bodies by leaving Data nil.
		var data interface{}
		if jsonErr := json.Unmarshal(raw, &data); jsonErr == nil {
			result.Data = data
		}
	}

	logger.Debug("Backend request",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status", resp.StatusCode))

	return result, nil
}

// DoWithFallback runs the candidate search: candidates are attempted
// strictly in order, advancing only on 404/405 (route or verb not found).
// Any other failure is definitive and surfaced immediately. When route
// probing is disabled only the first candidate is attempted.
func (c *Client) DoWithFallback(ctx context.Context, candidates []Candidate, body interface{}, creds models.Credentials) (*Result, error) {
	if len(candidates) == 0 {
		return nil, errors.New("no route candidates")
	}
	if !c.probing {
		candidates = candidates[:1]
	}

	var last *Result
	for _, cand := range candidates {
		res, err := c.Do(ctx, cand.Method, cand.Path, body, creds)
		if err != nil {
			return nil, err
		}
		last = res

		if res.Success() {
			return res, nil
		}
		if res.Status != nethttp.StatusNotFound && res.Status != nethttp.StatusMethodNotAllowed {
			return res, nil
		}

		logger.Warn("Backend route candidate rejected, probing next",
			logger.String("method", cand.Method),
			logger.String("path", cand.Path),
			logger.Int("status", res.Status))
	}

	return last, nil
}

func (c *Client) resolveBearer(creds models.Credentials) string {
	token := strings.TrimSpace(creds.Bearer)
	if token == "" {
		token = strings.TrimSpace(c.bearer)
	}
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return token
	}
	return "Bearer " + token
}

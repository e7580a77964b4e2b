package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/common"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
	"github.com/google/uuid"
)

// Remote endpoints, relative to the base URL.
const (
	PathSignup             = "/api/auth/signup"
	PathLogin              = "/api/auth/login"
	PathScreen1            = "/api/onboarding/screen1"
	PathScreen2            = "/api/onboarding/screen2"
	PathScreen3            = "/api/onboarding/screen3"
	PathScreen4            = "/api/onboarding/screen4"
	PathCompleteOnboarding = "/api/onboarding/complete"
	PathUserDetails        = "/api/user/details"
	PathAnalytics          = "/api/stats/analytics"
	PathHealth             = "/health"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 4 << 20

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// NewHTTPClient builds a client for baseURL (e.g. "https://api.tabhay.tech").
// A nil tokens source sends no Authorization header.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

type call struct {
	op     string
	method string
	path   string
	body   any
	out    any
	// anonymous calls never carry the bearer token
	anonymous bool
	// emptyOK accepts a 2xx response without a body
	emptyOK bool
}

type validator interface {
	Validate() error
}

func (c *HTTPClient) do(ctx context.Context, cl call) error {
	var reqBody io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if !cl.anonymous && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: read session token: %w", cl.op, err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	log := c.logger.With("op", cl.op, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	log.Debug(ctx, "response", "method", cl.method, "path", cl.path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, errorMessage(data))
	}

	if cl.out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if cl.emptyOK {
			return nil
		}
		return &MalformedResponseError{Op: cl.op, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return &MalformedResponseError{Op: cl.op, Err: err}
	}
	if v, ok := cl.out.(validator); ok {
		if err := v.Validate(); err != nil {
			return &MalformedResponseError{Op: cl.op, Err: err}
		}
	}
	return nil
}

// errorMessage extracts the "message" field of an error body, or "".
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}

func (c *HTTPClient) Signup(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{op: "signup", method: http.MethodPost, path: PathSignup, body: creds, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{op: "login", method: http.MethodPost, path: PathLogin, body: creds, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) submit(ctx context.Context, op, path string, body any) (*models.SubmissionResult, error) {
	var out models.SubmissionResult
	err := c.do(ctx, call{op: op, method: http.MethodPost, path: path, body: body, out: &out, emptyOK: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SubmitScreen1(ctx context.Context, data models.Screen1Data) (*models.SubmissionResult, error) {
	return c.submit(ctx, "submit screen1", PathScreen1, data)
}

func (c *HTTPClient) SubmitScreen2(ctx context.Context, data models.Screen2Data) (*models.SubmissionResult, error) {
	return c.submit(ctx, "submit screen2", PathScreen2, data)
}

func (c *HTTPClient) SubmitScreen3(ctx context.Context, data models.Screen3Data) (*models.SubmissionResult, error) {
	return c.submit(ctx, "submit screen3", PathScreen3, data)
}

func (c *HTTPClient) SubmitScreen4(ctx context.Context, data models.Screen4Data) (*models.SubmissionResult, error) {
	return c.submit(ctx, "submit screen4", PathScreen4, data)
}

func (c *HTTPClient) CompleteOnboarding(ctx context.Context, data models.CompleteOnboardingData) (*models.SubmissionResult, error) {
	return c.submit(ctx, "complete onboarding", PathCompleteOnboarding, data)
}

func (c *HTTPClient) GetUserDetails(ctx context.Context) (*models.UserDetails, error) {
	var out models.UserDetails
	err := c.do(ctx, call{op: "get user details", method: http.MethodGet, path: PathUserDetails, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAnalytics fetches the aggregate analytics. The payload may arrive bare
// or wrapped in one or two "data" envelopes.
func (c *HTTPClient) GetAnalytics(ctx context.Context) (*models.AnalyticsReport, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{op: "get analytics", method: http.MethodGet, path: PathAnalytics, out: &raw})
	if err != nil {
		return nil, err
	}

	payload, err := unwrapData(raw)
	if err != nil {
		return nil, &MalformedResponseError{Op: "get analytics", Err: err}
	}

	var out models.AnalyticsReport
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, &MalformedResponseError{Op: "get analytics", Err: err}
	}
	if err := out.Validate(); err != nil {
		return nil, &MalformedResponseError{Op: "get analytics", Err: err}
	}
	return &out, nil
}

// unwrapData returns body.data.data, body.data or body, whichever is the
// innermost JSON object.
func unwrapData(body json.RawMessage) (json.RawMessage, error) {
	current := body
	for range 2 {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(current, &obj); err != nil {
			return nil, fmt.Errorf("expected a JSON object: %w", err)
		}
		inner, ok := obj["data"]
		if !ok || !isObject(inner) {
			return current, nil
		}
		current = inner
	}
	return current, nil
}

func isObject(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

func (c *HTTPClient) HealthCheck(ctx context.Context) (*models.Health, error) {
	var out models.Health
	err := c.do(ctx, call{op: "health check", method: http.MethodGet, path: PathHealth, out: &out, anonymous: true, emptyOK: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Close releases idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

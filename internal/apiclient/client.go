// Package apiclient talks to the remote resume backend over REST.
//
// Every call reads the bearer credential from the local store. A 401 on any
// call other than login and register is treated as session expiry: the
// credential is deleted, the unauthorized handler runs and ErrUnauthorized
// is returned.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"resumebuilder/internal/localstore"
	"resumebuilder/internal/logger"
	"resumebuilder/internal/model"
)

const defaultTimeout = 15 * time.Second

// Client is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          localstore.Store
	onUnauthorized func(ctx context.Context)
	log            zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUnauthorizedHandler registers the hook run after a credential has
// been rejected. It replaces the full application reload of a browser.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for the backend at baseURL.
func New(baseURL string, store localstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		store: store,
		log:   logger.Component("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUnauthorizedHandler replaces the hook after construction, for callers
// that build the client before the object the hook resets.
func (c *Client) SetUnauthorizedHandler(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	// authFlow marks login and register, where a 401 means bad input
	// rather than an expired session.
	authFlow bool
	// failure replaces the generic status message when the server gives
	// no detail.
	failure string
}

// do executes req and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, req request) ([]byte, http.Header, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, req.body)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	} else {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	token, err := c.store.Get(ctx, localstore.KeyAccessToken)
	if err != nil {
		return nil, nil, fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Str("method", req.method).Str("path", req.path).Msg("request failed")
		return nil, nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode == http.StatusUnauthorized && !req.authFlow {
		c.expire(ctx)
		return nil, nil, &Error{StatusCode: resp.StatusCode, Message: ErrUnauthorized.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fallback := ""
		if req.failure != "" {
			fallback = req.failure + ": " + strconv.Itoa(resp.StatusCode)
		}
		return nil, nil, newError(resp.StatusCode, body, fallback)
	}
	return body, resp.Header, nil
}

func (c *Client) expire(ctx context.Context) {
	c.log.Warn().Msg("credential rejected, resetting session")
	if err := c.store.Delete(ctx, localstore.KeyAccessToken); err != nil {
		c.log.Error().Err(err).Msg("failed to remove credential")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

func (c *Client) getJSON(ctx context.Context, req request, out any) error {
	body, _, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.method, req.path, err)
	}
	return nil
}

func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return bytes.NewReader(b), nil
}

// Login exchanges credentials for a token and profile. The token is not
// persisted here.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResult, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out model.AuthResult
	err := c.getJSON(ctx, request{
		method:      http.MethodPost,
		path:        "/api/auth/login",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		authFlow:    true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. It does not authenticate.
func (c *Client) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	body, err := jsonBody(reg)
	if err != nil {
		return nil, err
	}
	var out model.User
	if err := c.getJSON(ctx, request{
		method:   http.MethodPost,
		path:     "/api/auth/register",
		body:     body,
		authFlow: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := c.getJSON(ctx, request{method: http.MethodGet, path: "/api/auth/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

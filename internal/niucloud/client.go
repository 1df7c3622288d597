// Package niucloud is a client for the NIU vehicle cloud API.
package niucloud

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

	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
)

const (
	// DefaultAccountURL serves the login endpoint.
	DefaultAccountURL = "https://account-fk.niu.com"
	// DefaultAPIURL serves every vehicle endpoint.
	DefaultAPIURL = "https://app-api-fk.niu.com"
	// DefaultRetries is the number of tries for a request failing with a network error or 5xx.
	DefaultRetries = 3
	// DefaultTimeout bounds a single try.
	DefaultTimeout = 15 * time.Second

	userAgent = "niu-cloud-cli"
)

var (
	// ErrNoToken is returned by authenticated calls when no session token is set.
	ErrNoToken = errors.New("no session token available")
	// ErrUnauthorized is returned when the server rejects the session token.
	ErrUnauthorized = errors.New("session token rejected")
)

// APIError is a failure reported by the server.
type APIError struct {
	HTTPStatus int
	Status     int
	Message    string
	Trace      string
}

// Error implements error.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Trace
	}
	if e.Status != 0 {
		return fmt.Sprintf("api status %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("http status %d: %s", e.HTTPStatus, msg)
}

// Doer sends HTTP requests. Both *http.Client and *pester.Client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	HTTPClient Doer
	AccountURL string
	APIURL     string
	Token      string
	Retries    int
	Timeout    time.Duration
}

// Client talks to the NIU cloud.
type Client struct {
	http       Doer
	accountURL string
	apiURL     string
	token      string
}

// Result is a decoded payload together with the raw JSON the server sent.
type Result[T any] struct {
	Data T
	Raw  json.RawMessage
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Desc   string          `json:"desc"`
	Trace  string          `json:"trace"`
	Status int             `json:"status"`
}

type request struct {
	query  url.Values
	form   url.Values
	body   any
	method string
	base   string
	path   string
	auth   bool
}

// New creates a client.
func New(opts Options) *Client {
	c := &Client{
		http:       opts.HTTPClient,
		accountURL: strings.TrimRight(opts.AccountURL, "/"),
		apiURL:     strings.TrimRight(opts.APIURL, "/"),
		token:      opts.Token,
	}

	if c.accountURL == "" {
		c.accountURL = DefaultAccountURL
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}
	if c.http == nil {
		c.http = newPesterClient(opts.Retries, opts.Timeout)
	}

	return c
}

func newPesterClient(retries int, timeout time.Duration) *pester.Client {
	if retries <= 0 {
		retries = DefaultRetries
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := pester.NewExtendedClient(&http.Client{
		Transport: &loggingTransport{next: http.DefaultTransport},
		Timeout:   timeout,
	})
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = retries
	client.LogHook = func(e pester.ErrEntry) {
		log.Warn().
			Err(e.Err).
			Str("method", e.Method).
			Str("url", e.URL).
			Int("attempt", e.Attempt).
			Msg("Retrying after failed attempt")
	}

	return client
}

// SetToken sets the session token used by authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current session token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, r request) (json.RawMessage, error) {
	if r.auth && c.token == "" {
		return nil, ErrNoToken
	}

	target := r.base + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case r.body != nil:
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.auth {
		req.Header.Set("token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%s: %w", r.path, ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return nil, &APIError{HTTPStatus: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	if env.Status != 0 {
		return nil, &APIError{
			HTTPStatus: resp.StatusCode,
			Status:     env.Status,
			Message:    env.Desc,
			Trace:      env.Trace,
		}
	}

	return env.Data, nil
}

// fetch performs the request and decodes the payload into T.
func fetch[T any](ctx context.Context, c *Client, r request) (*Result[T], error) {
	raw, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}

	res := &Result[T]{Raw: raw}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		res.Raw = json.RawMessage("null")
		return res, nil
	}

	if err := json.Unmarshal(raw, &res.Data); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", r.path, err)
	}

	return res, nil
}

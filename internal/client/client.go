// Package client is the authenticated session client for the Code Studio
// backend: JSON requests against a base URL plus one reconnecting real-time
// channel.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abapcodestudio/codestudio/internal/channel"
	"github.com/abapcodestudio/codestudio/internal/errors"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// CredentialStore persists the session credential.
type CredentialStore interface {
	Save(token string) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithStore persists credentials set through SetCredential.
func WithStore(s CredentialStore) Option {
	return func(c *Client) { c.store = s }
}

// WithLogger sets the logger for the client and its channel.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithChannelOptions passes options through to the real-time channel.
func WithChannelOptions(opts ...channel.Option) Option {
	return func(c *Client) { c.channelOpts = append(c.channelOpts, opts...) }
}

// Client talks to one backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	store      CredentialStore
	log        *slog.Logger

	mu    sync.RWMutex
	token string

	channelOpts []channel.Option
	chanOnce    sync.Once
	ch          *channel.Channel
}

// New returns a client for baseURL authenticating with token. An empty
// baseURL selects DefaultBaseURL; an empty token is sent as an empty bearer.
func New(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        slog.New(slog.DiscardHandler),
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credential returns the current bearer token.
func (c *Client) Credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetCredential replaces the bearer token used by subsequent requests and
// channel connections, and persists it when a store is configured. The token
// is not validated.
func (c *Client) SetCredential(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	return c.store.Save(token)
}

// RequestError is returned for any non-2xx response.
type RequestError struct {
	Status     int
	StatusText string
	// Detail is the server's non-empty "detail" message, or StatusText when
	// the body carried none.
	Detail string
}

// Error returns the detail message exactly.
func (e *RequestError) Error() string {
	return e.Detail
}

// IsStatus reports whether err is a RequestError with the given status code.
func IsStatus(err error, status int) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == status
}

// Request performs method on path (relative to the base URL) with JSON body
// and decodes a successful JSON response into out. A nil body sends no
// payload; a nil out discards the response.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	op := errors.Op("client.Request")

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.E(op, errors.KindInvalid, "encode request body", err)
		}
		payload = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.Credential())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.E(op, errors.KindTimeout, method+" "+path, err)
		}
		return errors.TransportFailed(method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request", "method", method, "path", path, "status", resp.StatusCode,
		"duration", time.Since(start), "requestID", requestID)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.TransportFailed(method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.requestError(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.DecodeFailed(path, err)
	}
	return nil
}

func (c *Client) requestError(resp *http.Response, body []byte) *RequestError {
	text := statusText(resp)
	re := &RequestError{Status: resp.StatusCode, StatusText: text, Detail: text}

	var doc struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		c.log.Debug("error body not decodable", "status", resp.StatusCode, "error", err)
		return re
	}
	if detail, ok := doc.Detail.(string); ok && detail != "" {
		re.Detail = detail
	}
	return re
}

// statusText returns the reason phrase the server sent, falling back to the
// standard text for the code, then to the code itself.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = "status " + code
	}
	return text
}

// Channel returns the client's real-time channel handle, creating it on
// first use. There is at most one per client.
func (c *Client) Channel() *channel.Channel {
	c.chanOnce.Do(func() {
		opts := append([]channel.Option{channel.WithLogger(c.log)}, c.channelOpts...)
		c.ch = channel.New(channel.ChannelURL(c.baseURL), c.Credential, opts...)
	})
	return c.ch
}

// OpenChannel starts the real-time channel. Calling it while the channel is
// open does nothing.
func (c *Client) OpenChannel(onMessage channel.Handler) {
	c.Channel().Open(onMessage)
}

// CloseChannel stops the real-time channel and cancels pending reconnects.
func (c *Client) CloseChannel() {
	c.Channel().Close()
}

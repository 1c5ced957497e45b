// Package channel maintains the authenticated real-time WebSocket link to the
// Code Studio backend.
//
// A Channel owns at most one live socket. When the socket closes for any
// reason, or a dial fails, the channel logs a warning and schedules exactly one
// new attempt after a fixed delay. There is no backoff growth, cap or jitter;
// reconnection continues until Close is called.
package channel

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abapcodestudio/codestudio/internal/errors"
)

// DefaultReconnectDelay is the fixed wait between a closure and the next dial.
const DefaultReconnectDelay = 3 * time.Second

// Handler receives decoded frames. Calls are sequential, in arrival order, on
// the channel's loop goroutine. A Handler must not call Close.
type Handler func(Frame)

// Option configures a Channel.
type Option func(*Channel)

// WithDialer replaces the gorilla/websocket dialer.
func WithDialer(d Dialer) Option {
	return func(c *Channel) { c.dialer = d }
}

// WithReconnectDelay overrides DefaultReconnectDelay. Non-positive values are ignored.
func WithReconnectDelay(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithLogger sets the logger used for connection warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Channel) {
		if l != nil {
			c.log = l
		}
	}
}

// Channel is a reconnecting real-time channel handle.
type Channel struct {
	url    string
	token  func() string
	dialer Dialer
	delay  time.Duration
	log    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc // non-nil while open
	done   chan struct{}
	conn   Conn

	writeMu sync.Mutex
	stats   counters
}

// New creates a closed channel for url. token is consulted on every dial so a
// replaced credential is used from the next connection on.
func New(url string, token func() string, opts ...Option) *Channel {
	c := &Channel{
		url:    url,
		token:  token,
		dialer: WebsocketDialer{},
		delay:  DefaultReconnectDelay,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.token == nil {
		c.token = func() string { return "" }
	}
	return c
}

// ChannelURL derives the channel endpoint from an HTTP base URL by swapping
// http for ws (https for wss) and appending /ws.
func ChannelURL(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL + "/ws"
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String()
}

// URL returns the endpoint the channel dials.
func (c *Channel) URL() string {
	return c.url
}

// Open starts the connection loop. Calling Open while the channel is already
// open does nothing.
func (c *Channel) Open(onMessage Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}
	if onMessage == nil {
		onMessage = func(Frame) {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.run(ctx, onMessage, c.done)
}

// Close stops the loop, closes the live socket and cancels any pending
// reconnect. It returns once the loop has exited. Close is idempotent.
func (c *Channel) Close() {
	c.mu.Lock()
	if c.cancel == nil {
		c.mu.Unlock()
		return
	}
	c.cancel()
	c.cancel = nil
	conn := c.conn
	c.conn = nil
	done := c.done
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	<-done
}

// IsOpen reports whether the loop is running, connected or not.
func (c *Channel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Connected reports whether a socket is currently live.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Stats returns a snapshot of the channel counters.
func (c *Channel) Stats() Stats {
	return c.stats.snapshot()
}

// Send writes v as a JSON text frame on the live socket.
func (c *Channel) Send(v any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return errors.ChannelNotConnected()
	}
	return c.write(conn, v)
}

func (c *Channel) write(conn Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.E(errors.Op("channel.Send"), errors.KindInvalid, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.E(errors.Op("channel.Send"), errors.KindChannel, err)
	}
	c.stats.framesOut.Add(1)
	c.stats.bytesOut.Add(int64(len(data)))
	return nil
}

func (c *Channel) run(ctx context.Context, onMessage Handler, done chan struct{}) {
	defer close(done)

	for {
		err := c.session(ctx, onMessage)
		if ctx.Err() != nil {
			return
		}
		c.log.Warn("channel closed, reconnecting", "url", c.url, "delay", c.delay, "error", err)

		timer := time.NewTimer(c.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		c.stats.reconnects.Add(1)
	}
}

// session runs one dial-authenticate-read cycle and returns why it ended.
func (c *Channel) session(ctx context.Context, onMessage Handler) error {
	c.stats.dials.Add(1)
	conn, err := c.dialer.Dial(ctx, c.url)
	if err != nil {
		return errors.E(errors.Op("channel.Dial"), errors.KindNetwork, err)
	}

	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		conn.Close()
		return ctx.Err()
	}
	c.conn = conn
	c.mu.Unlock()

	c.stats.connected(time.Now())
	c.log.Debug("channel connected", "url", c.url)

	defer func() {
		c.mu.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.mu.Unlock()
		conn.Close()
		c.stats.disconnected()
	}()

	if err := c.write(conn, authFrame{Type: TypeAuth, Token: c.token()}); err != nil {
		return err
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return errors.E(errors.Op("channel.Read"), errors.KindChannel, err)
		}
		c.stats.framesIn.Add(1)
		c.stats.bytesIn.Add(int64(len(data)))

		frame, err := ParseFrame(data)
		if err != nil {
			c.stats.dropped.Add(1)
			c.log.Warn("dropping undecodable frame", "error", err, "bytes", len(data))
			continue
		}
		if frame.Type == TypePing {
			if err := c.write(conn, pongFrame{Type: TypePong}); err != nil {
				c.log.Debug("pong failed", "error", err)
			}
		}
		onMessage(frame)
	}
}
